package pilotratings

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"
	"gopkg.in/yaml.v2"
)

const (
	storeTypeJSON = "json"
	storeTypeBolt = "boltdb"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Configuration struct {
	Store   StoreConfig   `yaml:"store"`
	Rating  RatingConfig  `yaml:"rating"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type StoreConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

// BuildStore opens the configured RosterStore. The returned close func must be called once the store is no longer needed.
func (s *StoreConfig) BuildStore() (RosterStore, func() error, error) {
	if s.Path == "" {
		s.Path = DefaultRosterFile
	}

	switch s.Type {
	case storeTypeBolt:
		bbdb, err := bbolt.Open(s.Path, 0644, nil)

		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not open bolt store %s", s.Path)
		}

		return NewBoltStore(bbdb), bbdb.Close, nil
	case storeTypeJSON, "":
		return NewJSONStore(s.Path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("invalid store type (%s), must be either boltdb/json", s.Type)
	}
}

type RatingConfig struct {
	KFactor float64 `yaml:"k_factor"`
}

func (r *RatingConfig) BuildEngine() (*Engine, error) {
	engine := NewEngine()

	if r.KFactor != 0 {
		engine.KFactor = r.KFactor
	}

	if engine.KFactor <= 0 {
		return nil, ErrInvalidKFactor
	}

	return engine, nil
}

type DisplayConfig struct {
	Color string `yaml:"color"`
}

// SupportsColor picks the colour strategy for pilot tables.
func (d *DisplayConfig) SupportsColor() (func() bool, error) {
	switch d.Color {
	case ColorAuto, "":
		return TerminalSupportsColor, nil
	case ColorAlways:
		return func() bool { return true }, nil
	case ColorNever:
		return func() bool { return false }, nil
	default:
		return nil, fmt.Errorf("invalid display colour (%s), must be one of auto/always/never", d.Color)
	}
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func (l *LogConfig) Apply() error {
	if l.Level == "" {
		logrus.SetLevel(logrus.InfoLevel)
		return nil
	}

	level, err := logrus.ParseLevel(l.Level)

	if err != nil {
		return err
	}

	logrus.SetLevel(level)

	return nil
}

// TerminalSupportsColor reports whether stdout is a colour capable terminal. fatih/color
// works this out on startup (isatty, TERM=dumb and NO_COLOR).
func TerminalSupportsColor() bool {
	return !color.NoColor
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() *Configuration {
	return &Configuration{
		Store: StoreConfig{
			Type: storeTypeJSON,
			Path: DefaultRosterFile,
		},
		Rating: RatingConfig{
			KFactor: DefaultKFactor,
		},
		Display: DisplayConfig{
			Color: ColorAuto,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ReadConfig loads the yaml config at location over the defaults. A missing file is not an error.
func ReadConfig(location string) (*Configuration, error) {
	conf := DefaultConfig()

	f, err := os.Open(location)

	if os.IsNotExist(err) {
		return conf, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "could not open config file %s", location)
	}

	defer f.Close()

	// an empty file decodes to io.EOF, which leaves the defaults in place
	if err := yaml.NewDecoder(f).Decode(conf); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "could not parse config file %s", location)
	}

	return conf, nil
}
