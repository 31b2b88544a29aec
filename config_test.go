package pilotratings

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	location := filepath.Join(t.TempDir(), "config.yml")

	if err := ioutil.WriteFile(location, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return location
}

func TestReadConfig_MissingFileUsesDefaults(t *testing.T) {
	conf, err := ReadConfig(filepath.Join(t.TempDir(), "config.yml"))

	if err != nil {
		t.Fatal(err)
	}

	if conf.Store.Type != storeTypeJSON || conf.Store.Path != DefaultRosterFile {
		t.Errorf("unexpected store config %+v", conf.Store)
	}

	if conf.Rating.KFactor != DefaultKFactor || conf.Display.Color != ColorAuto {
		t.Errorf("unexpected config %+v", conf)
	}
}

func TestReadConfig_EmptyFileUsesDefaults(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, ""))

	if err != nil {
		t.Fatal(err)
	}

	if conf.Store.Path != DefaultRosterFile {
		t.Errorf("expected default store path, got %s", conf.Store.Path)
	}
}

func TestReadConfig(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, `
store:
  type: boltdb
  path: league.db
rating:
  k_factor: 24
display:
  color: never
log:
  level: debug
`))

	if err != nil {
		t.Fatal(err)
	}

	if conf.Store.Type != storeTypeBolt || conf.Store.Path != "league.db" {
		t.Errorf("unexpected store config %+v", conf.Store)
	}

	engine, err := conf.Rating.BuildEngine()

	if err != nil {
		t.Fatal(err)
	}

	if engine.KFactor != 24 {
		t.Errorf("expected k-factor 24, got %f", engine.KFactor)
	}

	supportsColor, err := conf.Display.SupportsColor()

	if err != nil {
		t.Fatal(err)
	}

	if supportsColor() {
		t.Error("expected colour to be disabled")
	}

	defer logrus.SetLevel(logrus.GetLevel())

	if err := conf.Log.Apply(); err != nil {
		t.Fatal(err)
	}

	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug logging, got %s", logrus.GetLevel())
	}
}

func TestReadConfig_Invalid(t *testing.T) {
	if _, err := ReadConfig(writeConfig(t, "store: [not, a, map")); err == nil {
		t.Error("expected invalid yaml to fail")
	}
}

func TestConfig_InvalidValues(t *testing.T) {
	if _, err := (&RatingConfig{KFactor: -4}).BuildEngine(); err != ErrInvalidKFactor {
		t.Errorf("expected ErrInvalidKFactor, got %v", err)
	}

	if _, err := (&DisplayConfig{Color: "sometimes"}).SupportsColor(); err == nil {
		t.Error("expected an invalid colour mode to fail")
	}

	if err := (&LogConfig{Level: "chatty"}).Apply(); err == nil {
		t.Error("expected an invalid log level to fail")
	}
}

func TestStoreConfig_BuildStore(t *testing.T) {
	dir := t.TempDir()

	storeTests := []struct {
		config StoreConfig
		valid  bool
	}{
		{config: StoreConfig{Type: storeTypeJSON, Path: filepath.Join(dir, DefaultRosterFile)}, valid: true},
		{config: StoreConfig{Type: "", Path: filepath.Join(dir, DefaultRosterFile)}, valid: true},
		{config: StoreConfig{Type: storeTypeBolt, Path: filepath.Join(dir, "pilots.db")}, valid: true},
		{config: StoreConfig{Type: "postgres", Path: "pilots"}, valid: false},
	}

	for _, x := range storeTests {
		store, closeStore, err := x.config.BuildStore()

		if !x.valid {
			if err == nil {
				t.Errorf("%s: expected an error", x.config.Type)
			}

			continue
		}

		if err != nil {
			t.Errorf("%s: %s", x.config.Type, err)
			continue
		}

		if err := store.SaveRoster(testRoster()); err != nil {
			t.Errorf("%s: %s", x.config.Type, err)
		}

		if err := closeStore(); err != nil {
			t.Errorf("%s: %s", x.config.Type, err)
		}
	}
}
