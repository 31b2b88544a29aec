package pilotratings

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultRosterFile is where the roster lives unless config.yml says otherwise.
	DefaultRosterFile = "pilots_data.json"

	jsonIndent = "    "
)

func NewJSONStore(filename string) *JSONStore {
	return &JSONStore{
		filename: filename,
	}
}

// JSONStore keeps the roster in a single human readable JSON file.
type JSONStore struct {
	filename string
}

func (rs *JSONStore) LoadRoster() ([]*Pilot, error) {
	data, err := ioutil.ReadFile(rs.filename)

	if os.IsNotExist(err) {
		return []*Pilot{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "could not read roster file %s", rs.filename)
	}

	return decodeRoster(data)
}

// SaveRoster writes the roster to a temporary file next to the target then renames it into
// place, so the previously saved roster stays intact until the new one is fully written.
func (rs *JSONStore) SaveRoster(pilots []*Pilot) error {
	data, err := encodeRoster(pilots)

	if err != nil {
		return err
	}

	dir := filepath.Dir(rs.filename)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)

		if err != nil {
			return errors.Wrapf(err, "could not create roster directory %s", dir)
		}
	} else if err != nil {
		return errors.Wrapf(err, "could not stat roster directory %s", dir)
	}

	f, err := ioutil.TempFile(dir, "."+filepath.Base(rs.filename)+".*.tmp")

	if err != nil {
		return errors.Wrap(err, "could not create temporary roster file")
	}

	tmpName := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "could not write temporary roster file")
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "could not flush temporary roster file")
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "could not close temporary roster file")
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "could not set roster file permissions")
	}

	if err := os.Rename(tmpName, rs.filename); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "could not replace roster file %s", rs.filename)
	}

	return nil
}

func encodeRoster(pilots []*Pilot) ([]byte, error) {
	if pilots == nil {
		pilots = []*Pilot{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", jsonIndent)

	if err := enc.Encode(pilots); err != nil {
		return nil, errors.Wrap(err, "could not encode roster")
	}

	return buf.Bytes(), nil
}

// decodeRoster only accepts a JSON array. Anything else, including invalid JSON, is ErrRosterCorrupt.
func decodeRoster(data []byte) ([]*Pilot, error) {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrRosterCorrupt
	}

	var pilots []*Pilot

	if err := json.Unmarshal(trimmed, &pilots); err != nil {
		return nil, errors.Wrap(ErrRosterCorrupt, err.Error())
	}

	if pilots == nil {
		pilots = []*Pilot{}
	}

	return pilots, nil
}
