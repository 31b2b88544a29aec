package pilotratings

import (
	"github.com/pkg/errors"
)

// ErrRosterCorrupt is returned by a RosterStore when persisted data exists but is not a list of pilots.
var ErrRosterCorrupt = errors.New("pilotratings: roster data is corrupt, expected a list of pilots")

// A RosterStore persists the whole roster at once. There is no incremental persistence: SaveRoster
// always replaces everything previously saved.
type RosterStore interface {
	// LoadRoster returns an empty roster if nothing has been saved yet.
	LoadRoster() ([]*Pilot, error)
	SaveRoster(pilots []*Pilot) error
}

// ConvertRoster copies the roster held in one store into another, replacing whatever the destination held.
func ConvertRoster(from, to RosterStore) (int, error) {
	pilots, err := from.LoadRoster()

	if err != nil {
		return 0, errors.Wrap(err, "could not load source roster")
	}

	pilots = sanitiseRoster(pilots)

	if err := to.SaveRoster(pilots); err != nil {
		return 0, errors.Wrap(err, "could not save destination roster")
	}

	return len(pilots), nil
}
