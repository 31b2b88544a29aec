package pilotratings

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RaceResult is where a named Pilot finished in a race.
type RaceResult struct {
	Name     string
	Position int
}

// League owns the in-memory roster and persists it through a RosterStore after every change.
type League struct {
	store  RosterStore
	engine *Engine

	pilots []*Pilot
}

// OpenLeague loads the roster from store. Load failures are logged and leave the League with an
// empty roster; nothing is written back until the first successful change.
func OpenLeague(store RosterStore, engine *Engine) *League {
	if engine == nil {
		engine = NewEngine()
	}

	l := &League{
		store:  store,
		engine: engine,
		pilots: []*Pilot{},
	}

	pilots, err := store.LoadRoster()

	switch {
	case errors.Cause(err) == ErrRosterCorrupt:
		logrus.WithError(err).Error("Invalid data format in roster, starting with no pilots")
	case err != nil:
		logrus.WithError(err).Error("Couldn't load roster, starting with no pilots")
	default:
		l.pilots = sanitiseRoster(pilots)
		logrus.Debugf("Loaded %d pilots", len(l.pilots))
	}

	return l
}

// Pilots returns a copy of the roster in insertion order.
func (l *League) Pilots() []*Pilot {
	out := make([]*Pilot, len(l.pilots))

	for i, pilot := range l.pilots {
		out[i] = pilot.copy()
	}

	return out
}

// Len is the number of pilots in the roster.
func (l *League) Len() int {
	return len(l.pilots)
}

// Standings returns a copy of the roster sorted by rating, highest first. Pilots on the same rating
// keep their roster order.
func (l *League) Standings() []*Pilot {
	out := l.Pilots()
	sortByRating(out)

	return out
}

func sortByRating(pilots []*Pilot) {
	sort.SliceStable(pilots, func(i, j int) bool {
		return pilots[i].Rating > pilots[j].Rating
	})
}

// FindPilot looks up a Pilot by exact name.
func (l *League) FindPilot(name string) (*Pilot, error) {
	index := l.indexOf(name)

	if index < 0 {
		return nil, errors.Wrapf(ErrPilotNotFound, "pilot '%s'", name)
	}

	return l.pilots[index].copy(), nil
}

func (l *League) indexOf(name string) int {
	for i, pilot := range l.pilots {
		if pilot.Name == name {
			return i
		}
	}

	return -1
}

// AddPilot appends a new Pilot with the default rating. Names are case sensitive.
func (l *League) AddPilot(name string) (*Pilot, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyPilotName
	}

	if l.indexOf(name) >= 0 {
		return nil, errors.Wrapf(ErrPilotExists, "pilot '%s'", name)
	}

	pilot := NewPilot(name)
	l.pilots = append(l.pilots, pilot)

	if err := l.save(); err != nil {
		return nil, err
	}

	return pilot.copy(), nil
}

// DeletePilot removes the Pilot with the given name.
func (l *League) DeletePilot(name string) error {
	index := l.indexOf(name)

	if index < 0 {
		return errors.Wrapf(ErrPilotNotFound, "pilot '%s'", name)
	}

	l.pilots = append(l.pilots[:index], l.pilots[index+1:]...)

	return l.save()
}

// RecordRace rates a race and applies the new ratings to the roster. Pilots who did not take part
// are left alone, including their previous delta. Nothing changes if the race can't be rated.
func (l *League) RecordRace(results []RaceResult) ([]RatingChange, error) {
	entrants := make([]RaceEntrant, 0, len(results))

	for _, result := range results {
		index := l.indexOf(result.Name)

		if index < 0 {
			return nil, errors.Wrapf(ErrPilotNotFound, "pilot '%s'", result.Name)
		}

		entrants = append(entrants, RaceEntrant{
			Name:     result.Name,
			Rating:   l.pilots[index].Rating,
			Position: result.Position,
		})
	}

	changes, err := l.engine.Calculate(entrants)

	if err != nil {
		return nil, err
	}

	for _, change := range changes {
		l.pilots[l.indexOf(change.Name)].setRating(change.NewRating, change.Delta)
	}

	if err := l.save(); err != nil {
		return changes, err
	}

	return changes, nil
}

func (l *League) save() error {
	if err := l.store.SaveRoster(l.pilots); err != nil {
		return errors.Wrap(err, "could not save roster")
	}

	return nil
}
