package pilotratings

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultRating is the rating every new Pilot starts with.
	DefaultRating = 1200
)

var (
	ErrEmptyPilotName = errors.New("pilotratings: pilot name cannot be empty")
	ErrPilotExists    = errors.New("pilotratings: pilot already exists")
	ErrPilotNotFound  = errors.New("pilotratings: pilot not found")
)

// A Pilot is a single entry in the league roster. Pilots are identified by Name, which is unique within a roster.
type Pilot struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`

	// Delta is the change in Rating caused by the most recent race the Pilot took part in.
	// It is nil until the Pilot has been rated at least once.
	Delta *int `json:"delta"`
}

// NewPilot creates a Pilot with the DefaultRating and no Delta.
func NewPilot(name string) *Pilot {
	return &Pilot{
		Name:   name,
		Rating: DefaultRating,
	}
}

// HasDelta reports whether the Pilot has completed a rated race.
func (p *Pilot) HasDelta() bool {
	return p.Delta != nil
}

func (p *Pilot) setRating(rating int, delta int) {
	p.Rating = rating
	p.Delta = &delta
}

func (p *Pilot) copy() *Pilot {
	out := &Pilot{
		Name:   p.Name,
		Rating: p.Rating,
	}

	if p.Delta != nil {
		delta := *p.Delta
		out.Delta = &delta
	}

	return out
}

// sanitiseRoster drops entries that would break the roster invariants (empty or repeated names).
// The first occurrence of a name wins.
func sanitiseRoster(pilots []*Pilot) []*Pilot {
	seen := make(map[string]bool, len(pilots))
	out := make([]*Pilot, 0, len(pilots))

	for i, pilot := range pilots {
		if pilot == nil || strings.TrimSpace(pilot.Name) == "" {
			logrus.Warnf("Skipping roster entry %d: pilot has no name", i)
			continue
		}

		if seen[pilot.Name] {
			logrus.Warnf("Skipping roster entry %d: pilot '%s' is listed more than once", i, pilot.Name)
			continue
		}

		seen[pilot.Name] = true
		out = append(out, pilot)
	}

	return out
}
