package pilotratings

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

const (
	// DefaultKFactor controls how far a single race can move a Pilot's rating.
	DefaultKFactor = 32

	ratingScale = 400.0
)

var (
	ErrNotEnoughEntrants = errors.New("pilotratings: at least two pilots are needed to calculate ratings")
	ErrInvalidPosition   = errors.New("pilotratings: position must be a positive integer")
	ErrDuplicatePosition = errors.New("pilotratings: position is already taken")
	ErrDuplicateEntrant  = errors.New("pilotratings: pilot entered more than once")
	ErrInvalidKFactor    = errors.New("pilotratings: k-factor must be greater than zero")
)

// RaceEntrant is a Pilot's rating going into a race, along with where they finished. Lower positions are better.
type RaceEntrant struct {
	Name     string
	Rating   int
	Position int
}

// RatingChange is the outcome of a race for a single entrant.
type RatingChange struct {
	Name      string
	Position  int
	OldRating int
	NewRating int
	Delta     int
}

// Engine calculates ELO rating changes for a race.
type Engine struct {
	KFactor float64
}

func NewEngine() *Engine {
	return &Engine{KFactor: DefaultKFactor}
}

// ExpectedScore is the probability that a pilot rated ratingA beats a pilot rated ratingB.
func ExpectedScore(ratingA, ratingB int) float64 {
	return 1 / (1 + math.Pow(10, float64(ratingB-ratingA)/ratingScale))
}

// roundRating rounds half away from zero.
func roundRating(rating float64) int {
	return int(math.Round(rating))
}

// Calculate compares every entrant with every other entrant and returns their new ratings, ordered by
// finishing position. All comparisons use the ratings as they were before the race. Entrants are not modified.
func (e *Engine) Calculate(entrants []RaceEntrant) ([]RatingChange, error) {
	if e.KFactor <= 0 {
		return nil, ErrInvalidKFactor
	}

	if err := validateEntrants(entrants); err != nil {
		return nil, err
	}

	field := make([]RaceEntrant, len(entrants))
	copy(field, entrants)

	sort.SliceStable(field, func(i, j int) bool {
		return field[i].Position < field[j].Position
	})

	changes := make([]RatingChange, 0, len(field))

	for i, a := range field {
		var total float64

		for j, b := range field {
			if i == j {
				continue
			}

			actual := 0.0

			if a.Position < b.Position {
				actual = 1.0
			}

			total += e.KFactor * (actual - ExpectedScore(a.Rating, b.Rating))
		}

		newRating := roundRating(float64(a.Rating) + total)

		changes = append(changes, RatingChange{
			Name:      a.Name,
			Position:  a.Position,
			OldRating: a.Rating,
			NewRating: newRating,
			Delta:     newRating - a.Rating,
		})
	}

	return changes, nil
}

func validateEntrants(entrants []RaceEntrant) error {
	if len(entrants) < 2 {
		return ErrNotEnoughEntrants
	}

	names := make(map[string]bool, len(entrants))
	positions := make(map[int]string, len(entrants))

	for _, entrant := range entrants {
		if names[entrant.Name] {
			return errors.Wrapf(ErrDuplicateEntrant, "pilot '%s'", entrant.Name)
		}

		names[entrant.Name] = true

		if entrant.Position <= 0 {
			return errors.Wrapf(ErrInvalidPosition, "pilot '%s' has position %d", entrant.Name, entrant.Position)
		}

		if other, ok := positions[entrant.Position]; ok {
			return errors.Wrapf(ErrDuplicatePosition, "pilots '%s' and '%s' both have position %d", other, entrant.Name, entrant.Position)
		}

		positions[entrant.Position] = entrant.Name
	}

	return nil
}
