package pilotratings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrSelectionNotNumeric = errors.New("pilotratings: invalid input")
	ErrSelectionOutOfRange = errors.New("pilotratings: invalid index")
	ErrSelectionDuplicate  = errors.New("pilotratings: pilot already selected")
	ErrPositionNotNumeric  = errors.New("pilotratings: position is not a number")
)

// SelectionError is a single token of a selection that could not be used.
type SelectionError struct {
	Token  string
	Reason error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Token)
}

func (e *SelectionError) Cause() error {
	return e.Reason
}

func (e *SelectionError) Unwrap() error {
	return e.Reason
}

// ParseSelection reads a space separated list of roster indices. Tokens which are not
// non-negative integers, fall outside the roster or repeat an earlier index are skipped and
// reported individually, so a partly valid selection still yields the valid indices.
func ParseSelection(input string, rosterSize int) (indices []int, problems []error) {
	seen := make(map[int]bool)

	for _, token := range strings.Fields(input) {
		if !isDigits(token) {
			problems = append(problems, &SelectionError{Token: token, Reason: ErrSelectionNotNumeric})
			continue
		}

		index, err := strconv.Atoi(token)

		if err != nil || index >= rosterSize {
			problems = append(problems, &SelectionError{Token: token, Reason: ErrSelectionOutOfRange})
			continue
		}

		if seen[index] {
			problems = append(problems, &SelectionError{Token: token, Reason: ErrSelectionDuplicate})
			continue
		}

		seen[index] = true
		indices = append(indices, index)
	}

	return indices, problems
}

// ParsePosition validates a single finishing position against the positions already handed out.
func ParsePosition(input string, taken map[int]bool) (int, error) {
	input = strings.TrimSpace(input)

	if !isDigits(input) {
		return 0, errors.Wrap(ErrPositionNotNumeric, input)
	}

	position, err := strconv.Atoi(input)

	if err != nil {
		return 0, errors.Wrap(ErrPositionNotNumeric, input)
	}

	if position <= 0 {
		return 0, ErrInvalidPosition
	}

	if taken[position] {
		return 0, errors.Wrapf(ErrDuplicatePosition, "position %d", position)
	}

	return position, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
