package pilotratings

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const menu = `
Racing Rating (ELO System)
1. Add Pilot
2. Delete Pilot
3. Calculate ELO Ratings
4. Display Pilots
5. Exit`

// Session is the interactive menu loop around a League.
type Session struct {
	League        *League
	SupportsColor func() bool

	in  *bufio.Reader
	out io.Writer
}

func NewSession(league *League, in io.Reader, out io.Writer, supportsColor func() bool) *Session {
	return &Session{
		League:        league,
		SupportsColor: supportsColor,
		in:            bufio.NewReader(in),
		out:           out,
	}
}

// Run shows the menu until the user exits or input runs out. Neither is an error.
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.out, menu)

		choice, err := s.prompt("Enter your choice: ")

		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.addPilot()
		case "2":
			err = s.deletePilot()
		case "3":
			err = s.calculateRatings()
		case "4":
			DisplayPilots(s.out, s.League.Standings(), s.SupportsColor)
		case "5":
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}

		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// prompt reads a trimmed line. A final line without a newline is still returned; io.EOF is only
// returned once there is nothing left to read.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)

	line, err := s.in.ReadString('\n')

	if err == io.EOF && line != "" {
		err = nil
	}

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (s *Session) addPilot() error {
	name, err := s.prompt("Enter pilot name: ")

	if err != nil {
		return err
	}

	_, err = s.League.AddPilot(name)

	switch cause := errors.Cause(err); {
	case cause == ErrEmptyPilotName:
		fmt.Fprintln(s.out, "Pilot name cannot be empty.")
	case cause == ErrPilotExists:
		fmt.Fprintf(s.out, "Pilot '%s' already exists.\n", name)
	case err != nil:
		s.reportSaveError(err)
	default:
		fmt.Fprintf(s.out, "Pilot '%s' added successfully.\n", name)
	}

	return nil
}

func (s *Session) deletePilot() error {
	name, err := s.prompt("Enter pilot name to delete: ")

	if err != nil {
		return err
	}

	err = s.League.DeletePilot(name)

	switch {
	case errors.Cause(err) == ErrPilotNotFound:
		fmt.Fprintf(s.out, "Pilot '%s' not found.\n", name)
	case err != nil:
		s.reportSaveError(err)
	default:
		fmt.Fprintf(s.out, "Pilot '%s' deleted successfully.\n", name)
	}

	return nil
}

func (s *Session) calculateRatings() error {
	pilots := s.League.Pilots()

	fmt.Fprintln(s.out, "\nSelect pilots participating in the race:")

	for i, pilot := range pilots {
		fmt.Fprintf(s.out, "%d. %s\n", i, pilot.Name)
	}

	selection, err := s.prompt("Enter pilot numbers separated by space: ")

	if err != nil {
		return err
	}

	indices, problems := ParseSelection(selection, len(pilots))

	for _, problem := range problems {
		fmt.Fprintf(s.out, "%s. Skipping.\n", describeSelectionProblem(problem))
	}

	if len(indices) < 2 {
		fmt.Fprintln(s.out, "At least two pilots must be selected to calculate ratings.")
		return nil
	}

	names := make([]string, len(indices))

	for i, index := range indices {
		names[i] = pilots[index].Name
	}

	fmt.Fprintf(s.out, "Selected pilots: %s\n", strings.Join(names, ", "))

	results := make([]RaceResult, 0, len(names))
	taken := make(map[int]bool, len(names))

	for _, name := range names {
		position, err := s.promptPosition(name, taken)

		if err != nil {
			return err
		}

		taken[position] = true
		results = append(results, RaceResult{Name: name, Position: position})
	}

	changes, err := s.League.RecordRace(results)

	if errors.Cause(err) == ErrNotEnoughEntrants {
		fmt.Fprintln(s.out, "Not enough valid positions specified to calculate ratings.")
		return nil
	} else if err != nil && changes == nil {
		logrus.WithError(err).Error("Couldn't calculate ratings")
		fmt.Fprintf(s.out, "Error calculating ratings: %s\n", err)
		return nil
	}

	for _, change := range changes {
		fmt.Fprintf(s.out, "%s %s: %d -> %d (%s)\n", humanize.Ordinal(change.Position), change.Name, change.OldRating, change.NewRating, FormatDelta(&change.Delta))
	}

	if err != nil {
		s.reportSaveError(err)
		return nil
	}

	fmt.Fprintln(s.out, "ELO ratings calculated successfully.")

	return nil
}

// promptPosition asks until it gets a positive position nobody else has.
func (s *Session) promptPosition(name string, taken map[int]bool) (int, error) {
	for {
		input, err := s.prompt(fmt.Sprintf("Enter position for %s (must be a positive integer): ", name))

		if err != nil {
			return 0, err
		}

		position, err := ParsePosition(input, taken)

		switch errors.Cause(err) {
		case nil:
			return position, nil
		case ErrDuplicatePosition:
			fmt.Fprintf(s.out, "Position %s is already taken. Please enter a unique position.\n", input)
		case ErrInvalidPosition:
			fmt.Fprintf(s.out, "Invalid position for %s: Position must be greater than 0.\n", name)
		default:
			fmt.Fprintf(s.out, "Invalid position for %s: Not a number.\n", name)
		}
	}
}

func (s *Session) reportSaveError(err error) {
	logrus.WithError(err).Error("Couldn't save roster")
	fmt.Fprintf(s.out, "Error saving data: %s\n", err)
}

func describeSelectionProblem(err error) string {
	token := err.Error()

	if selErr, ok := err.(*SelectionError); ok {
		token = selErr.Token
	}

	switch errors.Cause(err) {
	case ErrSelectionOutOfRange:
		return fmt.Sprintf("Invalid index: %s", token)
	case ErrSelectionDuplicate:
		return fmt.Sprintf("Pilot %s is already selected", token)
	default:
		return fmt.Sprintf("Invalid input: %s", token)
	}
}
