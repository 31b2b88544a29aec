package pilotratings

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	nameColumnWidth   = 20
	ratingColumnWidth = 10
	deltaColumnWidth  = 10

	noDelta = "N/A"
)

// FormatDelta renders a delta with an explicit sign, or N/A if the pilot has not been rated yet.
func FormatDelta(delta *int) string {
	if delta == nil {
		return noDelta
	}

	return fmt.Sprintf("%+d", *delta)
}

// DisplayPilots writes the pilots as a table, highest rating first. Positive deltas are green and
// negative deltas red, but only if supportsColor says so.
func DisplayPilots(w io.Writer, pilots []*Pilot, supportsColor func() bool) {
	if len(pilots) == 0 {
		fmt.Fprintln(w, "No pilots available.")
		return
	}

	useColor := supportsColor != nil && supportsColor()

	gain := color.New(color.FgHiGreen)
	loss := color.New(color.FgHiRed)

	if useColor {
		gain.EnableColor()
		loss.EnableColor()
	} else {
		gain.DisableColor()
		loss.DisableColor()
	}

	standings := make([]*Pilot, len(pilots))
	copy(standings, pilots)
	sortByRating(standings)

	fmt.Fprintln(w, "\nCurrent Pilots:")
	fmt.Fprintf(w, "%-*s%-*s%-*s\n", nameColumnWidth, "Name", ratingColumnWidth, "Rating", deltaColumnWidth, "Delta")

	for _, pilot := range standings {
		// pad before colouring so escape codes don't count towards the column width
		delta := fmt.Sprintf("%-*s", deltaColumnWidth, FormatDelta(pilot.Delta))

		switch {
		case pilot.Delta != nil && *pilot.Delta > 0:
			delta = gain.Sprint(delta)
		case pilot.Delta != nil && *pilot.Delta < 0:
			delta = loss.Sprint(delta)
		}

		fmt.Fprintf(w, "%-*s%-*d%s\n", nameColumnWidth, pilot.Name, ratingColumnWidth, pilot.Rating, delta)
	}
}
