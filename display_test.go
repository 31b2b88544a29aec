package pilotratings

import (
	"bytes"
	"strings"
	"testing"
)

func displayRoster() []*Pilot {
	return []*Pilot{
		{Name: "Bob", Rating: 1200},
		{Name: "Carol", Rating: 1184, Delta: intPtr(-16)},
		{Name: "Alice", Rating: 1216, Delta: intPtr(16)},
		{Name: "Dave", Rating: 1200, Delta: intPtr(0)},
	}
}

func TestDisplayPilots_Plain(t *testing.T) {
	var buf bytes.Buffer

	DisplayPilots(&buf, displayRoster(), func() bool { return false })

	expected := "\nCurrent Pilots:\n" +
		"Name                Rating    Delta     \n" +
		"Alice               1216      +16       \n" +
		"Bob                 1200      N/A       \n" +
		"Dave                1200      +0        \n" +
		"Carol               1184      -16       \n"

	if buf.String() != expected {
		t.Errorf("unexpected table:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestDisplayPilots_Color(t *testing.T) {
	var buf bytes.Buffer

	DisplayPilots(&buf, displayRoster(), func() bool { return true })

	out := buf.String()

	if !strings.Contains(out, "\x1b[92m+16") {
		t.Errorf("expected a green positive delta, got %q", out)
	}

	if !strings.Contains(out, "\x1b[91m-16") {
		t.Errorf("expected a red negative delta, got %q", out)
	}

	if strings.Count(out, "\x1b[9") != 2 {
		t.Errorf("expected only two coloured deltas, got %q", out)
	}
}

func TestDisplayPilots_NilStrategyIsPlain(t *testing.T) {
	var buf bytes.Buffer

	DisplayPilots(&buf, displayRoster(), nil)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no escape codes, got %q", buf.String())
	}
}

func TestDisplayPilots_Empty(t *testing.T) {
	var buf bytes.Buffer

	DisplayPilots(&buf, nil, func() bool { return true })

	if buf.String() != "No pilots available.\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDisplayPilots_DoesNotReorderInput(t *testing.T) {
	pilots := displayRoster()

	DisplayPilots(&bytes.Buffer{}, pilots, nil)

	if pilots[0].Name != "Bob" || pilots[2].Name != "Alice" {
		t.Errorf("expected input order to be kept, got %s, %s", pilots[0].Name, pilots[2].Name)
	}
}

func TestFormatDelta(t *testing.T) {
	for expected, delta := range map[string]*int{
		"N/A": nil,
		"+5":  intPtr(5),
		"-12": intPtr(-12),
		"+0":  intPtr(0),
	} {
		if formatted := FormatDelta(delta); formatted != expected {
			t.Errorf("expected %s, got %s", expected, formatted)
		}
	}
}
