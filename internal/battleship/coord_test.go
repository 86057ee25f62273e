package battleship

import (
	"errors"
	"testing"
)

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		c    Coord
		want []Coord
	}{
		{"centre", At(4, 4), []Coord{At(3, 4), At(5, 4), At(4, 3), At(4, 5)}},
		{"top-left corner", At(0, 0), []Coord{At(1, 0), At(0, 1)}},
		{"bottom-right corner", At(9, 9), []Coord{At(8, 9), At(9, 8)}},
		{"left edge", At(5, 0), []Coord{At(4, 0), At(6, 0), At(5, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Neighbors()
			if len(got) != len(tt.want) {
				t.Fatalf("Neighbors(%s) = %v, want %v", tt.c, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Neighbors(%s)[%d] = %s, want %s", tt.c, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		a, b Coord
		want Axis
	}{
		{At(3, 3), At(3, 4), AxisHorizontal},
		{At(3, 4), At(3, 3), AxisHorizontal},
		{At(3, 3), At(4, 3), AxisVertical},
		{At(3, 3), At(2, 3), AxisVertical},
		{At(3, 3), At(3, 5), AxisNone},
		{At(3, 3), At(4, 4), AxisNone},
		{At(3, 3), At(3, 3), AxisNone},
	}

	for _, tt := range tests {
		if got := tt.a.Axis(tt.b); got != tt.want {
			t.Errorf("%s.Axis(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"horizontal": Horizontal,
		"H":          Horizontal,
		" Vertical ": Vertical,
		"v":          Vertical,
	} {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection(diagonal) should fail")
	}
}

func TestFleet(t *testing.T) {
	want := map[string]int{
		"Carrier":    5,
		"Battleship": 4,
		"Cruiser":    3,
		"Submarine":  3,
		"Destroyer":  2,
	}

	fleet := DefaultFleet()
	if len(fleet) != len(want) {
		t.Fatalf("fleet has %d ships, want %d", len(fleet), len(want))
	}
	for _, st := range fleet {
		if want[st.String()] != st.Length() {
			t.Errorf("%s length = %d, want %d", st, st.Length(), want[st.String()])
		}
	}
	if FleetCells() != 17 {
		t.Errorf("FleetCells = %d, want 17", FleetCells())
	}
}

func TestParseShipType(t *testing.T) {
	got, err := ParseShipType("submarine")
	if err != nil || got != Submarine {
		t.Errorf("ParseShipType(submarine) = %v, %v", got, err)
	}

	_, err = ParseShipType("Rowboat")
	if !errors.Is(err, ErrUnknownShip) {
		t.Errorf("expected ErrUnknownShip, got %v", err)
	}
}
