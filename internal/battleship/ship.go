package battleship

import "fmt"

// Ship tracks the length and accumulated damage of one placed vessel.
type Ship struct {
	kind   ShipType
	length int
	hits   int
}

// NewShip creates an untyped ship of the given length.
func NewShip(length int) (*Ship, error) {
	if length <= 0 {
		return nil, fmt.Errorf("battleship: ship length must be positive, got %d", length)
	}
	return &Ship{length: length}, nil
}

// newTypedShip creates a ship for one of the fleet types.
func newTypedShip(t ShipType) *Ship {
	return &Ship{kind: t, length: t.Length()}
}

// Hit records one point of damage. Calling it on a sunk ship is harmless.
func (s *Ship) Hit() {
	s.hits++
}

// IsSunk reports whether the ship has taken at least length hits.
func (s *Ship) IsSunk() bool {
	return s.hits >= s.length
}

// Length returns the number of cells the ship occupies.
func (s *Ship) Length() int {
	return s.length
}

// Hits returns the damage taken so far.
func (s *Ship) Hits() int {
	return s.hits
}

// Type returns the fleet type, or ShipUnknown for ships built with NewShip.
func (s *Ship) Type() ShipType {
	return s.kind
}
