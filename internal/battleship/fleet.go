package battleship

import (
	"fmt"
	"strings"
)

// ShipType identifies one of the fixed fleet vessels.
type ShipType int

const (
	ShipUnknown ShipType = iota
	Carrier
	Battleship
	Cruiser
	Submarine
	Destroyer
)

// String returns the ship's display name.
func (t ShipType) String() string {
	switch t {
	case Carrier:
		return "Carrier"
	case Battleship:
		return "Battleship"
	case Cruiser:
		return "Cruiser"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	default:
		return "Unknown"
	}
}

// Length returns the number of cells a ship of this type occupies.
func (t ShipType) Length() int {
	switch t {
	case Carrier:
		return 5
	case Battleship:
		return 4
	case Cruiser, Submarine:
		return 3
	case Destroyer:
		return 2
	default:
		return 0
	}
}

// IsValid reports whether t is one of the fleet types.
func (t ShipType) IsValid() bool {
	return t >= Carrier && t <= Destroyer
}

// ParseShipType resolves a ship name case-insensitively.
func ParseShipType(name string) (ShipType, error) {
	needle := strings.TrimSpace(name)
	for _, t := range DefaultFleet() {
		if strings.EqualFold(t.String(), needle) {
			return t, nil
		}
	}
	return ShipUnknown, fmt.Errorf("%w: %q", ErrUnknownShip, name)
}

// DefaultFleet returns the ship types every player must place, largest first.
func DefaultFleet() []ShipType {
	return []ShipType{Carrier, Battleship, Cruiser, Submarine, Destroyer}
}

// FleetCells is the total number of cells covered by the default fleet.
func FleetCells() int {
	total := 0
	for _, t := range DefaultFleet() {
		total += t.Length()
	}
	return total
}
