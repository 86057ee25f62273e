package battleship

import (
	"fmt"
	"sort"
)

// noShip marks an empty cell in Board.cells.
const noShip = -1

// Outcome is the result of resolving one attack against a board.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeAlreadyAttacked
	OutcomeInvalid
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeAlreadyAttacked:
		return "already-attacked"
	case OutcomeInvalid:
		return "invalid-coordinates"
	default:
		return "unknown"
	}
}

// Definitive reports whether the attack landed on a fresh cell and consumed the turn.
func (o Outcome) Definitive() bool {
	return o == OutcomeHit || o == OutcomeMiss
}

// CellState is what a renderer needs to know about one cell.
type CellState int

const (
	CellWater CellState = iota
	CellShip
	CellHit
	CellMiss
)

// Board is a 10x10 grid of ship occupancy plus the record of attacks made
// against it. The board owns every ship placed on it; cells refer to ships by
// index into the ship list.
type Board struct {
	cells  [BoardSize][BoardSize]int
	ships  []*Ship
	hits   map[Coord]struct{}
	misses map[Coord]struct{}
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears all ships and attack history.
func (b *Board) Reset() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = noShip
		}
	}
	b.ships = nil
	b.hits = make(map[Coord]struct{})
	b.misses = make(map[Coord]struct{})
}

// PlaceShip puts ship on the board starting at origin and extending along dir.
// Every target cell is validated before anything is written, so a rejected
// placement leaves the board untouched.
func (b *Board) PlaceShip(ship *Ship, origin Coord, dir Direction) error {
	if ship == nil {
		return ErrNilShip
	}
	if !origin.InBounds() {
		return fmt.Errorf("%w: origin %s", ErrOutOfBounds, origin)
	}

	cells := Run(origin, dir, ship.Length())
	for _, c := range cells {
		if !c.InBounds() {
			return fmt.Errorf("%w: length %d %s from %s", ErrOutOfBounds, ship.Length(), dir, origin)
		}
		if b.cells[c.Row][c.Col] != noShip {
			return fmt.Errorf("%w at %s", ErrOverlap, c)
		}
	}

	idx := len(b.ships)
	b.ships = append(b.ships, ship)
	for _, c := range cells {
		b.cells[c.Row][c.Col] = idx
	}
	return nil
}

// ReceiveAttack resolves an attack at c. Repeated attacks on the same cell
// return OutcomeAlreadyAttacked without changing anything.
func (b *Board) ReceiveAttack(c Coord) Outcome {
	if !c.InBounds() {
		return OutcomeInvalid
	}
	if b.Attacked(c) {
		return OutcomeAlreadyAttacked
	}

	idx := b.cells[c.Row][c.Col]
	if idx == noShip {
		b.misses[c] = struct{}{}
		return OutcomeMiss
	}

	b.ships[idx].Hit()
	b.hits[c] = struct{}{}
	return OutcomeHit
}

// AllShipsSunk reports whether every placed ship is sunk. A board with no
// ships has not been won.
func (b *Board) AllShipsSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, s := range b.ships {
		if !s.IsSunk() {
			return false
		}
	}
	return true
}

// ShipAt returns the ship occupying c, or nil.
func (b *Board) ShipAt(c Coord) *Ship {
	if !c.InBounds() {
		return nil
	}
	idx := b.cells[c.Row][c.Col]
	if idx == noShip {
		return nil
	}
	return b.ships[idx]
}

// Occupied reports whether a ship covers c.
func (b *Board) Occupied(c Coord) bool {
	return b.ShipAt(c) != nil
}

// IsHit reports whether c was attacked and found a ship.
func (b *Board) IsHit(c Coord) bool {
	_, ok := b.hits[c]
	return ok
}

// IsMiss reports whether c was attacked and found water.
func (b *Board) IsMiss(c Coord) bool {
	_, ok := b.misses[c]
	return ok
}

// Attacked reports whether c has been attacked at all.
func (b *Board) Attacked(c Coord) bool {
	return b.IsHit(c) || b.IsMiss(c)
}

// AttackCount is the number of distinct cells attacked.
func (b *Board) AttackCount() int {
	return len(b.hits) + len(b.misses)
}

// Unattacked is the number of cells still open to attack.
func (b *Board) Unattacked() int {
	return CellCount - b.AttackCount()
}

// Cell summarises c for rendering. Attack results take precedence over occupancy.
func (b *Board) Cell(c Coord) CellState {
	switch {
	case b.IsHit(c):
		return CellHit
	case b.IsMiss(c):
		return CellMiss
	case b.Occupied(c):
		return CellShip
	default:
		return CellWater
	}
}

// Hits returns the hit coordinates in row-major order.
func (b *Board) Hits() []Coord {
	return sortedCoords(b.hits)
}

// Misses returns the missed coordinates in row-major order.
func (b *Board) Misses() []Coord {
	return sortedCoords(b.misses)
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

// ShipCells returns every occupied coordinate in row-major order.
func (b *Board) ShipCells() []Coord {
	var cells []Coord
	for r := range BoardSize {
		for c := range BoardSize {
			if b.cells[r][c] != noShip {
				cells = append(cells, Coord{r, c})
			}
		}
	}
	return cells
}

// SunkCount is the number of placed ships that are sunk.
func (b *Board) SunkCount() int {
	n := 0
	for _, s := range b.ships {
		if s.IsSunk() {
			n++
		}
	}
	return n
}

func sortedCoords(set map[Coord]struct{}) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
