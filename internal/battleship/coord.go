// Package battleship implements the game-logic engine for two-player grid
// battleship: ships, boards, attack resolution, the turn state machine and the
// computer opponent's targeting strategy.
//
// The engine is synchronous and has no rendering, input or timing concerns.
// A presentation layer places ships, calls Game.ProcessTurn and reads board
// snapshots back for display.
package battleship

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of every board.
const BoardSize = 10

// CellCount is the number of cells on a board.
const CellCount = BoardSize * BoardSize

// Coord is a (row, col) cell address. Valid coordinates lie in [0, BoardSize).
type Coord struct {
	Row int
	Col int
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// InBounds reports whether c addresses a cell on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Neighbors returns the in-bounds orthogonal neighbours in the order
// up, down, left, right. Edge cells have fewer than four.
func (c Coord) Neighbors() []Coord {
	candidates := [4]Coord{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}

	result := make([]Coord, 0, 4)
	for _, n := range candidates {
		if n.InBounds() {
			result = append(result, n)
		}
	}
	return result
}

// Adjacent reports whether c and o share a row or column and are one cell apart.
func (c Coord) Adjacent(o Coord) bool {
	return c.Axis(o) != AxisNone
}

// Axis returns the axis along which c and o are adjacent, or AxisNone.
func (c Coord) Axis(o Coord) Axis {
	switch {
	case c.Row == o.Row && abs(c.Col-o.Col) == 1:
		return AxisHorizontal
	case c.Col == o.Col && abs(c.Row-o.Row) == 1:
		return AxisVertical
	default:
		return AxisNone
	}
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is the orientation of a placed ship, extending from its origin.
type Direction int

const (
	Horizontal Direction = iota // extends along increasing columns
	Vertical                    // extends along increasing rows
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Rotate returns the other direction.
func (d Direction) Rotate() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseDirection parses "horizontal"/"vertical" (or "h"/"v"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("battleship: unknown direction %q", s)
	}
}

// step returns the cell i places from c along d.
func (d Direction) step(c Coord, i int) Coord {
	if d == Vertical {
		return Coord{c.Row + i, c.Col}
	}
	return Coord{c.Row, c.Col + i}
}

// Run returns the length cells starting at origin along d. Cells may be out of
// bounds; callers validate.
func Run(origin Coord, d Direction, length int) []Coord {
	cells := make([]Coord, length)
	for i := range length {
		cells[i] = d.step(origin, i)
	}
	return cells
}

// Axis is the line a targeted ship has been found to lie on.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
