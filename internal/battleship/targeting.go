package battleship

import (
	"math/rand"
)

// Mode is the phase of the computer's targeting strategy.
type Mode int

const (
	ModeRandom    Mode = iota // no lead; sample random open cells
	ModeTargeting             // one hit; probe its neighbours
	ModeLocked                // two adjacent hits; walk along their axis
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeTargeting:
		return "targeting"
	case ModeLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// aiState is one of *hunting, *targeting or *locked. Only locked carries an
// axis and only the non-hunting states carry a candidate queue.
type aiState interface {
	mode() Mode
}

type hunting struct{}

func (*hunting) mode() Mode { return ModeRandom }

type targeting struct {
	queue []Coord
}

func (*targeting) mode() Mode { return ModeTargeting }

type locked struct {
	axis  Axis
	line  int // row for horizontal, column for vertical
	queue []Coord
}

func (*locked) mode() Mode { return ModeLocked }

// Targeting is the computer's hunt/target/lock strategy. It picks the next
// cell to attack and learns from each hit.
type Targeting struct {
	state    aiState
	run      []Coord
	rng      *rand.Rand
	adaptive bool
}

// NewTargeting creates a strategy in random mode. With adaptive false the
// strategy never leaves random mode.
func NewTargeting(rng *rand.Rand, adaptive bool) *Targeting {
	return &Targeting{
		state:    &hunting{},
		rng:      rng,
		adaptive: adaptive,
	}
}

// Mode returns the current phase.
func (t *Targeting) Mode() Mode {
	return t.state.mode()
}

// Axis returns the locked axis, or AxisNone outside locked mode.
func (t *Targeting) Axis() Axis {
	if l, ok := t.state.(*locked); ok {
		return l.axis
	}
	return AxisNone
}

// Adaptive reports whether hits steer the strategy.
func (t *Targeting) Adaptive() bool {
	return t.adaptive
}

// Pending returns a copy of the queued candidates, front first.
func (t *Targeting) Pending() []Coord {
	q := t.queue()
	if q == nil {
		return nil
	}
	out := make([]Coord, len(*q))
	copy(out, *q)
	return out
}

// Run returns a copy of the hits on the ship currently being hunted.
func (t *Targeting) Run() []Coord {
	out := make([]Coord, len(t.run))
	copy(out, t.run)
	return out
}

// Reset drops all knowledge and returns to random mode.
func (t *Targeting) Reset() {
	t.state = &hunting{}
	t.run = nil
}

func (t *Targeting) queue() *[]Coord {
	switch s := t.state.(type) {
	case *targeting:
		return &s.queue
	case *locked:
		return &s.queue
	default:
		return nil
	}
}

// Next chooses the next cell to attack on opp. Queued candidates that have
// since been attacked are discarded. Without a usable candidate it samples
// random cells until it draws an open one, which terminates because the board
// is checked for open cells first.
func (t *Targeting) Next(opp *Board) (Coord, error) {
	if opp.Unattacked() == 0 {
		return Coord{}, ErrBoardExhausted
	}

	if q := t.queue(); q != nil {
		for len(*q) > 0 {
			c := (*q)[0]
			*q = (*q)[1:]
			if !opp.Attacked(c) {
				return c, nil
			}
		}
	}

	for {
		c := Coord{Row: t.rng.Intn(BoardSize), Col: t.rng.Intn(BoardSize)}
		if !opp.Attacked(c) {
			return c, nil
		}
	}
}

// Update feeds the outcome of an attack at c back into the strategy. Only
// hits matter.
func (t *Targeting) Update(outcome Outcome, c Coord, opp *Board) {
	if outcome != OutcomeHit || !t.adaptive {
		return
	}

	t.run = append(t.run, c)

	if ship := opp.ShipAt(c); ship != nil && ship.IsSunk() {
		t.Reset()
		return
	}

	switch s := t.state.(type) {
	case *locked:
		s.queue = t.extend(s.axis, s.line)

	case *targeting:
		last := t.run[len(t.run)-1]
		if len(t.run) >= 2 {
			prev := t.run[len(t.run)-2]
			if axis := prev.Axis(last); axis != AxisNone {
				line := last.Row
				if axis == AxisVertical {
					line = last.Col
				}
				t.state = &locked{axis: axis, line: line, queue: t.extend(axis, line)}
				return
			}
		}
		s.queue = append(s.queue, c.Neighbors()...)

	default:
		t.state = &targeting{queue: c.Neighbors()}
	}
}

// extend returns the cells just beyond both ends of the known run on line,
// lower end first. Ends at the board edge contribute nothing.
func (t *Targeting) extend(axis Axis, line int) []Coord {
	lo, hi := BoardSize, -1
	for _, h := range t.run {
		var pos int
		switch {
		case axis == AxisHorizontal && h.Row == line:
			pos = h.Col
		case axis == AxisVertical && h.Col == line:
			pos = h.Row
		default:
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	if hi < 0 {
		return nil
	}

	cellAt := func(pos int) Coord {
		if axis == AxisHorizontal {
			return Coord{Row: line, Col: pos}
		}
		return Coord{Row: pos, Col: line}
	}

	queue := make([]Coord, 0, 2)
	if before := cellAt(lo - 1); before.InBounds() {
		queue = append(queue, before)
	}
	if after := cellAt(hi + 1); after.InBounds() {
		queue = append(queue, after)
	}
	return queue
}
