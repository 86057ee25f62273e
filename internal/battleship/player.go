package battleship

import (
	"math/rand"
	"time"
)

// Kind says who chooses a player's attacks.
type Kind int

const (
	KindHuman Kind = iota
	KindComputer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Player owns a board and, when computer-controlled, a targeting strategy.
type Player struct {
	kind  Kind
	name  string
	board *Board
	ai    *Targeting
}

// Attack is a resolved attack: where it landed and what it found.
type Attack struct {
	Coord   Coord
	Outcome Outcome
}

// ComputerOption configures a computer player.
type ComputerOption func(*computerOptions)

type computerOptions struct {
	rng      *rand.Rand
	adaptive bool
}

// WithRand sets the random source used for random-mode sampling.
func WithRand(rng *rand.Rand) ComputerOption {
	return func(o *computerOptions) {
		o.rng = rng
	}
}

// WithAdaptiveTargeting turns hunt/target/lock on or off. On by default.
func WithAdaptiveTargeting(enabled bool) ComputerOption {
	return func(o *computerOptions) {
		o.adaptive = enabled
	}
}

// NewHuman creates a player whose attacks are supplied by the driver.
func NewHuman(name string) *Player {
	return &Player{
		kind:  KindHuman,
		name:  name,
		board: NewBoard(),
	}
}

// NewComputer creates a computer-controlled player.
func NewComputer(name string, opts ...ComputerOption) *Player {
	o := computerOptions{adaptive: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Player{
		kind:  KindComputer,
		name:  name,
		board: NewBoard(),
		ai:    NewTargeting(o.rng, o.adaptive),
	}
}

// Kind returns whether the player is human or computer.
func (p *Player) Kind() Kind {
	return p.kind
}

// IsComputer reports whether the player picks its own attacks.
func (p *Player) IsComputer() bool {
	return p.kind == KindComputer
}

// Name returns the display name.
func (p *Player) Name() string {
	return p.name
}

// Board returns the player's own board.
func (p *Player) Board() *Board {
	return p.board
}

// Targeting returns the computer strategy, or nil for human players.
func (p *Player) Targeting() *Targeting {
	return p.ai
}

// ComputerAttack picks a cell with the targeting strategy and attacks it on opp.
func (p *Player) ComputerAttack(opp *Board) (Attack, error) {
	if p.kind != KindComputer {
		return Attack{}, ErrNotComputer
	}

	c, err := p.ai.Next(opp)
	if err != nil {
		return Attack{}, err
	}
	return Attack{Coord: c, Outcome: opp.ReceiveAttack(c)}, nil
}

// UpdateStrategy feeds an attack outcome back into the targeting strategy.
// It does nothing for human players.
func (p *Player) UpdateStrategy(outcome Outcome, c Coord, opp *Board) {
	if p.ai == nil {
		return
	}
	p.ai.Update(outcome, c, opp)
}

// reset clears the board and any targeting knowledge.
func (p *Player) reset() {
	p.board.Reset()
	if p.ai != nil {
		p.ai.Reset()
	}
}
