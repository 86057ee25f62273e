package battleship

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// State is the lifecycle state of a game.
type State int

const (
	StateRunning State = iota
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// maxPlacementAttempts bounds random placement of a single ship.
const maxPlacementAttempts = 1000

// Placement describes where one fleet ship goes.
type Placement struct {
	Ship      ShipType
	Origin    Coord
	Direction Direction
}

// Turn reports what a call to ProcessTurn did.
type Turn struct {
	Attacker *Player
	Coord    Coord
	Outcome  Outcome
	Sunk     ShipType // ShipUnknown unless this attack sank a ship
	Ended    bool     // the attack won the game
}

// Stats counts a player's definitive attacks.
type Stats struct {
	Shots int
	Hits  int
}

// Accuracy is hits over shots, or 0 before the first shot.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// Game runs a match between two players: fleet placement, alternating
// attacks and win detection.
type Game struct {
	players  [2]*Player
	current  int // index of the attacking player; the opponent is 1-current
	unplaced [2][]ShipType
	stats    [2]Stats
	turns    int
	state    State
	winner   *Player
	logger   *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes turn and strategy events to logger at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGame creates a game in setup between two distinct players. Player one
// attacks first.
func NewGame(p1, p2 *Player, opts ...Option) *Game {
	if p1 == nil || p2 == nil || p1 == p2 {
		panic("battleship: NewGame needs two distinct players")
	}

	g := &Game{
		players: [2]*Player{p1, p2},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Restart()
	return g
}

// Restart returns the game to setup: boards, fleets, counters, state and
// winner are cleared and player one attacks first.
func (g *Game) Restart() {
	for i, p := range g.players {
		p.reset()
		g.unplaced[i] = DefaultFleet()
		g.stats[i] = Stats{}
	}
	g.current = 0
	g.turns = 0
	g.state = StateRunning
	g.winner = nil
}

// Player1 returns the first player.
func (g *Game) Player1() *Player { return g.players[0] }

// Player2 returns the second player.
func (g *Game) Player2() *Player { return g.players[1] }

// Current returns the player whose turn it is.
func (g *Game) Current() *Player { return g.players[g.current] }

// Opponent returns the player being attacked this turn.
func (g *Game) Opponent() *Player { return g.players[1-g.current] }

// State returns whether the game is running or ended.
func (g *Game) State() State { return g.state }

// Winner returns the winner once the game has ended, otherwise nil.
func (g *Game) Winner() *Player { return g.winner }

// Turns is the number of definitive attacks made so far.
func (g *Game) Turns() int { return g.turns }

// Stats returns p's shot counters.
func (g *Game) Stats(p *Player) Stats {
	i, err := g.indexOf(p)
	if err != nil {
		return Stats{}
	}
	return g.stats[i]
}

func (g *Game) indexOf(p *Player) (int, error) {
	for i, candidate := range g.players {
		if candidate == p {
			return i, nil
		}
	}
	return 0, ErrForeignPlayer
}

// PlaceShip places the named fleet ship for p. The name must still be on p's
// unplaced list; on success exactly one entry is removed from it.
func (g *Game) PlaceShip(p *Player, name string, origin Coord, dir Direction) error {
	i, err := g.indexOf(p)
	if err != nil {
		return err
	}
	if g.state == StateEnded {
		return ErrGameOver
	}

	t, err := ParseShipType(name)
	if err != nil {
		return err
	}
	return g.place(i, t, origin, dir)
}

func (g *Game) place(i int, t ShipType, origin Coord, dir Direction) error {
	pos := -1
	for j, pending := range g.unplaced[i] {
		if pending == t {
			pos = j
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrShipAlreadyPlaced, t)
	}

	if err := g.players[i].board.PlaceShip(newTypedShip(t), origin, dir); err != nil {
		return err
	}

	g.unplaced[i] = append(g.unplaced[i][:pos:pos], g.unplaced[i][pos+1:]...)
	return nil
}

// AutoPlace places every ship still awaiting placement for p at random.
func (g *Game) AutoPlace(p *Player, rng *rand.Rand) error {
	i, err := g.indexOf(p)
	if err != nil {
		return err
	}
	if g.state == StateEnded {
		return ErrGameOver
	}

	for len(g.unplaced[i]) > 0 {
		t := g.unplaced[i][0]
		placed := false
		for range maxPlacementAttempts {
			origin := Coord{Row: rng.Intn(BoardSize), Col: rng.Intn(BoardSize)}
			dir := Horizontal
			if rng.Intn(2) == 1 {
				dir = Vertical
			}
			if g.place(i, t, origin, dir) == nil {
				placed = true
				break
			}
		}
		if !placed {
			return fmt.Errorf("%w: %s", ErrPlacementFailed, t)
		}
	}
	return nil
}

// ApplyLayout places each ship in layout for p. If any placement is
// rejected, p's fleet is reset and the rejection returned.
func (g *Game) ApplyLayout(p *Player, layout []Placement) error {
	i, err := g.indexOf(p)
	if err != nil {
		return err
	}
	if err := g.checkFleetsOpen(); err != nil {
		return err
	}

	for _, pl := range layout {
		if !pl.Ship.IsValid() {
			g.resetIndex(i)
			return fmt.Errorf("%w: %d", ErrUnknownShip, pl.Ship)
		}
		if err := g.place(i, pl.Ship, pl.Origin, pl.Direction); err != nil {
			g.resetIndex(i)
			return fmt.Errorf("layout %s: %w", pl.Ship, err)
		}
	}
	return nil
}

// UnplacedShips returns the ship types p has yet to place.
func (g *Game) UnplacedShips(p *Player) []ShipType {
	i, err := g.indexOf(p)
	if err != nil {
		return nil
	}
	out := make([]ShipType, len(g.unplaced[i]))
	copy(out, g.unplaced[i])
	return out
}

// IsSetupComplete reports whether p has placed the whole fleet.
func (g *Game) IsSetupComplete(p *Player) bool {
	i, err := g.indexOf(p)
	if err != nil {
		return false
	}
	return len(g.unplaced[i]) == 0
}

// CanStart reports whether both fleets are placed.
func (g *Game) CanStart() bool {
	return len(g.unplaced[0]) == 0 && len(g.unplaced[1]) == 0
}

// ResetPlayer clears p's board and restores the full fleet to place. It is
// only valid before the first attack; use Restart for a new match.
func (g *Game) ResetPlayer(p *Player) error {
	i, err := g.indexOf(p)
	if err != nil {
		return err
	}
	if err := g.checkFleetsOpen(); err != nil {
		return err
	}
	g.resetIndex(i)
	return nil
}

// checkFleetsOpen rejects fleet changes once the battle has begun. Both
// targeting states describe the boards as attacked so far.
func (g *Game) checkFleetsOpen() error {
	if g.state == StateEnded {
		return ErrGameOver
	}
	if g.players[0].board.AttackCount() > 0 || g.players[1].board.AttackCount() > 0 {
		return ErrBattleStarted
	}
	return nil
}

func (g *Game) resetIndex(i int) {
	g.players[i].reset()
	g.unplaced[i] = DefaultFleet()
	g.stats[i] = Stats{}
}

// ProcessTurn plays one attack for the current player. A computer picks its
// own target and target is ignored; a human attacks *target.
//
// A hit or miss hands the turn to the opponent unless it wins the game, in
// which case the winner stays current. Already-attacked and out-of-bounds
// attacks do not use up the turn.
func (g *Game) ProcessTurn(target *Coord) (Turn, error) {
	if g.state == StateEnded {
		return Turn{}, ErrGameOver
	}
	if !g.CanStart() {
		return Turn{}, ErrSetupIncomplete
	}

	attacker, defender := g.Current(), g.Opponent()
	board := defender.Board()
	turn := Turn{Attacker: attacker}

	switch attacker.Kind() {
	case KindComputer:
		before := attacker.ai.Mode()
		atk, err := attacker.ComputerAttack(board)
		if err != nil {
			return Turn{}, fmt.Errorf("%s attack: %w", attacker.Name(), err)
		}
		attacker.UpdateStrategy(atk.Outcome, atk.Coord, board)
		turn.Coord, turn.Outcome = atk.Coord, atk.Outcome

		if after := attacker.ai.Mode(); after != before {
			g.logger.Debug("targeting mode changed",
				"player", attacker.Name(),
				"from", before,
				"to", after,
				"axis", attacker.ai.Axis(),
			)
		}

	default:
		if target == nil {
			return Turn{}, ErrTargetRequired
		}
		turn.Coord = *target
		turn.Outcome = board.ReceiveAttack(*target)
	}

	if turn.Outcome.Definitive() {
		g.turns++
		g.stats[g.current].Shots++
		if turn.Outcome == OutcomeHit {
			g.stats[g.current].Hits++
			if ship := board.ShipAt(turn.Coord); ship != nil && ship.IsSunk() {
				turn.Sunk = ship.Type()
			}
		}
	}

	g.logger.Debug("turn",
		"player", attacker.Name(),
		"coord", turn.Coord,
		"outcome", turn.Outcome,
		"sunk", turn.Sunk,
	)

	if board.AllShipsSunk() {
		g.state = StateEnded
		g.winner = attacker
		turn.Ended = true
		g.logger.Debug("game over", "winner", attacker.Name(), "turns", g.turns)
		return turn, nil
	}

	if turn.Outcome.Definitive() {
		g.current = 1 - g.current
	}
	return turn, nil
}
