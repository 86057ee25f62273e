// Package battleship adapts the battleship engine to the tick-driven registry
// interface: fleet placement with a cursor, alternating fire against the
// computer, and a spectator mode where two computers play each other.
package battleship

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	engine "github.com/vovakirdan/tui-battleship/internal/battleship"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Registered game IDs.
const (
	IDVersus = "battleship"
	IDWatch  = "battleship_watch"
)

// Phase is where the match currently is.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseBattle
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseBattle:
		return "battle"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on top of the loaded config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes match and engine events to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game over an engine match.
type Game struct {
	watch bool
	cfg   config.BattleshipConfig
	rt    core.RuntimeConfig
	rng   *rand.Rand

	match *engine.Game
	human *engine.Player // nil when two computers play
	phase Phase

	cursor engine.Coord
	dir    engine.Direction
	think  int // ticks left before the computer fires

	lastShot [2]*engine.Coord // most recent attack by each player, for highlighting
	message  string
	alert    bool // message reports a rejection

	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a game against the computer, or a spectator game when watch is true.
func New(watch bool) *Game {
	cfg, err := config.LoadBattleship(configPath)
	if err != nil {
		logger.Warn("using default battleship config", "err", err)
		cfg = config.DefaultBattleshipConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBattleshipPreset(&cfg, difficultyPreset)
	}
	return NewWithConfig(cfg, watch)
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.BattleshipConfig, watch bool) *Game {
	return &Game{cfg: cfg, watch: watch}
}

func init() {
	registry.Register(IDVersus, "Battleship", func() registry.Game {
		return New(false)
	})
	registry.Register(IDWatch, "Battleship: Computer vs Computer", func() registry.Game {
		return New(true)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.watch {
		return IDWatch
	}
	return IDVersus
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.watch {
		return "Battleship: Computer vs Computer"
	}
	return "Battleship"
}

// Reset starts a new match: fresh players, enemy fleet deployed, and the
// human fleet either placed from config or left for manual placement.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	if g.rt.TickRate <= 0 {
		g.rt.TickRate = core.DefaultConfig().TickRate
	}
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.paused = false
	g.cursor = engine.At(0, 0)
	g.dir = engine.Horizontal
	g.lastShot = [2]*engine.Coord{}
	g.alert = false
	g.tooSmall = rt.ScreenW < minWidth || rt.ScreenH < minHeight

	var p1, p2 *engine.Player
	if g.watch {
		p1, p2 = g.newComputer("North"), g.newComputer("South")
		g.human = nil
	} else {
		p1, p2 = engine.NewHuman("You"), g.newComputer("Computer")
		g.human = p1
	}
	g.match = engine.NewGame(p1, p2, engine.WithLogger(logger))

	err := g.deploy(p2, g.cfg.Setup.EnemyLayout, true)
	if err == nil {
		err = g.deploy(p1, g.cfg.Setup.Layout, g.watch || g.cfg.Setup.AutoPlacePlayer)
	}

	switch {
	case err != nil:
		g.abort(err)
	case g.match.CanStart():
		g.startBattle()
	default:
		g.phase = PhaseSetup
		g.message = "Place your fleet."
	}
}

// abort ends the match without a winner; N starts a new one.
func (g *Game) abort(err error) {
	g.phase = PhaseOver
	g.setMessage("The match was aborted: "+err.Error(), true)
}

func (g *Game) newComputer(name string) *engine.Player {
	return engine.NewComputer(name,
		engine.WithRand(rand.New(rand.NewSource(g.rng.Int63()))),
		engine.WithAdaptiveTargeting(g.cfg.Computer.Adaptive),
	)
}

// deploy applies a configured layout to p, then fills any gaps at random
// when fill is set. A bad layout is logged and ignored; an error means p's
// fleet could not be completed.
func (g *Game) deploy(p *engine.Player, layout string, fill bool) error {
	if layout != "" {
		placements, err := config.LoadLayout(layout)
		if err == nil {
			err = g.match.ApplyLayout(p, placements)
		}
		if err != nil {
			logger.Warn("ignoring fleet layout", "player", p.Name(), "layout", layout, "err", err)
		}
	}
	if !fill {
		return nil
	}
	err := g.match.AutoPlace(p, g.rng)
	if err == nil {
		return nil
	}

	// The default fleet always fits an empty board, so this means a layout
	// left no room; start that fleet over.
	logger.Warn("random placement failed, retrying on an empty board", "player", p.Name(), "err", err)
	if err = g.match.ResetPlayer(p); err == nil {
		err = g.match.AutoPlace(p, g.rng)
	}
	if err != nil {
		logger.Error("cannot deploy fleet", "player", p.Name(), "err", err)
		return fmt.Errorf("deploy %s: %w", p.Name(), err)
	}
	return nil
}

func (g *Game) startBattle() {
	g.phase = PhaseBattle
	g.think = g.cfg.Computer.ThinkTicks
	if g.watch {
		g.message = fmt.Sprintf("%s opens fire.", g.match.Current().Name())
	} else {
		g.message = "All ships placed. Fire when ready."
	}
	g.alert = false
	logger.Debug("battle started", "mode", g.ID())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.phase == PhaseOver {
		rt := g.rt
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase != PhaseOver {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var msg string
	switch g.phase {
	case PhaseSetup:
		g.stepSetup(in)
	case PhaseBattle:
		msg = g.stepBattle(in)
	}
	return core.StepResult{State: g.State(), Message: msg}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = engine.At(
		core.Clamp(row, 0, engine.BoardSize-1),
		core.Clamp(col, 0, engine.BoardSize-1),
	)
}

func (g *Game) stepSetup(in core.InputFrame) {
	g.moveCursor(in)

	if in.Has(core.ActionRotate) {
		g.dir = g.dir.Rotate()
	}

	switch {
	case in.Has(core.ActionReset):
		if err := g.match.ResetPlayer(g.human); err != nil {
			logger.Error("cannot clear fleet", "err", err)
			g.setMessage("The fleet cannot be cleared: "+err.Error(), true)
			break
		}
		g.setMessage("Fleet cleared.", false)

	case in.Has(core.ActionRandom):
		if err := g.match.AutoPlace(g.human, g.rng); err != nil {
			g.setMessage("No room left for the remaining ships. Press C to clear.", true)
		}

	case in.Has(core.ActionConfirm):
		next, ok := g.nextShip()
		if !ok {
			break
		}
		if err := g.match.PlaceShip(g.human, next.String(), g.cursor, g.dir); err != nil {
			g.setMessage(rejection(next, err), true)
		} else {
			g.setMessage(fmt.Sprintf("%s placed at %s.", next, Label(g.cursor)), false)
		}
	}

	if g.match.CanStart() {
		g.startBattle()
	}
}

// nextShip is the ship the human places next.
func (g *Game) nextShip() (engine.ShipType, bool) {
	pending := g.match.UnplacedShips(g.human)
	if len(pending) == 0 {
		return engine.ShipUnknown, false
	}
	return pending[0], true
}

func (g *Game) stepBattle(in core.InputFrame) string {
	current := g.match.Current()
	if !current.IsComputer() {
		g.moveCursor(in)
		if !in.Has(core.ActionConfirm) {
			return ""
		}
		target := g.cursor
		return g.fire(&target)
	}

	if g.think > 0 {
		g.think--
		return ""
	}
	return g.fire(nil)
}

// fire plays one turn and reports it.
func (g *Game) fire(target *engine.Coord) string {
	turn, err := g.match.ProcessTurn(target)
	if err != nil {
		// Only reachable through a driver bug; stop rather than loop on it.
		logger.Error("turn failed", "err", err, "contract", engine.IsContractViolation(err))
		g.abort(err)
		return g.message
	}

	if !turn.Outcome.Definitive() {
		g.setMessage(fmt.Sprintf("%s was already fired at. Pick another cell.", Label(turn.Coord)), true)
		return ""
	}

	idx := g.indexOf(turn.Attacker)
	c := turn.Coord
	g.lastShot[idx] = &c
	g.setMessage(g.describe(turn), false)

	if turn.Ended {
		g.phase = PhaseOver
		res, _ := g.Result()
		logger.Info("match finished",
			"mode", g.ID(),
			"winner", res.WinnerName(),
			"turns", res.Turns,
			"shots", res.Shots[res.Winner],
		)
		return g.message
	}

	if g.match.Current().IsComputer() {
		g.think = g.cfg.Computer.ThinkTicks
	}
	return g.message
}

func (g *Game) indexOf(p *engine.Player) int {
	if p == g.match.Player2() {
		return 1
	}
	return 0
}

func (g *Game) describe(turn engine.Turn) string {
	who := turn.Attacker.Name()
	if turn.Attacker == g.human {
		who = "You"
	}

	var msg string
	switch {
	case turn.Sunk != engine.ShipUnknown && turn.Attacker == g.human:
		msg = fmt.Sprintf("%s fire at %s: you sank the %s!", who, Label(turn.Coord), turn.Sunk)
	case turn.Sunk != engine.ShipUnknown && g.human != nil:
		msg = fmt.Sprintf("%s fires at %s and sinks your %s!", who, Label(turn.Coord), turn.Sunk)
	case turn.Sunk != engine.ShipUnknown:
		msg = fmt.Sprintf("%s fires at %s and sinks a %s!", who, Label(turn.Coord), turn.Sunk)
	case turn.Attacker == g.human:
		msg = fmt.Sprintf("%s fire at %s: %s.", who, Label(turn.Coord), turn.Outcome)
	default:
		msg = fmt.Sprintf("%s fires at %s: %s.", who, Label(turn.Coord), turn.Outcome)
	}

	if turn.Ended {
		switch {
		case g.human == nil:
			msg += fmt.Sprintf(" %s wins.", who)
		case turn.Attacker == g.human:
			msg += " Enemy fleet destroyed. You win!"
		default:
			msg += " Your fleet is lost."
		}
	}
	return msg
}

func (g *Game) setMessage(msg string, alert bool) {
	g.message = msg
	g.alert = alert
}

// rejection turns a placement error into a status line.
func rejection(ship engine.ShipType, err error) string {
	switch {
	case errors.Is(err, engine.ErrOutOfBounds):
		return fmt.Sprintf("The %s does not fit there.", ship)
	case errors.Is(err, engine.ErrOverlap):
		return fmt.Sprintf("The %s would overlap another ship.", ship)
	default:
		return fmt.Sprintf("Cannot place the %s: %v", ship, err)
	}
}

// State returns the current game state. Score is only awarded to a human win:
// one point for every cell left unfired.
func (g *Game) State() core.GameState {
	score := 0
	if g.phase == PhaseOver && g.human != nil && g.match.Winner() == g.human {
		score = engine.CellCount - g.match.Stats(g.human).Shots
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Result summarises the match once it has a winner.
func (g *Game) Result() (core.MatchResult, bool) {
	if g.match == nil || g.match.Winner() == nil {
		return core.MatchResult{}, false
	}

	p1, p2 := g.match.Player1(), g.match.Player2()
	s1, s2 := g.match.Stats(p1), g.match.Stats(p2)
	return core.MatchResult{
		Mode:     g.ID(),
		Players:  [2]string{p1.Name(), p2.Name()},
		Winner:   g.indexOf(g.match.Winner()),
		Shots:    [2]int{s1.Shots, s2.Shots},
		Hits:     [2]int{s1.Hits, s2.Hits},
		Turns:    g.match.Turns(),
		Duration: time.Duration(g.tick) * time.Second / time.Duration(g.rt.TickRate),
	}, true
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Match exposes the underlying engine game.
func (g *Game) Match() *engine.Game {
	return g.match
}

// Label formats a coordinate the way the board is labelled: row letter then
// one-based column, e.g. "C7".
func Label(c engine.Coord) string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}
