// Package sim plays computer-versus-computer matches without a terminal, for
// benchmarking targeting strategies and seeding match history.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	engine "github.com/vovakirdan/tui-battleship/internal/battleship"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Mode is the game ID simulated matches are recorded under.
const Mode = "battleship_watch"

// maxAttacks bounds a match: each side can make at most one definitive
// attack per cell.
const maxAttacks = 2 * engine.CellCount

// ErrStalled is returned when a match fails to finish within maxAttacks.
var ErrStalled = errors.New("sim: match did not finish")

// Options controls a simulation run.
type Options struct {
	Games    int
	Seed     int64
	Adaptive [2]bool // per side; false makes that side fire at random
	Layouts  [2][]engine.Placement
	Logger   *log.Logger
}

// Summary aggregates a run.
type Summary struct {
	Games    int
	Wins     [2]int
	MinShots int // fewest shots a winner needed
	MaxShots int
	AvgShots float64
	AvgTurns float64
}

// Recorder receives each finished match.
type Recorder func(core.MatchResult) error

// Run plays opts.Games matches. Game i uses seed opts.Seed+i, so a run is
// reproducible. record may be nil.
func Run(opts Options, record Recorder) (Summary, error) {
	var sum Summary
	totalShots, totalTurns := 0, 0
	for i := range opts.Games {
		res, err := Play(opts.Seed+int64(i), opts.Adaptive, opts.Layouts, opts.Logger)
		if err != nil {
			return sum, fmt.Errorf("game %d: %w", i+1, err)
		}
		if record != nil {
			if err := record(res); err != nil {
				return sum, fmt.Errorf("game %d: %w", i+1, err)
			}
		}

		shots := res.Shots[res.Winner]
		if sum.Games == 0 || shots < sum.MinShots {
			sum.MinShots = shots
		}
		sum.MaxShots = max(sum.MaxShots, shots)
		sum.Wins[res.Winner]++
		sum.Games++
		totalShots += shots
		totalTurns += res.Turns
	}

	if sum.Games > 0 {
		sum.AvgShots = float64(totalShots) / float64(sum.Games)
		sum.AvgTurns = float64(totalTurns) / float64(sum.Games)
	}
	return sum, nil
}

// Play runs a single match between two computers. Ships a layout leaves out,
// or every ship for a nil layout, are placed at random.
func Play(seed int64, adaptive [2]bool, layouts [2][]engine.Placement, logger *log.Logger) (core.MatchResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed))
	names := [2]string{"North", "South"}

	var players [2]*engine.Player
	for i := range players {
		players[i] = engine.NewComputer(names[i],
			engine.WithRand(rand.New(rand.NewSource(rng.Int63()))),
			engine.WithAdaptiveTargeting(adaptive[i]),
		)
	}
	g := engine.NewGame(players[0], players[1], engine.WithLogger(logger))

	for i, p := range players {
		if layouts[i] != nil {
			if err := g.ApplyLayout(p, layouts[i]); err != nil {
				return core.MatchResult{}, fmt.Errorf("%s layout: %w", p.Name(), err)
			}
		}
		if err := g.AutoPlace(p, rng); err != nil {
			return core.MatchResult{}, fmt.Errorf("%s placement: %w", p.Name(), err)
		}
	}

	start := time.Now()
	for range maxAttacks {
		turn, err := g.ProcessTurn(nil)
		if err != nil {
			return core.MatchResult{}, err
		}
		if turn.Ended {
			break
		}
	}
	winner := g.Winner()
	if winner == nil {
		return core.MatchResult{}, ErrStalled
	}

	res := core.MatchResult{
		Mode:     Mode,
		Players:  names,
		Turns:    g.Turns(),
		Duration: time.Since(start),
	}
	for i, p := range players {
		st := g.Stats(p)
		res.Shots[i], res.Hits[i] = st.Shots, st.Hits
		if p == winner {
			res.Winner = i
		}
	}
	logger.Debug("simulated match", "seed", seed, "winner", winner.Name(), "turns", res.Turns)
	return res, nil
}
