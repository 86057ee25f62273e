package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-battleship/internal/battleship"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/sim"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagSimGames   int
	flagSimSave    bool
	flagSimRandom  []string
	flagSimLayouts []string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run computer-vs-computer matches without a UI",
	Long: `Play matches between two computer players as fast as possible and print
how many shots the winners needed. North always fires first.

Examples:
  battleship sim --games 1000
  battleship sim --random south          # adaptive North against random South
  battleship sim --layout classic,crossing --save`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of matches")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store each match in the database")
	simCmd.Flags().StringSliceVar(&flagSimRandom, "random", nil, "Sides that fire at random: north, south")
	simCmd.Flags().StringSliceVar(&flagSimLayouts, "layout", nil, "Fleet layouts for North and South (name or file)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimGames <= 0 {
		return fmt.Errorf("--games must be positive, got %d", flagSimGames)
	}

	opts := sim.Options{
		Games:    flagSimGames,
		Seed:     flagSeed,
		Adaptive: [2]bool{true, true},
		Logger:   logger,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	for _, side := range flagSimRandom {
		switch side {
		case "north":
			opts.Adaptive[0] = false
		case "south":
			opts.Adaptive[1] = false
		default:
			return fmt.Errorf("--random: unknown side %q", side)
		}
	}

	if len(flagSimLayouts) > 2 {
		return fmt.Errorf("--layout takes at most two layouts")
	}
	for i, ref := range flagSimLayouts {
		if ref == "" {
			continue
		}
		layout, err := config.LoadLayout(ref)
		if err != nil {
			return err
		}
		opts.Layouts[i] = layout
	}

	var record sim.Recorder
	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		record = func(res core.MatchResult) error {
			_, err := store.SaveMatch(tui.MatchFromResult(res))
			return err
		}
	}

	// Progress goes to the terminal even when the shared logger is silent.
	progress := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})
	progress.Info("running", "games", opts.Games, "seed", opts.Seed, "adaptive", opts.Adaptive)

	start := time.Now()
	sum, err := sim.Run(opts, record)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games:       %d in %s\n", sum.Games, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "Wins:        North %d, South %d\n", sum.Wins[0], sum.Wins[1])
	fmt.Fprintf(out, "Shots to win: avg %.1f, min %d, max %d (of %d cells)\n",
		sum.AvgShots, sum.MinShots, sum.MaxShots, engine.CellCount)
	fmt.Fprintf(out, "Turns:       avg %.1f\n", sum.AvgTurns)
	return nil
}
