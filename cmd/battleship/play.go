package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: battleship).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space       - Place ship or fire
  R                 - Rotate ship during setup
  X                 - Place remaining ships at random
  C                 - Clear your fleet and start over
  P                 - Pause
  N                 - New match (after game over)
  B/Esc             - Back
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Computer fires at random and thinks slowly
  normal - Computer hunts around hits
  hard   - Computer hunts around hits and fires quickly

Examples:
  battleship play
  battleship play battleship_watch
  battleship play --difficulty easy
  battleship play --config ./my-battleship.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := battleship.IDVersus
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'battleship list' to see available modes)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(cmd.ErrOrStderr())
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "mode", gameID, "fps", flagFPS, "seed", flagSeed)
	if _, err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
