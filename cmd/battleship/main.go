// battleship is a terminal Battleship game: place a fleet on a 10x10 grid and
// trade shots with a computer opponent, or watch two computers play.
//
// Usage:
//
//	battleship list              - List available modes
//	battleship play [mode]       - Play a mode (default: battleship)
//	battleship menu              - Start menu to pick modes interactively
//	battleship scores [mode]     - Show match history and high scores
//	battleship sim               - Run headless computer-vs-computer matches
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible matches
//	--db <path>          - Set database path (default: ~/.battleship/battleship.db)
//	--config <path>      - Custom battleship.yaml
//	--difficulty <name>  - easy, normal or hard
//	--log-file <path>    - Write logs to a file
//	--debug              - Log turn-by-turn details
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship in your terminal",
	Long: `Battleship is a terminal game on two 10x10 grids. Place five ships,
then take turns firing at the enemy fleet until one side is sunk.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View match history and high scores
  sim      - Run computer-vs-computer matches without a UI

Examples:
  battleship play
  battleship play battleship_watch --fps 60
  battleship menu --difficulty hard
  battleship sim --games 500`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupGames(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.battleship/battleship.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom battleship.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug details")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// logger is shared by every command. Interactive commands never log to the
// terminal, so it writes to --log-file or nowhere.
var logger = log.New(io.Discard)

// setupGames builds the logger and hands flags to the game package.
func setupGames(stderr io.Writer) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	l, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	} else {
		logger = l
	}

	battleship.SetConfigPath(flagConfig)
	battleship.SetDifficultyPreset(preset)
	battleship.SetLogger(logger)
	return nil
}

func newLogger(path string, debug bool) (*log.Logger, error) {
	if path == "" {
		return log.New(io.Discard), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l, nil
}

// openStore opens the match database. Failure is reported and play goes on
// without history.
func openStore(stderr io.Writer) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: could not open match database: %v\n", err)
		logger.Warn("match database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
