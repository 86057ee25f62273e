package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show match history and high scores",
	Long: `Display recent matches, win/loss records and the best scores for a mode
(default: battleship).

Examples:
  battleship scores
  battleship scores battleship_watch --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
}

func runScores(cmd *cobra.Command, args []string) error {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	matches, err := store.RecentMatches(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Match History - %s\n\n", game.Title())

	if len(matches) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'battleship play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %-6s  %s\n", "#", "Winner", "Shots", "Turns", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %-6s  %s\n", "-", "------", "-----", "-----", "----", "----")
	for i, m := range matches {
		fmt.Fprintf(out, "  %-4d  %-10s  %-5d  %-5d  %-6s  %s\n",
			i+1, m.Winner, m.WinnerShots(), m.Turns,
			fmt.Sprintf("%d:%02d", m.Duration/60, m.Duration%60),
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	latest := matches[0]
	for _, name := range []string{latest.Player1, latest.Player2} {
		rec, err := store.PlayerRecord(gameID, name)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s: %d wins, %d losses", rec.Player, rec.Wins, rec.Losses)
		if rec.BestShots > 0 {
			line += fmt.Sprintf(", best win in %d shots", rec.BestShots)
		}
		fmt.Fprintln(out, line)
	}

	if high, err := store.HighScore(gameID); err == nil && high > 0 {
		fmt.Fprintf(out, "Best score: %d\n", high)
	}
	return nil
}
