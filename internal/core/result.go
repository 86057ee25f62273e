package core

import "time"

// MatchResult summarises a finished two-player match for storage and display.
// Index 0 is the player who moved first.
type MatchResult struct {
	Mode     string // game ID the match was played in
	Players  [2]string
	Winner   int // index into Players
	Shots    [2]int
	Hits     [2]int
	Turns    int
	Duration time.Duration
}

// WinnerName returns the winning player's name.
func (r MatchResult) WinnerName() string {
	if r.Winner < 0 || r.Winner > 1 {
		return ""
	}
	return r.Players[r.Winner]
}
