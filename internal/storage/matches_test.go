package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveMatchGeneratesID(t *testing.T) {
	store := openTestStore(t)

	in := Match{
		Mode:     "battleship",
		Player1:  "You",
		Player2:  "Computer",
		Winner:   "Computer",
		Shots1:   40,
		Hits1:    12,
		Shots2:   41,
		Hits2:    17,
		Turns:    81,
		Duration: 95,
	}
	id, err := store.SaveMatch(in)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("match ID %q is not a UUID: %v", id, err)
	}

	got, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}

	in.MatchID = id
	got.ID = 0
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	got.CreatedAt = in.CreatedAt
	if got != in {
		t.Errorf("MatchByID() = %+v, want %+v", got, in)
	}
	if got.WinnerShots() != 41 {
		t.Errorf("WinnerShots() = %d, want 41", got.WinnerShots())
	}
}

func TestSaveMatchKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	given := uuid.NewString()
	id, err := store.SaveMatch(Match{MatchID: given, Mode: "battleship", Player1: "A", Player2: "B", Winner: "A"})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id != given {
		t.Errorf("SaveMatch() id = %q, want %q", id, given)
	}

	if _, err := store.SaveMatch(Match{MatchID: given, Mode: "battleship", Player1: "A", Player2: "B", Winner: "B"}); err == nil {
		t.Error("SaveMatch() accepted a duplicate match ID")
	}
}

func TestSaveMatchRejectsUnknownWinner(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveMatch(Match{Mode: "battleship", Player1: "A", Player2: "B", Winner: "C"})
	if err == nil {
		t.Fatal("SaveMatch() accepted a winner who did not play")
	}
}

func TestRecentMatches(t *testing.T) {
	store := openTestStore(t)

	save := func(mode, winner string, shots int) {
		t.Helper()
		m := Match{Mode: mode, Player1: "North", Player2: "South", Winner: winner, Shots1: shots, Shots2: shots}
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}
	save("battleship_watch", "North", 50)
	save("battleship_watch", "South", 60)
	save("battleship", "North", 70)
	save("battleship_watch", "North", 80)

	tests := []struct {
		name      string
		mode      string
		limit     int
		wantShots []int
	}{
		{name: "one mode newest first", mode: "battleship_watch", limit: 10, wantShots: []int{80, 60, 50}},
		{name: "limited", mode: "battleship_watch", limit: 2, wantShots: []int{80, 60}},
		{name: "all modes", mode: "", limit: 10, wantShots: []int{80, 70, 60, 50}},
		{name: "unknown mode", mode: "nope", limit: 10, wantShots: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.RecentMatches(tt.mode, tt.limit)
			if err != nil {
				t.Fatalf("RecentMatches() failed: %v", err)
			}
			if len(got) != len(tt.wantShots) {
				t.Fatalf("RecentMatches() returned %d matches, want %d", len(got), len(tt.wantShots))
			}
			for i, w := range tt.wantShots {
				if got[i].Shots1 != w {
					t.Errorf("match %d shots = %d, want %d", i, got[i].Shots1, w)
				}
			}
		})
	}
}

func TestPlayerRecord(t *testing.T) {
	store := openTestStore(t)

	matches := []Match{
		{Mode: "battleship", Player1: "You", Player2: "Computer", Winner: "You", Shots1: 55, Shots2: 54},
		{Mode: "battleship", Player1: "You", Player2: "Computer", Winner: "Computer", Shots1: 60, Shots2: 61},
		{Mode: "battleship", Player1: "Computer", Player2: "You", Winner: "You", Shots1: 48, Shots2: 48},
		{Mode: "battleship_watch", Player1: "North", Player2: "South", Winner: "North", Shots1: 30, Shots2: 29},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	tests := []struct {
		mode, player string
		want         Record
	}{
		{"battleship", "You", Record{Player: "You", Games: 3, Wins: 2, Losses: 1, BestShots: 48}},
		{"battleship", "Computer", Record{Player: "Computer", Games: 3, Wins: 1, Losses: 2, BestShots: 61}},
		{"battleship", "Nobody", Record{Player: "Nobody"}},
		{"battleship_watch", "South", Record{Player: "South", Games: 1, Losses: 1}},
	}
	for _, tt := range tests {
		got, err := store.PlayerRecord(tt.mode, tt.player)
		if err != nil {
			t.Fatalf("PlayerRecord(%s, %s) failed: %v", tt.mode, tt.player, err)
		}
		if got != tt.want {
			t.Errorf("PlayerRecord(%s, %s) = %+v, want %+v", tt.mode, tt.player, got, tt.want)
		}
	}
}
