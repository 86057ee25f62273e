package sim

import (
	"errors"
	"testing"

	engine "github.com/vovakirdan/tui-battleship/internal/battleship"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

var bothAdaptive = [2]bool{true, true}

func TestPlayFinishes(t *testing.T) {
	for seed := range int64(10) {
		res, err := Play(seed, bothAdaptive, [2][]engine.Placement{}, nil)
		if err != nil {
			t.Fatalf("seed %d: Play() error = %v", seed, err)
		}
		if res.Hits[res.Winner] != engine.FleetCells() {
			t.Errorf("seed %d: winner hits = %d, want %d", seed, res.Hits[res.Winner], engine.FleetCells())
		}
		if res.Hits[1-res.Winner] >= engine.FleetCells() {
			t.Errorf("seed %d: loser sank the whole fleet", seed)
		}
		if got := res.Shots[0] + res.Shots[1]; got != res.Turns {
			t.Errorf("seed %d: shots %d != turns %d", seed, got, res.Turns)
		}
		if res.Mode != Mode {
			t.Errorf("seed %d: mode = %q", seed, res.Mode)
		}
	}
}

func TestPlayDeterministic(t *testing.T) {
	a, err := Play(7, bothAdaptive, [2][]engine.Placement{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Play(7, bothAdaptive, [2][]engine.Placement{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	a.Duration, b.Duration = 0, 0
	if a != b {
		t.Errorf("same seed gave different matches:\n%+v\n%+v", a, b)
	}
}

func TestPlayWithLayouts(t *testing.T) {
	layout, err := config.LoadLayout("classic")
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if _, err := Play(3, bothAdaptive, [2][]engine.Placement{layout, layout}, nil); err != nil {
		t.Errorf("Play() with layouts error = %v", err)
	}

	bad := []engine.Placement{layout[0], layout[0]}
	if _, err := Play(3, bothAdaptive, [2][]engine.Placement{bad, nil}, nil); err == nil {
		t.Error("Play() accepted a layout placing the same ship twice")
	}
}

func TestPlayWithPartialLayout(t *testing.T) {
	partial, err := config.ParseLayout([]byte("ships:\n  - {ship: Carrier, row: 0, col: 0, direction: h}\n"))
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}

	tests := []struct {
		name    string
		layouts [2][]engine.Placement
	}{
		{"north only", [2][]engine.Placement{partial, nil}},
		{"both sides", [2][]engine.Placement{partial, partial}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Play(1, bothAdaptive, tt.layouts, nil)
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if got := res.Hits[res.Winner]; got != engine.FleetCells() {
				t.Errorf("winner hits = %d, want the full fleet of %d", got, engine.FleetCells())
			}
		})
	}
}

func TestRunSummary(t *testing.T) {
	var recorded []core.MatchResult
	sum, err := Run(Options{Games: 8, Seed: 100, Adaptive: bothAdaptive}, func(r core.MatchResult) error {
		recorded = append(recorded, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if sum.Games != 8 || len(recorded) != 8 {
		t.Fatalf("games = %d, recorded = %d, want 8", sum.Games, len(recorded))
	}
	if sum.Wins[0]+sum.Wins[1] != 8 {
		t.Errorf("wins %v do not add up", sum.Wins)
	}
	if sum.MinShots < engine.FleetCells() || sum.MaxShots > engine.CellCount {
		t.Errorf("shots range [%d, %d] out of bounds", sum.MinShots, sum.MaxShots)
	}
	if sum.AvgShots < float64(sum.MinShots) || sum.AvgShots > float64(sum.MaxShots) {
		t.Errorf("average %.1f outside [%d, %d]", sum.AvgShots, sum.MinShots, sum.MaxShots)
	}
}

func TestRunStopsOnRecorderError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	sum, err := Run(Options{Games: 5, Adaptive: bothAdaptive}, func(core.MatchResult) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want boom", err)
	}
	if sum.Games != 1 {
		t.Errorf("games counted = %d, want 1", sum.Games)
	}
}

func TestAdaptiveBeatsRandom(t *testing.T) {
	adaptive, err := Run(Options{Games: 20, Seed: 1, Adaptive: bothAdaptive}, nil)
	if err != nil {
		t.Fatal(err)
	}
	random, err := Run(Options{Games: 20, Seed: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if adaptive.AvgShots >= random.AvgShots {
		t.Errorf("adaptive average %.1f shots, random %.1f; adaptive should need fewer",
			adaptive.AvgShots, random.AvgShots)
	}
}
