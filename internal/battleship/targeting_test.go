package battleship

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestTargeting(seed int64) *Targeting {
	return NewTargeting(rand.New(rand.NewSource(seed)), true)
}

// attackAndLearn resolves an attack at c on b and feeds it back to ai.
func attackAndLearn(ai *Targeting, b *Board, c Coord) Outcome {
	out := b.ReceiveAttack(c)
	ai.Update(out, c, b)
	return out
}

func sameCoords(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTargetingStartsRandom(t *testing.T) {
	ai := newTestTargeting(1)
	if ai.Mode() != ModeRandom {
		t.Errorf("Mode = %v, want random", ai.Mode())
	}
	if ai.Axis() != AxisNone {
		t.Errorf("Axis = %v, want none", ai.Axis())
	}
	if len(ai.Pending()) != 0 || len(ai.Run()) != 0 {
		t.Error("new strategy should have no candidates or run")
	}
}

func TestTargetingMissIsIgnored(t *testing.T) {
	b := NewBoard()
	ai := newTestTargeting(1)
	attackAndLearn(ai, b, At(3, 3))
	if ai.Mode() != ModeRandom || len(ai.Run()) != 0 {
		t.Error("a miss should not change the strategy")
	}
}

func TestTargetingFirstHitQueuesNeighbors(t *testing.T) {
	tests := []struct {
		name string
		hit  Coord
		want []Coord
	}{
		{"centre", At(4, 4), []Coord{At(3, 4), At(5, 4), At(4, 3), At(4, 5)}},
		{"corner", At(0, 9), []Coord{At(1, 9), At(0, 8)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			if err := b.PlaceShip(mustShip(t, 2), tt.hit, Vertical); err != nil {
				t.Fatal(err)
			}
			ai := newTestTargeting(1)
			attackAndLearn(ai, b, tt.hit)

			if ai.Mode() != ModeTargeting {
				t.Fatalf("Mode = %v, want targeting", ai.Mode())
			}
			if !sameCoords(ai.Pending(), tt.want) {
				t.Errorf("Pending = %v, want %v", ai.Pending(), tt.want)
			}
		})
	}
}

func TestTargetingLocksAndWalksTheLine(t *testing.T) {
	b := NewBoard()
	ship := mustShip(t, 4)
	if err := b.PlaceShip(ship, At(4, 3), Horizontal); err != nil {
		t.Fatal(err)
	}
	ai := newTestTargeting(1)

	attackAndLearn(ai, b, At(4, 4))
	attackAndLearn(ai, b, At(3, 4)) // miss above
	attackAndLearn(ai, b, At(4, 5))

	if ai.Mode() != ModeLocked || ai.Axis() != AxisHorizontal {
		t.Fatalf("after adjacent hits: mode %v axis %v, want locked horizontal", ai.Mode(), ai.Axis())
	}
	if want := []Coord{At(4, 3), At(4, 6)}; !sameCoords(ai.Pending(), want) {
		t.Errorf("Pending = %v, want %v", ai.Pending(), want)
	}

	attackAndLearn(ai, b, At(4, 6))
	if want := []Coord{At(4, 3), At(4, 7)}; !sameCoords(ai.Pending(), want) {
		t.Errorf("after extending right: Pending = %v, want %v", ai.Pending(), want)
	}

	attackAndLearn(ai, b, At(4, 3))
	if !ship.IsSunk() {
		t.Fatal("ship should be sunk")
	}
	if ai.Mode() != ModeRandom || ai.Axis() != AxisNone {
		t.Errorf("after sinking: mode %v axis %v, want random/none", ai.Mode(), ai.Axis())
	}
	if len(ai.Pending()) != 0 || len(ai.Run()) != 0 {
		t.Error("sinking should clear candidates and run")
	}
}

func TestTargetingLocksVertically(t *testing.T) {
	b := NewBoard()
	if err := b.PlaceShip(mustShip(t, 3), At(0, 2), Vertical); err != nil {
		t.Fatal(err)
	}
	ai := newTestTargeting(1)

	attackAndLearn(ai, b, At(0, 2))
	attackAndLearn(ai, b, At(1, 2))

	if ai.Mode() != ModeLocked || ai.Axis() != AxisVertical {
		t.Fatalf("mode %v axis %v, want locked vertical", ai.Mode(), ai.Axis())
	}
	// Row -1 is off the board, so only the lower end is queued.
	if want := []Coord{At(2, 2)}; !sameCoords(ai.Pending(), want) {
		t.Errorf("Pending = %v, want %v", ai.Pending(), want)
	}
}

func TestTargetingNonAdjacentHitKeepsTargeting(t *testing.T) {
	b := NewBoard()
	if err := b.PlaceShip(mustShip(t, 2), At(2, 2), Horizontal); err != nil {
		t.Fatal(err)
	}
	if err := b.PlaceShip(mustShip(t, 2), At(7, 7), Horizontal); err != nil {
		t.Fatal(err)
	}
	ai := newTestTargeting(1)

	attackAndLearn(ai, b, At(2, 2))
	attackAndLearn(ai, b, At(7, 7))

	if ai.Mode() != ModeTargeting {
		t.Fatalf("Mode = %v, want targeting", ai.Mode())
	}
	pending := ai.Pending()
	if len(pending) != 4+4 {
		t.Fatalf("expected neighbours of both hits queued, got %v", pending)
	}
	if pending[len(pending)-1] != At(7, 8) {
		t.Errorf("last candidate = %s, want (7,8)", pending[len(pending)-1])
	}
}

func TestNextSkipsAttackedCandidates(t *testing.T) {
	b := NewBoard()
	if err := b.PlaceShip(mustShip(t, 2), At(4, 4), Vertical); err != nil {
		t.Fatal(err)
	}
	ai := newTestTargeting(1)
	attackAndLearn(ai, b, At(4, 4))

	b.ReceiveAttack(At(3, 4))

	c, err := ai.Next(b)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if c != At(5, 4) {
		t.Errorf("Next = %s, want (5,4)", c)
	}
	if want := []Coord{At(4, 3), At(4, 5)}; !sameCoords(ai.Pending(), want) {
		t.Errorf("Pending = %v, want %v", ai.Pending(), want)
	}
}

func TestNextFallsBackToRandom(t *testing.T) {
	b := NewBoard()
	ai := newTestTargeting(7)

	seen := make(map[Coord]bool)
	for range CellCount {
		c, err := ai.Next(b)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if !c.InBounds() {
			t.Fatalf("Next returned out-of-bounds %s", c)
		}
		if seen[c] {
			t.Fatalf("Next returned %s twice", c)
		}
		seen[c] = true
		b.ReceiveAttack(c)
	}

	if _, err := ai.Next(b); !errors.Is(err, ErrBoardExhausted) {
		t.Errorf("expected ErrBoardExhausted on a full board, got %v", err)
	}
}

func TestNextFindsLastOpenCell(t *testing.T) {
	b := NewBoard()
	last := At(6, 2)
	for r := range BoardSize {
		for c := range BoardSize {
			if At(r, c) != last {
				b.ReceiveAttack(At(r, c))
			}
		}
	}

	got, err := newTestTargeting(3).Next(b)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if got != last {
		t.Errorf("Next = %s, want %s", got, last)
	}
}

func TestNonAdaptiveStaysRandom(t *testing.T) {
	b := NewBoard()
	if err := b.PlaceShip(mustShip(t, 3), At(0, 0), Horizontal); err != nil {
		t.Fatal(err)
	}
	ai := NewTargeting(rand.New(rand.NewSource(1)), false)

	attackAndLearn(ai, b, At(0, 0))
	attackAndLearn(ai, b, At(0, 1))

	if ai.Mode() != ModeRandom || len(ai.Pending()) != 0 {
		t.Errorf("non-adaptive strategy changed mode to %v", ai.Mode())
	}
}

func TestTargetingConvergesOnLoneShip(t *testing.T) {
	placements := []struct {
		length int
		origin Coord
		dir    Direction
	}{
		{5, At(0, 0), Horizontal},
		{4, At(6, 9), Vertical},
		{3, At(4, 4), Horizontal},
		{2, At(9, 8), Horizontal},
		{5, At(2, 7), Vertical},
	}

	for _, pl := range placements {
		for seed := int64(1); seed <= 20; seed++ {
			b := NewBoard()
			ship := mustShip(t, pl.length)
			if err := b.PlaceShip(ship, pl.origin, pl.dir); err != nil {
				t.Fatal(err)
			}
			p := NewComputer("cpu", WithRand(rand.New(rand.NewSource(seed))))
			ai := p.Targeting()

			var lockAxis Axis
			lockLine := -1
			for attacks := 1; !ship.IsSunk(); attacks++ {
				if attacks > CellCount {
					t.Fatalf("seed %d: ship at %s not sunk within %d attacks", seed, pl.origin, CellCount)
				}
				atk, err := p.ComputerAttack(b)
				if err != nil {
					t.Fatalf("seed %d: ComputerAttack failed: %v", seed, err)
				}
				p.UpdateStrategy(atk.Outcome, atk.Coord, b)

				run := ai.Run()
				if lockLine < 0 && len(run) >= 2 && run[0].Adjacent(run[1]) {
					lockAxis = run[0].Axis(run[1])
					lockLine = run[1].Row
					if lockAxis == AxisVertical {
						lockLine = run[1].Col
					}
				}
				if lockLine < 0 || ship.IsSunk() {
					continue
				}
				for _, c := range ai.Pending() {
					if (lockAxis == AxisHorizontal && c.Row != lockLine) ||
						(lockAxis == AxisVertical && c.Col != lockLine) {
						t.Fatalf("seed %d: candidate %s off the %v line %d", seed, c, lockAxis, lockLine)
					}
				}
			}
			if ai.Mode() != ModeRandom {
				t.Errorf("seed %d: mode after sinking = %v, want random", seed, ai.Mode())
			}
		}
	}
}

func TestHumanCannotComputerAttack(t *testing.T) {
	p := NewHuman("you")
	if _, err := p.ComputerAttack(NewBoard()); !errors.Is(err, ErrNotComputer) {
		t.Errorf("expected ErrNotComputer, got %v", err)
	}
	// No-op for humans.
	p.UpdateStrategy(OutcomeHit, At(0, 0), NewBoard())
	if p.Targeting() != nil {
		t.Error("human player should have no targeting state")
	}
}
