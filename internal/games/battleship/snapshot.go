package battleship

import (
	engine "github.com/vovakirdan/tui-battleship/internal/battleship"
)

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Cursor   engine.Coord
	Current  string
	Turns    int
	Shots    [2]int
	Hits     [2]int
	Afloat   [2]int
	Winner   string
	Message  string
	Pending  int // ships the human still has to place
	Paused   bool
	TooSmall bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Cursor:   g.cursor,
		Message:  g.message,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.match == nil {
		return s
	}

	s.Current = g.match.Current().Name()
	s.Turns = g.match.Turns()
	for i, p := range []*engine.Player{g.match.Player1(), g.match.Player2()} {
		st := g.match.Stats(p)
		s.Shots[i], s.Hits[i] = st.Shots, st.Hits
		s.Afloat[i] = len(p.Board().Ships()) - p.Board().SunkCount()
	}
	if w := g.match.Winner(); w != nil {
		s.Winner = w.Name()
	}
	if g.human != nil {
		s.Pending = len(g.match.UnplacedShips(g.human))
	}
	return s
}
