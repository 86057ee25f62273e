// Package registry holds the factories for playable modes. Modes register
// themselves in init() so the CLI and menu can list and create them by ID
// without importing each implementation.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Game is a tick-driven mode the platform can run. Implementations are pure
// logic: the platform maps keys to actions, drives the clock and renders the
// screen buffer.
type Game interface {
	// ID returns the unique identifier used by the CLI and storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new match. It is called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the mode by one tick with the actions triggered since the
	// previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game-over and pause status.
	State() core.GameState
}

// Reporter is implemented by games that produce a match summary once over.
// The platform stores the summary when ok is true.
type Reporter interface {
	Result() (res core.MatchResult, ok bool)
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. Games without it are Reset with the new size.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory. It panics on an empty or duplicate ID.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// unregister removes id. Tests use it to keep the global table clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}
