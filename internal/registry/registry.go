// Package registry keeps the set of playable tracks. Tracks register
// themselves in init() functions, so the CLI and menus can discover them
// without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Game is the contract between a track and the platform host.
// The platform handles input mapping, timing, and rendering; the game owns
// the simulation.
type Game interface {
	// ID returns the track identifier (e.g., "classic"). Used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current run into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Info contains metadata about a registered track.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game for a track.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a track. Panics if the ID is already taken.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: track %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered tracks, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game for the given track.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown track %q", id)
	}

	return e.factory(), nil
}

// Lookup returns the metadata of a track.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Exists checks if a track with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
