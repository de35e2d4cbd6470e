// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
// Hidden games additionally carry a secret numeric code; the calculator
// front-end unlocks them by matching typed digits against the registry.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkozlov/calcade/internal/core"
)

// Game is the core interface every arcade game implements.
// Games contain pure simulation logic with no external dependencies
// (especially no Bubble Tea); the platform handles input mapping, timing,
// and display.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "keepup").
	// Used for CLI commands, score storage, and unlock bookkeeping.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or replaces the whole simulation state.
	// Called once at mount and again on restart. Safe to call from any
	// status; calling it twice in a row yields the same initial state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. It must be total:
	// invoked while the status is terminal it returns the unchanged
	// state and performs no integration.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// Purely reactive; it must not mutate simulation state.
	Render(dst *core.Screen)

	// State returns the current externally visible game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Code   string // Secret unlock code; empty means always visible
	Hidden bool
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	codes     = make(map[string]string) // code -> game ID
)

// Register adds a game factory to the registry. Typically called from a
// game's init() function. Panics if the ID is already registered.
func Register(id string, f Factory) {
	RegisterHidden(id, "", f)
}

// RegisterHidden adds a game reachable only through its unlock code.
// Panics on a duplicate ID or a duplicate non-empty code.
func RegisterHidden(id, code string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	if code != "" {
		if other, exists := codes[code]; exists {
			panic(fmt.Sprintf("registry: code %q already claimed by %q", code, other))
		}
		codes[code] = id
	}

	factories[id] = f
	g := f()
	infos[id] = GameInfo{
		ID:     id,
		Title:  g.Title(),
		Code:   code,
		Hidden: code != "",
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Unlock matches a typed secret code against the registry and returns
// the game ID it unlocks. Unknown codes simply return ok=false; entering
// garbage on the calculator is never an error.
func Unlock(code string) (id string, ok bool) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok = codes[code]
	return id, ok
}
