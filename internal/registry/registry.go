// Package registry is the catalogue of playable game variants. Each variant
// registers itself in an init() function, so the platform can list and start
// them without compile-time knowledge of the individual rule sets.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/quadcell/tetra/internal/core"
)

// Game is the contract between a game variant and the platform. Variants
// hold pure game logic; the platform owns input mapping, the tick loop and
// terminal output.
type Game interface {
	// ID is the stable identifier used for CLI commands and match storage,
	// e.g. "tetra" or "tetra_dice".
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset initializes or restarts the variant with the given runtime
	// configuration (screen size, RNG seed).
	Reset(cfg core.RuntimeConfig)

	// Step advances the variant by one fixed tick with the frame's inputs.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score and terminal flags for the platform chrome.
	State() core.GameState
}

// GameInfo is the listing metadata for a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a variant.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a variant. Called from init() functions; panics on duplicate
// IDs since that is a wiring defect.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return f(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
