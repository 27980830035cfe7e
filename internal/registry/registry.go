// Package registry decouples the platform from game construction.
// The game registers a factory in its init() function; the CLI and the
// SSH server instantiate it by ID without importing the game package
// for anything but the side effect.
package registry

import (
	"fmt"
	"sync"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
)

// Game is the interface the platform drives. Implementations are pure
// simulations: no terminal, no timers, no I/O. The platform owns input
// mapping, the tick schedule, and drawing the returned screen buffer.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a fresh run with the given screen size, tick rate,
	// and seed. Called before the first Step and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation exactly one tick under the given
	// input frame and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer,
	// clearing whatever the previous frame left there.
	Render(dst *core.Screen)

	// State returns the score and run status as of the last Step.
	State() core.GameState
}

// Factory creates a fresh, un-Reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a game factory under the given ID.
// Panics on a duplicate ID; that is a programming error, not a runtime
// condition.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a registered game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
