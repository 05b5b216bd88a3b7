// Package registry provides a global registry for run modes.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the interface every run mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "showcase").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Frame advances the game to the given frame time. The clock origin is
	// arbitrary; only differences between calls matter.
	Frame(now time.Duration)

	// Start begins the first run without waiting for the start timer.
	Start()

	// Restart stops the current run and starts a fresh one behind the
	// transition curtain. Safe to call at any time, including mid-restart.
	Restart()

	// Jump asks the character to jump.
	Jump()

	// TogglePause suspends or resumes the frame loop.
	TogglePause()

	// Finish records the current run before the game is discarded.
	Finish()

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns a snapshot of the current run.
	State() core.GameState

	// Status returns the board the game publishes its state to after every
	// frame. Safe to read from other goroutines.
	Status() *core.StatusBoard
}

// Options carries the collaborators a game needs.
type Options struct {
	Config config.RunnerConfig
	Seed   int64             // RNG seed used when Rand is nil
	Rand   core.RandomSource // Optional injected random source
	Store  core.ScoreStore   // High score and run history; nil keeps nothing
	Cue    core.Cue          // Milestone sound; nil is silent
	Logger *log.Logger       // nil discards log output
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a game's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its mode ID.
// Returns an error if the mode is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(opts), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
