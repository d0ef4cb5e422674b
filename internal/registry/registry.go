// Package registry keeps the playable modes. Modes register a factory in
// init(), so the CLI and the TUI can list and start them without importing
// each one directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Game is a playable mode driven by the platform one tick at a time.
// Implementations hold no terminal or timer state; the platform owns
// input mapping, scheduling and styling.
type Game interface {
	// ID is the stable key used on the command line and in run records.
	ID() string

	// Title is shown in menus.
	Title() string

	// Reset starts a fresh session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one tick of input and advances the simulation when due.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board and HUD into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports the generation counter, population and pause flag.
	State() core.GameState
}

// Describer is implemented by modes that provide a one-line summary.
type Describer interface {
	Description() string
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a mode.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]ModeInfo)
)

// Register adds a mode factory. It panics on a duplicate or empty ID.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty mode id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f

	g := f()
	info := ModeInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns all registered modes sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b ModeInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered mode IDs, sorted.
func IDs() []string {
	modes := List()
	ids := make([]string, len(modes))
	for i, m := range modes {
		ids[i] = m.ID
	}
	return ids
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
