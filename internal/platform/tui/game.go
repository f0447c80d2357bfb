package tui

import (
	"time"

	"github.com/vovakirdan/bullet-time/internal/core"
)

// Game is what the host drives. Implementations contain pure logic with no
// Bubble Tea dependency; the host handles input mapping, timing and display.
type Game interface {
	// ID returns a unique identifier used in logs and screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt of wall-clock time.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting. Games without it are reset on resize unless the
// round is over.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}
