package backend

import (
	"log/slog"

	"github.com/valerio/go-pixed/pixed/canvas"
	"github.com/valerio/go-pixed/pixed/config"
	"github.com/valerio/go-pixed/pixed/drawing"
	"github.com/valerio/go-pixed/pixed/input/action"
	"github.com/valerio/go-pixed/pixed/input/event"
	"github.com/valerio/go-pixed/pixed/mouse"
)

// Backend represents a complete editor front end (rendering + input).
// Backends are responsible for:
// - Rendering the drawing and the editor chrome to their output
// - Translating platform-specific input events to InputEvents
// - Reporting where the canvas was drawn and the terminal geometry, so
//   mouse positions can be mapped back to drawing pixels
type Backend interface {
	// Init configures the backend. This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update renders the view, then waits for input. The returned Frame
	// describes the render that the returned events were made against.
	Update(view View) (Frame, []InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title    string
	LogLevel slog.Level
}

// View is everything a backend needs to draw one frame
type View struct {
	Drawing *drawing.Drawing
	Config  *config.Config
	Path    string
}

// Frame records the result of a render pass
type Frame struct {
	// Canvas is the cell rectangle the drawing occupies
	Canvas canvas.Rect
	// Geometry is the terminal size in cells and pixels, zero if unknown
	Geometry mouse.Geometry
}

// InputEvent is an input translated into an editor action
type InputEvent struct {
	Action action.Action
	Type   event.Type
	// Rune carries the typed character for CommandPush and the digit for RecallColor
	Rune rune
	// X and Y are the raw mouse position in terminal pixels for PaintPixel and ClearPixel
	X, Y int
}
