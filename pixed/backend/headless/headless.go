package headless

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/valerio/go-pixed/pixed/backend"
	"github.com/valerio/go-pixed/pixed/canvas"
	"github.com/valerio/go-pixed/pixed/input/action"
	"github.com/valerio/go-pixed/pixed/input/event"
)

// Backend prints the drawing once as colored half blocks and quits.
// It is used by the print command and by tests that need a full editor
// run without a terminal.
type Backend struct {
	config backend.BackendConfig
	out    io.Writer
	frames int
}

// New creates a headless backend writing to out
func New(out io.Writer) *Backend {
	return &Backend{out: out}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// Update renders the view on the first call and asks the editor to quit
func (h *Backend) Update(view backend.View) (backend.Frame, []backend.InputEvent, error) {
	quit := []backend.InputEvent{{Action: action.Quit, Type: event.Press}}
	if h.frames > 0 {
		return backend.Frame{}, quit, nil
	}
	h.frames++

	d := view.Drawing
	buf := canvas.NewBuffer(d.Width, d.Rows())
	area := canvas.Rect{Width: d.Width, Height: d.Rows()}
	rect := canvas.Render(buf, d, view.Config.Grid, area)

	if err := WriteANSI(h.out, buf); err != nil {
		return backend.Frame{}, nil, fmt.Errorf("failed to print drawing: %w", err)
	}
	slog.Debug("Drawing printed", "width", d.Width, "height", d.Height, "path", view.Path)

	return backend.Frame{Canvas: rect}, quit, nil
}

func (h *Backend) Cleanup() error {
	return nil
}
