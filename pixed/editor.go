package pixed

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/valerio/go-pixed/pixed/backend"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/config"
	"github.com/valerio/go-pixed/pixed/debug"
	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/drawing"
	"github.com/valerio/go-pixed/pixed/input"
	"github.com/valerio/go-pixed/pixed/input/action"
	"github.com/valerio/go-pixed/pixed/mouse"
)

// ErrNoPath is returned when saving a drawing that was never given a file
var ErrNoPath = errors.New("no file name")

// Editor owns the drawing being edited and the configuration it is shown
// with, and applies backend input to both. All state changes happen between
// two Update calls of the backend, so nothing here is locked.
type Editor struct {
	config  *config.Config
	drawing *drawing.Drawing
	path    string
	handler *input.Handler

	// frame is the last render, mouse positions are mapped against it
	frame backend.Frame
	quit  bool
}

// New creates an editor with a blank drawing of the configured size
func New(cfg *config.Config) (*Editor, error) {
	d, err := drawing.New(cfg.DrawingWidth, cfg.DrawingHeight)
	if err != nil {
		return nil, err
	}
	return &Editor{
		config:  cfg,
		drawing: d,
		handler: input.NewHandler(),
	}, nil
}

// NewWithFile creates an editor for the drawing at path. A missing file
// starts a blank drawing that will be written to path on save. A file that
// exists but cannot be used is an error.
func NewWithFile(cfg *config.Config, path string) (*Editor, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	e.path = path

	err = e.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("New drawing", "path", path, "width", e.drawing.Width, "height", e.drawing.Height)
	case err != nil:
		return nil, err
	}
	return e, nil
}

// Drawing returns the drawing being edited
func (e *Editor) Drawing() *drawing.Drawing { return e.drawing }

// Config returns the shared editor configuration
func (e *Editor) Config() *config.Config { return e.config }

// Path returns the file the drawing is saved to, empty if there is none yet
func (e *Editor) Path() string { return e.path }

// View is what the backend draws
func (e *Editor) View() backend.View {
	return backend.View{Drawing: e.drawing, Config: e.config, Path: e.path}
}

// Run drives the backend until a Quit action. Each iteration renders first,
// then handles the input collected against that render.
func (e *Editor) Run(b backend.Backend, cfg backend.BackendConfig) error {
	if err := b.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := b.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	for !e.quit {
		frame, events, err := b.Update(e.View())
		if err != nil {
			return err
		}
		e.frame = frame
		for _, evt := range events {
			e.HandleEvent(evt)
		}
	}
	return nil
}

// HandleEvent applies one input event
func (e *Editor) HandleEvent(evt backend.InputEvent) {
	if !e.handler.ProcessEvent(evt) {
		return
	}

	switch evt.Action {
	case action.PaintPixel:
		e.Paint(evt.X, evt.Y, e.config.Palette.Current())
	case action.ClearPixel:
		e.Paint(evt.X, evt.Y, color.Transparent)

	case action.Grow:
		e.drawing.Resize(e.drawing.Width+1, e.drawing.Height+1)
	case action.Shrink:
		e.drawing.Resize(e.drawing.Width-1, e.drawing.Height-1)
	case action.Erase:
		e.drawing.EraseAll()
	case action.RecallColor:
		if c, ok := e.config.Palette.RecallHotkey(evt.Rune); ok {
			e.config.Palette.SetColor(c)
		}

	case action.EnterCommandMode:
		e.config.Mode.EnterCommand()
	case action.EnterNormalMode:
		e.config.Mode.Cancel()
	case action.CommandPush:
		e.config.Mode.Push(evt.Rune)
	case action.CommandPop:
		e.config.Mode.Pop()
	case action.CommandExecute:
		line := e.config.Mode.Finish()
		if err := e.Execute(line); err != nil {
			slog.Warn("Command failed", "command", line, "error", err)
		}

	case action.Save:
		if err := e.Save(""); err != nil {
			slog.Error("Write failed", "error", err)
		}
	case action.Snapshot:
		if err := e.Snapshot("", 0); err != nil {
			slog.Error("Snapshot failed", "error", err)
		}
	case action.Quit:
		e.quit = true
	}
}

// Paint sets the drawing pixel under the mouse position (x, y), given in
// terminal pixels. It reports whether a pixel was changed.
func (e *Editor) Paint(x, y int, c color.Color) bool {
	col, row, ok := mouse.Map(e.frame.Geometry, e.frame.Canvas, x, y)
	if !ok {
		return false
	}
	return e.drawing.SetPixel(col, row, c)
}

// Execute runs a command line
func (e *Editor) Execute(line string) error {
	cmd, err := input.ParseCommand(line)
	if err != nil {
		return err
	}

	switch cmd.Action {
	case action.SetColor:
		if !e.SetCurrentColor(cmd.Color) {
			return fmt.Errorf("%w: %q", color.ErrInvalidColor, cmd.Color)
		}
	case action.Resize:
		e.drawing.Resize(cmd.Width, cmd.Height)
		slog.Info("Resized", "width", cmd.Width, "height", cmd.Height)
	case action.Erase:
		e.drawing.EraseAll()
	case action.Save:
		if err := e.Save(cmd.Path); err != nil {
			return err
		}
		e.quit = cmd.Quit
	case action.Snapshot:
		return e.Snapshot(cmd.Path, cmd.Scale)
	case action.Quit:
		e.quit = true
	}
	return nil
}

// SetCurrentColor parses s and makes it the painting color. Text that is
// not a color is ignored and false is returned.
func (e *Editor) SetCurrentColor(s string) bool {
	c, err := color.Parse(s)
	if err != nil {
		slog.Debug("Ignoring color", "input", s, "error", err)
		return false
	}
	e.config.Palette.SetColor(c)
	return true
}

// Load replaces the drawing with the file at path
func (e *Editor) Load(path string) error {
	d, err := drawing.Load(path)
	if err != nil {
		return err
	}
	e.drawing = d
	e.path = path
	slog.Info("Loaded drawing", "path", path, "width", d.Width, "height", d.Height)
	return nil
}

// Save writes the drawing to path, or to the current file when path is
// empty. A successful save makes path the current file.
func (e *Editor) Save(path string) error {
	if path == "" {
		path = e.path
	}
	if path == "" {
		return ErrNoPath
	}
	if err := e.drawing.Save(path); err != nil {
		return err
	}
	e.path = path
	slog.Info("Write success", "path", path)
	return nil
}

// Snapshot exports the drawing as a PNG. Without a path a timestamped file
// is created in the working directory.
func (e *Editor) Snapshot(path string, scale int) error {
	if scale <= 0 {
		scale = display.DefaultSnapshotScale
	}
	if path == "" {
		_, err := debug.TakeSnapshot(e.drawing, "", scale)
		return err
	}
	return debug.SavePNG(e.drawing, path, scale)
}

// Quit reports whether the editor has been asked to stop
func (e *Editor) Quit() bool {
	return e.quit
}
