package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-pixed/pixed/backend"
	"github.com/valerio/go-pixed/pixed/backend/terminal/render"
	"github.com/valerio/go-pixed/pixed/canvas"
	"github.com/valerio/go-pixed/pixed/config"
	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/input"
	"github.com/valerio/go-pixed/pixed/input/action"
	"github.com/valerio/go-pixed/pixed/input/event"
	"github.com/valerio/go-pixed/pixed/mouse"
)

const logBufferSize = 100

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen    tcell.Screen
	tty       *pixelTty
	logBuffer *render.LogBuffer
	config    backend.BackendConfig

	// windowSize reports the tty size when a resize event carries no pixel size
	windowSize func() (tcell.WindowSize, error)
	geometry   mouse.Geometry

	prevLogger *slog.Logger
	stop       chan struct{}
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{}
}

// Init opens the controlling terminal and takes over the screen
func (t *Backend) Init(config backend.BackendConfig) error {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	t.tty = newPixelTty(tty)
	t.windowSize = tty.WindowSize

	screen, err := tcell.NewTerminfoScreenFromTty(t.tty)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.tty.post = screen.PostEvent

	return t.initScreen(screen, config)
}

func (t *Backend) initScreen(screen tcell.Screen, config backend.BackendConfig) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.screen = screen
	t.config = config

	// The screen is ours until Cleanup, so logs are kept for the command bar
	t.logBuffer = render.NewLogBuffer(logBufferSize)
	t.prevLogger = slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, config.LogLevel)))

	if config.Title != "" {
		screen.SetTitle(config.Title)
	}
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	if t.windowSize != nil {
		if ws, err := t.windowSize(); err == nil {
			t.geometry = mouse.Geometry{
				PixelWidth:  ws.PixelWidth,
				PixelHeight: ws.PixelHeight,
				Columns:     ws.Width,
				Rows:        ws.Height,
			}
		}
	}

	t.stop = make(chan struct{})
	go handleSignals(screen, t.stop)

	slog.Debug("Terminal backend initialized", "geometry", t.geometry)
	return nil
}

// Update draws the view, then blocks until one input event arrives
func (t *Backend) Update(view backend.View) (backend.Frame, []backend.InputEvent, error) {
	frame := t.render(view)
	t.screen.Show()

	if t.tty != nil && !t.tty.active.Load() {
		if err := t.tty.enable(); err != nil {
			return frame, nil, fmt.Errorf("failed to enable pixel mouse reports: %w", err)
		}
	}

	ev := t.screen.PollEvent()
	if ev == nil {
		// screen finalized
		return frame, []backend.InputEvent{{Action: action.Quit, Type: event.Press}}, nil
	}
	return frame, t.translate(ev, view.Config.Mode), nil
}

// Cleanup restores the terminal
func (t *Backend) Cleanup() error {
	var err error
	if t.tty != nil {
		err = t.tty.disable()
	}
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
	if t.prevLogger != nil {
		slog.SetDefault(t.prevLogger)
		t.prevLogger = nil
	}
	return err
}

// handleSignals turns termination signals into an interrupt event so the
// editor loop can exit and restore the terminal
func handleSignals(screen tcell.Screen, stop <-chan struct{}) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer signal.Stop(signals)

	select {
	case <-signals:
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	case <-stop:
	}
}

func (t *Backend) render(view backend.View) backend.Frame {
	frame := backend.Frame{Geometry: t.geometry}

	t.screen.Clear()
	termWidth, termHeight := t.screen.Size()
	if termWidth < display.MinTermWidth || termHeight < display.MinTermHeight {
		render.DrawTooSmall(t.screen, termWidth, termHeight, display.MinTermWidth, display.MinTermHeight)
		return frame
	}

	workspace := canvas.Rect{
		Width:  termWidth,
		Height: termHeight - display.StatusBarHeight - display.CommandBarHeight,
	}
	frame.Canvas = canvas.Render(t.screen, view.Drawing, view.Config.Grid, canvas.Center(view.Drawing, workspace))

	render.DrawStatusBar(t.screen, workspace.Height, termWidth, view.Config, view.Drawing, view.Path)
	render.DrawCommandBar(t.screen, workspace.Height+display.StatusBarHeight, termWidth, view.Config, t.logBuffer)
	return frame
}

func (t *Backend) translate(ev tcell.Event, mode config.Mode) []backend.InputEvent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize(ev)
		t.screen.Sync()
	case *tcell.EventKey:
		if evt, ok := translateKey(ev, mode); ok {
			info := action.GetInfo(evt.Action)
			slog.Debug("Key event", "key", ev.Name(), "action", info.Description)
			return []backend.InputEvent{evt}
		}
	case *PixelMouseEvent:
		if evt, ok := translateMouse(ev); ok {
			return []backend.InputEvent{evt}
		}
	case *tcell.EventInterrupt:
		return []backend.InputEvent{{Action: action.Quit, Type: event.Press}}
	case *tcell.EventError:
		slog.Error("Terminal error", "error", ev.Error())
	}
	return nil
}

func (t *Backend) resize(ev *tcell.EventResize) {
	cols, rows := ev.Size()
	pw, ph := ev.PixelSize()
	if (pw == 0 || ph == 0) && t.windowSize != nil {
		if ws, err := t.windowSize(); err == nil {
			pw, ph = ws.PixelWidth, ws.PixelHeight
		}
	}
	t.geometry = mouse.Geometry{PixelWidth: pw, PixelHeight: ph, Columns: cols, Rows: rows}
	if !t.geometry.Known() {
		slog.Warn("Terminal does not report its pixel size, mouse painting is disabled")
	}
}

// tcellKeyNameMap converts tcell keys to key names used in the key maps
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyF12:        "F12",
}

func translateKey(ev *tcell.EventKey, mode config.Mode) (backend.InputEvent, bool) {
	press := func(act action.Action) (backend.InputEvent, bool) {
		return backend.InputEvent{Action: act, Type: event.Press}, true
	}

	if mode.Kind == config.ModeCommand {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return press(action.EnterNormalMode)
		case tcell.KeyRune:
			return backend.InputEvent{Action: action.CommandPush, Type: event.Press, Rune: ev.Rune()}, true
		}
		if act, ok := input.GetCommandMapping(tcellKeyNameMap[ev.Key()]); ok {
			return press(act)
		}
		return backend.InputEvent{}, false
	}

	if ev.Key() == tcell.KeyCtrlC {
		return press(action.Quit)
	}

	name := tcellKeyNameMap[ev.Key()]
	if ev.Key() == tcell.KeyRune {
		name = string(ev.Rune())
	}
	act, ok := input.GetDefaultMapping(name)
	if !ok {
		return backend.InputEvent{}, false
	}
	evt, _ := press(act)
	if act == action.RecallColor {
		evt.Rune = ev.Rune()
	}
	return evt, true
}

func translateMouse(ev *PixelMouseEvent) (backend.InputEvent, bool) {
	evt := backend.InputEvent{X: ev.X, Y: ev.Y}

	switch ev.Button {
	case mouse.ButtonPrimary:
		evt.Action = action.PaintPixel
	case mouse.ButtonSecondary:
		evt.Action = action.ClearPixel
	default:
		return backend.InputEvent{}, false
	}

	switch ev.Action {
	case mouse.ActionPress:
		evt.Type = event.Press
	case mouse.ActionDrag:
		evt.Type = event.Drag
	default:
		return backend.InputEvent{}, false
	}
	return evt, true
}
