package terminal

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-pixed/pixed/mouse"
)

// PixelMouseEvent is a mouse report in hardware pixels. tcell only knows
// cell coordinates, so these are decoded before tcell sees the input and
// posted to the screen's event queue.
type PixelMouseEvent struct {
	tcell.EventTime
	mouse.Event
}

func newPixelMouseEvent(ev mouse.Event) *PixelMouseEvent {
	e := &PixelMouseEvent{Event: ev}
	e.SetEventNow()
	return e
}

// escapeDelay is how long a lone ESC is held waiting for the rest of a
// mouse report before it is delivered as the Escape key
const escapeDelay = 50 * time.Millisecond

// pixelTty wraps the real tty and strips SGR mouse reports out of the input
// stream once pixel reporting is active. Everything else reaches tcell
// unchanged.
type pixelTty struct {
	tcell.Tty

	post   func(tcell.Event) error
	active atomic.Bool

	mu sync.Mutex
	// pending holds the start of a report split across reads
	pending []byte
	// ready holds filtered bytes that did not fit the caller's buffer
	ready []byte

	escapeDelay time.Duration
	escapeTimer *time.Timer
	// reads invalidates an escape flush scheduled before the latest read
	reads uint64
}

func newPixelTty(tty tcell.Tty) *pixelTty {
	return &pixelTty{Tty: tty, escapeDelay: escapeDelay}
}

func (p *pixelTty) Read(buf []byte) (int, error) {
	p.mu.Lock()
	if len(p.ready) > 0 {
		n := copy(buf, p.ready)
		p.ready = p.ready[n:]
		p.mu.Unlock()
		return n, nil
	}
	p.mu.Unlock()

	n, err := p.Tty.Read(buf)
	if n == 0 {
		return n, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.reads++
	if p.escapeTimer != nil {
		p.escapeTimer.Stop()
		p.escapeTimer = nil
	}
	if !p.active.Load() && len(p.pending) == 0 {
		return n, err
	}

	data := append(p.pending, buf[:n]...)
	p.pending = nil
	p.ready = p.filter(data)
	if len(p.pending) == 1 {
		p.scheduleEscape()
	}
	m := copy(buf, p.ready)
	p.ready = p.ready[m:]
	return m, err
}

// scheduleEscape delivers a held lone ESC as a key press unless another
// read arrives first. Called with mu held.
func (p *pixelTty) scheduleEscape() {
	reads := p.reads
	p.escapeTimer = time.AfterFunc(p.escapeDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.reads != reads || len(p.pending) != 1 {
			return
		}
		p.pending = nil
		p.escapeTimer = nil
		if p.post != nil {
			_ = p.post(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
		}
	})
}

// filter returns data without its mouse reports, posting one event per
// report. A trailing partial report, down to a lone ESC, is kept for the
// next read.
func (p *pixelTty) filter(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] != 0x1b {
			out = append(out, data[i])
			i++
			continue
		}

		ev, used, err := mouse.ParseSGR(data[i:])
		switch {
		case err == nil:
			p.emit(ev)
			i += used
		case errors.Is(err, mouse.ErrIncomplete):
			p.pending = append([]byte(nil), data[i:]...)
			i = len(data)
		default:
			out = append(out, data[i])
			i++
		}
	}
	return out
}

func (p *pixelTty) emit(ev mouse.Event) {
	if p.post == nil {
		return
	}
	// PostEvent only fails when the queue is full, dropping a drag sample is fine
	_ = p.post(newPixelMouseEvent(ev))
}

// enable switches the terminal to pixel mouse reports
func (p *pixelTty) enable() error {
	p.active.Store(true)
	_, err := io.WriteString(p.Tty, mouse.EnableSGRPixel)
	return err
}

// disable restores cell mouse reports
func (p *pixelTty) disable() error {
	if !p.active.Swap(false) {
		return nil
	}
	p.mu.Lock()
	if p.escapeTimer != nil {
		p.escapeTimer.Stop()
		p.escapeTimer = nil
	}
	p.mu.Unlock()
	_, err := io.WriteString(p.Tty, mouse.DisableSGRPixel)
	return err
}
