package input

import (
	"time"

	"github.com/valerio/go-pixed/pixed/backend"
	"github.com/valerio/go-pixed/pixed/input/action"
	"github.com/valerio/go-pixed/pixed/input/event"
)

const defaultDebounceDelay = 300 * time.Millisecond

// Handler filters input events. File actions are debounced so a held key
// does not rewrite the drawing on every terminal key repeat.
type Handler struct {
	lastActionTime map[action.Action]time.Time
	debounceDelay  time.Duration
}

func NewHandler() *Handler {
	return NewHandlerWithDelay(defaultDebounceDelay)
}

func NewHandlerWithDelay(delay time.Duration) *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]time.Time),
		debounceDelay:  delay,
	}
}

// ProcessEvent returns true if the event should be handled, false if it was debounced
func (h *Handler) ProcessEvent(evt backend.InputEvent) bool {
	if evt.Type != event.Press || action.GetInfo(evt.Action).Category != action.CategoryFile {
		return true
	}

	now := time.Now()
	if lastTime, exists := h.lastActionTime[evt.Action]; exists {
		if now.Sub(lastTime) < h.debounceDelay {
			return false
		}
	}
	h.lastActionTime[evt.Action] = now
	return true
}
