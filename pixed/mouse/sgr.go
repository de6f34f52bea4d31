package mouse

import (
	"bytes"
	"errors"
)

// Escape sequences toggling SGR-pixel reporting (DEC private mode 1016).
// In this mode the terminal reports mouse positions in hardware pixels
// using the same format as SGR mode 1006.
const (
	EnableSGRPixel  = "\x1b[?1016h"
	DisableSGRPixel = "\x1b[?1016l"
)

// sgrPrefix starts every SGR mouse report: ESC [ < Btn ; X ; Y (M|m)
var sgrPrefix = []byte("\x1b[<")

const maxSGRLength = 32

var (
	// ErrIncomplete means data is a valid prefix of a report, more bytes are needed
	ErrIncomplete = errors.New("incomplete mouse report")
	// ErrMalformed means data does not start with a mouse report
	ErrMalformed = errors.New("malformed mouse report")
)

// Button identifies the mouse button of a report
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
	ButtonWheelUp
	ButtonWheelDown
)

// Action is what happened to the button
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionRelease
	ActionMove
	ActionDrag
)

// Modifier keys held during the report
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Event is a decoded mouse report. X and Y are zero-based, in whatever
// unit the terminal reports (hardware pixels when SGR-pixel mode is on).
type Event struct {
	Button Button
	Action Action
	X, Y   int
	Mod    Modifier
}

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonMiddle:
		return "Middle"
	case ButtonSecondary:
		return "Secondary"
	case ButtonWheelUp:
		return "WheelUp"
	case ButtonWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

func (a Action) String() string {
	switch a {
	case ActionPress:
		return "Press"
	case ActionRelease:
		return "Release"
	case ActionMove:
		return "Move"
	case ActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// IsSGRPrefix reports whether data could be the beginning of a mouse report
func IsSGRPrefix(data []byte) bool {
	if len(data) < len(sgrPrefix) {
		return bytes.HasPrefix(sgrPrefix, data)
	}
	return bytes.HasPrefix(data, sgrPrefix)
}

// ParseSGR decodes the mouse report at the start of data and returns it
// along with the number of bytes it used.
func ParseSGR(data []byte) (Event, int, error) {
	if !IsSGRPrefix(data) {
		return Event{}, 0, ErrMalformed
	}
	if len(data) <= len(sgrPrefix) {
		return Event{}, 0, ErrIncomplete
	}

	end := len(sgrPrefix)
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		b := data[end]
		if b != ';' && (b < '0' || b > '9') {
			return Event{}, 0, ErrMalformed
		}
		end++
		if end >= maxSGRLength {
			return Event{}, 0, ErrMalformed
		}
	}
	if end == len(data) {
		return Event{}, 0, ErrIncomplete
	}

	btn, x, y, ok := parseParams(data[len(sgrPrefix):end])
	if !ok {
		return Event{}, 0, ErrMalformed
	}

	ev := Event{X: max(x-1, 0), Y: max(y-1, 0)}

	// bits 0-1 button, bit 5 motion, bit 6 wheel
	buttonID := btn & 0x03
	motion := btn&32 != 0
	wheel := btn&64 != 0

	if wheel {
		ev.Button = ButtonWheelUp
		if buttonID == 1 {
			ev.Button = ButtonWheelDown
		}
		ev.Action = ActionPress
	} else {
		switch buttonID {
		case 0:
			ev.Button = ButtonPrimary
		case 1:
			ev.Button = ButtonMiddle
		case 2:
			ev.Button = ButtonSecondary
		case 3:
			ev.Button = ButtonNone
		}

		switch {
		case data[end] == 'm':
			ev.Action = ActionRelease
		case motion && ev.Button == ButtonNone:
			ev.Action = ActionMove
		case motion:
			ev.Action = ActionDrag
		default:
			ev.Action = ActionPress
		}
	}

	if btn&4 != 0 {
		ev.Mod |= ModShift
	}
	if btn&8 != 0 {
		ev.Mod |= ModAlt
	}
	if btn&16 != 0 {
		ev.Mod |= ModCtrl
	}

	return ev, end + 1, nil
}

// parseParams splits "Btn;X;Y"
func parseParams(data []byte) (btn, x, y int, ok bool) {
	var vals [3]int
	field := 0
	digits := 0

	for _, b := range data {
		if b == ';' {
			if digits == 0 {
				return 0, 0, 0, false
			}
			field++
			digits = 0
			if field > 2 {
				return 0, 0, 0, false
			}
			continue
		}
		vals[field] = vals[field]*10 + int(b-'0')
		digits++
		if vals[field] > 99999 {
			return 0, 0, 0, false
		}
	}

	if field != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}
