package event

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Key or button pressed down
	Release             // Button released
	Drag                // Pointer moved while a button is held
)

func (t Type) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Drag:
		return "Drag"
	default:
		return "Unknown"
	}
}
