package config

// ModeKind is the editor's input mode
type ModeKind int

const (
	// ModeNormal maps keys to editor actions
	ModeNormal ModeKind = iota
	// ModeCommand collects a command line after ':'
	ModeCommand
)

// Mode is the two-state input machine. Command holds the line being typed
// and is only meaningful in ModeCommand.
type Mode struct {
	Kind    ModeKind
	Command []rune
}

func (m Mode) String() string {
	if m.Kind == ModeCommand {
		return "COMMAND"
	}
	return "NORMAL"
}

// EnterCommand switches to command mode with an empty line
func (m *Mode) EnterCommand() {
	m.Kind = ModeCommand
	m.Command = m.Command[:0]
}

// Push appends r to the command line
func (m *Mode) Push(r rune) {
	if m.Kind != ModeCommand {
		return
	}
	m.Command = append(m.Command, r)
}

// Pop removes the last rune of the command line
func (m *Mode) Pop() {
	if m.Kind != ModeCommand || len(m.Command) == 0 {
		return
	}
	m.Command = m.Command[:len(m.Command)-1]
}

// Finish leaves command mode and returns the typed line
func (m *Mode) Finish() string {
	line := string(m.Command)
	m.Cancel()
	return line
}

// Cancel leaves command mode, dropping the typed line
func (m *Mode) Cancel() {
	m.Kind = ModeNormal
	m.Command = nil
}

// Line returns the command typed so far
func (m Mode) Line() string {
	return string(m.Command)
}
