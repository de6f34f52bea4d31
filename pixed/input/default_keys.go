package input

import "github.com/valerio/go-pixed/pixed/input/action"

// DefaultKeyMap provides the normal-mode key mappings.
// Backends translate their key events to these names.
var DefaultKeyMap = map[string]action.Action{
	"q": action.Quit,
	"w": action.Save,
	":": action.EnterCommandMode,

	"+": action.Grow,
	"=": action.Grow, // Alternative without shift
	"-": action.Shrink,
	"E": action.Erase,

	// Color history, 1 is the most recently replaced color and 0 the tenth
	"1": action.RecallColor,
	"2": action.RecallColor,
	"3": action.RecallColor,
	"4": action.RecallColor,
	"5": action.RecallColor,
	"6": action.RecallColor,
	"7": action.RecallColor,
	"8": action.RecallColor,
	"9": action.RecallColor,
	"0": action.RecallColor,

	"F12": action.Snapshot,
}

// CommandKeyMap maps keys while a command line is being typed.
// Printable runes not listed here become CommandPush.
var CommandKeyMap = map[string]action.Action{
	"Enter":     action.CommandExecute,
	"Escape":    action.EnterNormalMode,
	"Backspace": action.CommandPop,
}

// GetDefaultMapping returns the normal-mode action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}

// GetCommandMapping returns the command-mode action for a key, if one exists
func GetCommandMapping(key string) (action.Action, bool) {
	act, ok := CommandKeyMap[key]
	return act, ok
}
