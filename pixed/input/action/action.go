package action

// Action represents input actions that can be performed in the editor
type Action int

const (
	None Action = iota

	// Drawing edits
	PaintPixel
	ClearPixel
	Grow
	Shrink
	Erase
	RecallColor

	// Command line
	EnterCommandMode
	EnterNormalMode
	CommandPush
	CommandPop
	CommandExecute

	// Commands that only come from the command line
	SetColor
	Resize

	// Files
	Save
	Snapshot

	// Application
	Quit
)

// Category groups actions by what they touch
type Category int

const (
	CategoryNone Category = iota
	CategoryDrawing
	CategoryCommand
	CategoryFile
	CategoryApp
)

// Info describes an action
type Info struct {
	Description string
	Category    Category
}

var infos = map[Action]Info{
	None:             {"None", CategoryNone},
	PaintPixel:       {"Paint pixel", CategoryDrawing},
	ClearPixel:       {"Clear pixel", CategoryDrawing},
	Grow:             {"Grow drawing", CategoryDrawing},
	Shrink:           {"Shrink drawing", CategoryDrawing},
	Erase:            {"Erase drawing", CategoryDrawing},
	RecallColor:      {"Recall color", CategoryDrawing},
	EnterCommandMode: {"Enter command mode", CategoryCommand},
	EnterNormalMode:  {"Leave command mode", CategoryCommand},
	CommandPush:      {"Type command", CategoryCommand},
	CommandPop:       {"Delete command character", CategoryCommand},
	CommandExecute:   {"Run command", CategoryCommand},
	SetColor:         {"Set color", CategoryDrawing},
	Resize:           {"Resize drawing", CategoryDrawing},
	Save:             {"Save drawing", CategoryFile},
	Snapshot:         {"Save PNG snapshot", CategoryFile},
	Quit:             {"Quit", CategoryApp},
}

// GetInfo returns the description and category of act
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategoryNone}
}

func (a Action) String() string {
	return GetInfo(a).Description
}
