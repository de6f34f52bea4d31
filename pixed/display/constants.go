package display

// Half-block glyphs, each terminal cell shows two stacked drawing pixels
const (
	// UpperHalfBlock fills the top half of a cell with the foreground color
	UpperHalfBlock = '▀'
	// LowerHalfBlock fills the bottom half of a cell with the foreground color
	LowerHalfBlock = '▄'
	// PixelsPerCell is the number of drawing rows packed into one terminal row
	PixelsPerCell = 2
)

// Drawing defaults
const (
	// DefaultDrawingSize is the side of the square grid created when no file exists
	DefaultDrawingSize = 16
	// MaxDrawingSize bounds each side of a drawing so its pixel count can
	// neither overflow nor exhaust memory
	MaxDrawingSize = 1024
)

// Transparency grid defaults, matching the usual sprite editor look
const (
	DefaultGridSize = 8
	DefaultGridDark = 217
	// DefaultGridLight is the gray level of the lighter checker squares
	DefaultGridLight = 240
)

// Terminal layout constants
const (
	StatusBarHeight  = 1
	CommandBarHeight = 1
	MinTermWidth     = 20
	MinTermHeight    = 4
)

// Snapshot defaults
const (
	// DefaultSnapshotScale is how many image pixels one drawing pixel becomes
	DefaultSnapshotScale = 8
	SnapshotBaseName     = "pixed_snapshot"
)
