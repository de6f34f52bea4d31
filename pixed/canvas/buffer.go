package canvas

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell held by a Buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
	// Set is false for cells nothing was written to
	Set bool
}

// Buffer is an off-screen CellWriter, used when there is no terminal to draw on
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer allocates an empty buffer of width x height cells
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the buffer dimensions in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// SetContent stores a cell. Writes outside the buffer are dropped.
func (b *Buffer) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: primary, Style: style, Set: true}
}

// Cell returns the cell at (x, y)
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}
