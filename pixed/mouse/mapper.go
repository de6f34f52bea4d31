package mouse

import (
	"github.com/valerio/go-pixed/pixed/canvas"
	"github.com/valerio/go-pixed/pixed/display"
)

// Geometry is the terminal size as reported by the tty, both in hardware
// pixels and in character cells. The zero value means "not reported".
type Geometry struct {
	PixelWidth  int
	PixelHeight int
	Columns     int
	Rows        int
}

// Known reports whether every value needed for mapping was reported
func (g Geometry) Known() bool {
	return g.PixelWidth > 0 && g.PixelHeight > 0 && g.Columns > 0 && g.Rows > 0
}

// CellSize returns the size of one character cell in hardware pixels
func (g Geometry) CellSize() (width, height int) {
	if !g.Known() {
		return 0, 0
	}
	return g.PixelWidth / g.Columns, g.PixelHeight / g.Rows
}

// Map converts a mouse position in hardware pixels to a drawing pixel,
// given the cell rectangle the canvas was last rendered into.
//
// The column is the cell offset inside rect. The row is recovered from the
// pixel-accurate y offset divided by half a cell height, so each cell yields
// two drawing rows. ok is false when the geometry is unknown or the position
// falls outside rect. The result is not checked against the drawing size.
func Map(geo Geometry, rect canvas.Rect, x, y int) (col, row int, ok bool) {
	cellWidth, cellHeight := geo.CellSize()
	pixelHeight := cellHeight / display.PixelsPerCell
	if cellWidth == 0 || pixelHeight == 0 || x < 0 || y < 0 {
		return 0, 0, false
	}

	cellX, cellY := x/cellWidth, y/cellHeight
	if !rect.Contains(cellX, cellY) {
		return 0, 0, false
	}

	col = cellX - rect.X
	row = (y - rect.Y*cellHeight) / pixelHeight
	return col, row, true
}
