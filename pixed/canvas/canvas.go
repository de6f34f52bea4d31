package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/drawing"
)

// CellWriter receives rendered terminal cells. tcell.Screen implements it.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Rect is a rectangle of terminal cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center places the drawing in the middle of area. The result is clipped
// to area and anchored at its top-left corner when the drawing is larger.
func Center(d *drawing.Drawing, area Rect) Rect {
	w := min(d.Width, area.Width)
	h := min(d.Rows(), area.Height)
	return Rect{
		X:      area.X + max(area.Width-d.Width, 0)/2,
		Y:      area.Y + max(area.Height-d.Rows(), 0)/2,
		Width:  max(w, 0),
		Height: max(h, 0),
	}
}

// Render draws d into area, two drawing rows per terminal row, and returns
// the rectangle of cells it covered. That rectangle is what mouse
// coordinates must be mapped against until the next render.
//
// Every cell gets one glyph: the upper half block colored with the top pixel
// and backed by the bottom pixel, or a single half block when only one of
// the two rows exists. Pixels are composited over the transparency grid, so
// an in-bounds transparent pixel still shows the checkerboard.
func Render(w CellWriter, d *drawing.Drawing, grid TransparencyGrid, area Rect) Rect {
	used := Rect{
		X:      area.X,
		Y:      area.Y,
		Width:  max(min(d.Width, area.Width), 0),
		Height: max(min(d.Rows(), area.Height), 0),
	}

	for r := 0; r < used.Height; r++ {
		top := r * display.PixelsPerCell
		for c := 0; c < used.Width; c++ {
			bg := grid.Background(c, top)
			upper, hasUpper := d.Pixel(c, top)
			lower, hasLower := d.Pixel(c, top+1)

			var (
				glyph rune
				style = tcell.StyleDefault
			)
			switch {
			case hasUpper && hasLower:
				glyph = display.UpperHalfBlock
				style = style.
					Foreground(color.BlendOver(upper, bg).TCell()).
					Background(color.BlendOver(lower, bg).TCell())
			case hasUpper:
				glyph = display.UpperHalfBlock
				style = style.Foreground(color.BlendOver(upper, bg).TCell())
			case hasLower:
				glyph = display.LowerHalfBlock
				style = style.Foreground(color.BlendOver(lower, bg).TCell())
			default:
				continue
			}
			w.SetContent(used.X+c, used.Y+r, glyph, nil, style)
		}
	}

	return used
}
