package canvas

import (
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/display"
)

// TransparencyGrid is the checkerboard drawn behind pixels that are not opaque
type TransparencyGrid struct {
	// CellSize is the side of one checker square, in drawing pixels
	CellSize int
	Dark     color.RGB
	Light    color.RGB
}

// DefaultGrid returns the light gray checkerboard
func DefaultGrid() TransparencyGrid {
	return TransparencyGrid{
		CellSize: display.DefaultGridSize,
		Dark:     color.RGB{R: display.DefaultGridDark, G: display.DefaultGridDark, B: display.DefaultGridDark},
		Light:    color.RGB{R: display.DefaultGridLight, G: display.DefaultGridLight, B: display.DefaultGridLight},
	}
}

// Background returns the checker color at drawing pixel (x, y).
// Squares whose column and row sum is even are dark.
func (g TransparencyGrid) Background(x, y int) color.RGB {
	size := max(g.CellSize, 1)
	if (x/size+y/size)%2 == 0 {
		return g.Dark
	}
	return g.Light
}
