package drawing

import (
	"errors"
	"fmt"

	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/display"
)

var (
	// ErrInvalidSize is returned when a drawing side is below 1 or above MaxDrawingSize
	ErrInvalidSize = errors.New("drawing size out of range")
	// ErrCorrupt marks drawing data whose pixel count cannot match its size
	ErrCorrupt = errors.New("drawing pixel data does not match its size")
)

// Drawing is a width x height grid of pixels stored row-major,
// the pixel at (x, y) lives at index y*Width + x.
type Drawing struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Pixels []color.Color `json:"pixels,omitempty"`
}

// New creates a fully transparent drawing. Degenerate and oversized grids
// are rejected.
func New(width, height int) (*Drawing, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w: got %dx%d, want 1x1 to %dx%d",
			ErrInvalidSize, width, height, display.MaxDrawingSize, display.MaxDrawingSize)
	}
	return &Drawing{
		Width:  width,
		Height: height,
		Pixels: transparentPixels(width, height),
	}, nil
}

// Default creates the square drawing used when nothing was loaded
func Default() *Drawing {
	d, _ := New(display.DefaultDrawingSize, display.DefaultDrawingSize)
	return d
}

func validSize(width, height int) bool {
	return width >= 1 && height >= 1 &&
		width <= display.MaxDrawingSize && height <= display.MaxDrawingSize
}

func clampSide(n int) int {
	return min(max(n, 1), display.MaxDrawingSize)
}

func transparentPixels(width, height int) []color.Color {
	// the zero Color is fully transparent
	return make([]color.Color, width*height)
}

// Validate repairs a drawing whose pixel data was omitted and reports
// whether the pixel count now matches the dimensions. A false result means
// the data cannot be trusted. Sizes outside 1..MaxDrawingSize are rejected
// before anything is allocated.
func (d *Drawing) Validate() bool {
	if !validSize(d.Width, d.Height) {
		return false
	}
	if len(d.Pixels) == 0 {
		d.Pixels = transparentPixels(d.Width, d.Height)
	}
	return len(d.Pixels) == d.Width*d.Height
}

func (d *Drawing) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return 0, false
	}
	i := y*d.Width + x
	if i >= len(d.Pixels) {
		return 0, false
	}
	return i, true
}

// Pixel returns the color at (x, y). ok is false outside the grid.
func (d *Drawing) Pixel(x, y int) (color.Color, bool) {
	i, ok := d.index(x, y)
	if !ok {
		return color.Color{}, false
	}
	return d.Pixels[i], true
}

// PixelRef returns a pointer to the pixel at (x, y), or nil outside the grid
func (d *Drawing) PixelRef(x, y int) *color.Color {
	i, ok := d.index(x, y)
	if !ok {
		return nil
	}
	return &d.Pixels[i]
}

// SetPixel writes c at (x, y). Writes outside the grid are dropped.
func (d *Drawing) SetPixel(x, y int, c color.Color) bool {
	p := d.PixelRef(x, y)
	if p == nil {
		return false
	}
	*p = c
	return true
}

// Resize reallocates the grid. The overlapping top-left region keeps its
// pixels, everything else becomes transparent. Sides are clamped to
// 1..MaxDrawingSize.
func (d *Drawing) Resize(width, height int) {
	width = clampSide(width)
	height = clampSide(height)

	pixels := transparentPixels(width, height)
	for y := 0; y < min(height, d.Height); y++ {
		for x := 0; x < min(width, d.Width); x++ {
			if c, ok := d.Pixel(x, y); ok {
				pixels[y*width+x] = c
			}
		}
	}

	d.Width = width
	d.Height = height
	d.Pixels = pixels
}

// EraseAll makes every pixel transparent, keeping the size
func (d *Drawing) EraseAll() {
	d.Pixels = transparentPixels(d.Width, d.Height)
}

// Rows returns the number of terminal rows needed to show the drawing
func (d *Drawing) Rows() int {
	return (d.Height + display.PixelsPerCell - 1) / display.PixelsPerCell
}
