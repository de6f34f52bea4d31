package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/display"
)

// fill gives every pixel a distinct opaque color derived from its position
func fill(d *Drawing) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			d.SetPixel(x, y, color.RGBA(uint8(x), uint8(y), uint8(x+y), 255))
		}
	}
}

func TestNew(t *testing.T) {
	d, err := New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Width)
	assert.Equal(t, 2, d.Height)
	assert.Len(t, d.Pixels, 6)
	for _, p := range d.Pixels {
		assert.Equal(t, color.Transparent, p)
	}

	tooBig := display.MaxDrawingSize + 1
	for _, size := range [][2]int{{0, 4}, {4, 0}, {-1, 3}, {tooBig, 1}, {1, tooBig}, {1 << 32, 1 << 32}} {
		_, err := New(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, 16, d.Width)
	assert.Equal(t, 16, d.Height)
	assert.True(t, d.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("repairs omitted pixels", func(t *testing.T) {
		d := &Drawing{Width: 4, Height: 3}
		assert.True(t, d.Validate())
		assert.Len(t, d.Pixels, 12)
	})

	t.Run("rejects mismatched pixels", func(t *testing.T) {
		d := &Drawing{Width: 4, Height: 3, Pixels: make([]color.Color, 5)}
		assert.False(t, d.Validate())
		assert.Len(t, d.Pixels, 5, "mismatched data is not touched")
	})

	t.Run("rejects degenerate size", func(t *testing.T) {
		d := &Drawing{Width: 0, Height: 3}
		assert.False(t, d.Validate())
	})

	oversized := []struct {
		name          string
		width, height int
	}{
		{"side above the limit", display.MaxDrawingSize + 1, 1},
		{"product that wraps to zero", 1 << 32, 1 << 32},
		{"product too large to allocate", 1_000_000_000, 1_000_000_000},
	}
	for _, tt := range oversized {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			d := &Drawing{Width: tt.width, Height: tt.height}
			assert.False(t, d.Validate())
			assert.Empty(t, d.Pixels, "nothing is allocated for an invalid size")
		})
	}
}

func TestPixelOutOfRange(t *testing.T) {
	d, err := New(4, 3)
	require.NoError(t, err)

	for _, p := range [][2]int{{4, 0}, {0, 3}, {4, 3}, {100, 100}, {-1, 0}, {0, -1}} {
		_, ok := d.Pixel(p[0], p[1])
		assert.False(t, ok, "Pixel(%d, %d)", p[0], p[1])
		assert.Nil(t, d.PixelRef(p[0], p[1]), "PixelRef(%d, %d)", p[0], p[1])
		assert.False(t, d.SetPixel(p[0], p[1], color.White), "SetPixel(%d, %d)", p[0], p[1])
	}
}

func TestPixelRowMajor(t *testing.T) {
	d, err := New(4, 3)
	require.NoError(t, err)

	red := color.RGBA(255, 0, 0, 255)
	assert.True(t, d.SetPixel(1, 2, red))
	assert.Equal(t, red, d.Pixels[2*4+1])

	c, ok := d.Pixel(1, 2)
	assert.True(t, ok)
	assert.Equal(t, red, c)

	*d.PixelRef(3, 0) = color.White
	assert.Equal(t, color.White, d.Pixels[3])
}

func TestResize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"grow", 6, 5},
		{"shrink", 2, 1},
		{"wider and shorter", 7, 2},
		{"narrower and taller", 1, 6},
		{"same", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(4, 3)
			require.NoError(t, err)
			fill(d)
			orig := *d
			orig.Pixels = append([]color.Color(nil), d.Pixels...)

			d.Resize(tt.width, tt.height)
			assert.Equal(t, tt.width, d.Width)
			assert.Equal(t, tt.height, d.Height)
			require.Len(t, d.Pixels, tt.width*tt.height)

			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					got, ok := d.Pixel(x, y)
					require.True(t, ok)
					if x < orig.Width && y < orig.Height {
						want, _ := orig.Pixel(x, y)
						assert.Equal(t, want, got, "(%d, %d) keeps its pixel", x, y)
					} else {
						assert.Equal(t, color.Transparent, got, "(%d, %d) is new", x, y)
					}
				}
			}
		})
	}
}

func TestResizeClampsToOne(t *testing.T) {
	d, err := New(2, 2)
	require.NoError(t, err)
	d.Resize(0, -3)
	assert.Equal(t, 1, d.Width)
	assert.Equal(t, 1, d.Height)
	assert.Len(t, d.Pixels, 1)
}

func TestResizeClampsToMax(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"just above the limit", display.MaxDrawingSize + 1, display.MaxDrawingSize + 1},
		{"product that wraps to zero", 1 << 32, 1 << 32},
		{"one huge side", 1 << 40, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(2, 2)
			require.NoError(t, err)
			d.SetPixel(1, 1, color.White)

			d.Resize(tt.width, tt.height)
			assert.Equal(t, min(tt.width, display.MaxDrawingSize), d.Width)
			assert.Equal(t, min(tt.height, display.MaxDrawingSize), d.Height)
			assert.Len(t, d.Pixels, d.Width*d.Height)
			assert.True(t, d.Validate())

			got, ok := d.Pixel(1, 1)
			require.True(t, ok)
			assert.Equal(t, color.White, got)
		})
	}
}

func TestEraseAll(t *testing.T) {
	d, err := New(5, 4)
	require.NoError(t, err)
	fill(d)

	d.EraseAll()
	assert.Equal(t, 5, d.Width)
	assert.Equal(t, 4, d.Height)
	require.Len(t, d.Pixels, 20)
	for _, p := range d.Pixels {
		assert.Equal(t, color.Transparent, p)
	}
}

func TestRows(t *testing.T) {
	for height, rows := range map[int]int{1: 1, 2: 1, 3: 2, 16: 8, 17: 9} {
		d, err := New(1, height)
		require.NoError(t, err)
		assert.Equal(t, rows, d.Rows(), "height %d", height)
	}
}
