package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by Parse for text that names no color
var ErrInvalidColor = errors.New("invalid color")

// Color is an sRGB color with straight (non-premultiplied) alpha.
// An alpha of 0 is fully transparent.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// RGB is an opaque color, the result of compositing a Color over a background
type RGB struct {
	R, G, B uint8
}

var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

// RGBA creates a color from its four channels
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque reports whether the color has full alpha
func (c Color) Opaque() bool {
	return c.A == 255
}

// RGB drops the alpha channel
func (c Color) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

// Hex formats the color as #rrggbb, or #rrggbbaa when it is not opaque
func (c Color) Hex() string {
	hex := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
	if c.Opaque() {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

// TCell converts the opaque color to a 24-bit tcell color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Color returns the opaque RGB as a fully opaque Color
func (c RGB) Color() Color {
	return Color{c.R, c.G, c.B, 255}
}

// BlendOver composites c over an opaque background.
// Each channel is alpha*fg + (1-alpha)*bg with alpha = A/255, truncated.
// The arithmetic is done in integers so the truncation is exact.
func BlendOver(c Color, bg RGB) RGB {
	a := uint32(c.A)
	blend := func(fg, bg uint8) uint8 {
		return uint8((a*uint32(fg) + (255-a)*uint32(bg)) / 255)
	}
	return RGB{
		R: blend(c.R, bg.R),
		G: blend(c.G, bg.G),
		B: blend(c.B, bg.B),
	}
}

// Grayscale returns the luminance 0.299R + 0.587G + 0.114B, truncated.
// Alpha is ignored.
func Grayscale(c Color) uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}

// ContrastForeground picks black or white, whichever stays legible on top of c
func ContrastForeground(c Color) Color {
	if Grayscale(c) > 128 {
		return Black
	}
	return White
}

// Parse reads a color from text. Accepted forms are #rgb, #rrggbb, #rrggbbaa,
// "transparent" and the color names known to tcell ("red", "navy", ...).
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s == "transparent" {
		return Transparent, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	tc := tcell.GetColor(s)
	if tc == tcell.ColorDefault {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{uint8(r), uint8(g), uint8(b), 255}, nil
}

func parseHex(s string) (Color, error) {
	alpha := uint8(255)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, alpha}, nil
}
