package palette

import (
	"slices"

	"github.com/valerio/go-pixed/pixed/color"
)

// HistoryCapacity is the maximum number of previously used colors kept
const HistoryCapacity = 10

// Palette tracks the current drawing color and a bounded, deduplicated
// history of the colors it replaced. History is ordered oldest first.
type Palette struct {
	current color.Color
	history []color.Color
}

// New creates a palette with the given current color. The history seeds are
// pushed in order, subject to the same dedup and capacity rules as SetColor.
func New(current color.Color, history ...color.Color) *Palette {
	p := &Palette{current: current}
	for _, c := range history {
		p.push(c)
	}
	return p
}

// Default returns black as the current color with a few primaries to recall
func Default() *Palette {
	return New(color.Black,
		color.White,
		color.RGBA(255, 0, 0, 255),
		color.RGBA(0, 255, 0, 255),
		color.RGBA(0, 0, 255, 255),
		color.RGBA(0, 255, 255, 255),
		color.RGBA(255, 255, 0, 255),
	)
}

// Current returns the color used for painting
func (p *Palette) Current() color.Color {
	return p.current
}

// History returns a copy of the history, oldest first
func (p *Palette) History() []color.Color {
	return slices.Clone(p.history)
}

// Len returns the number of colors in the history
func (p *Palette) Len() int {
	return len(p.history)
}

// SetColor makes c the current color and pushes the displaced one into history
func (p *Palette) SetColor(c color.Color) {
	old := p.current
	p.current = c
	p.push(old)
}

func (p *Palette) push(c color.Color) {
	if slices.Contains(p.history, c) {
		return
	}
	p.history = append(p.history, c)
	if len(p.history) > HistoryCapacity {
		p.history = slices.Delete(p.history, 0, 1)
	}
}

// Recall looks up a color by its distance from the newest history entry,
// 0 being the most recently displaced color. History is not modified.
func (p *Palette) Recall(i int) (color.Color, bool) {
	if i < 0 || i >= len(p.history) {
		return color.Color{}, false
	}
	return p.history[len(p.history)-1-i], true
}

// HotkeyIndex maps the digit keys to recall indices: '1'..'9' are 0..8 and
// '0' is 9. ok is false for any other rune.
func HotkeyIndex(r rune) (int, bool) {
	switch {
	case r == '0':
		return 9, true
	case r >= '1' && r <= '9':
		return int(r - '1'), true
	}
	return 0, false
}

// RecallHotkey is Recall addressed by digit key
func (p *Palette) RecallHotkey(r rune) (color.Color, bool) {
	i, ok := HotkeyIndex(r)
	if !ok {
		return color.Color{}, false
	}
	return p.Recall(i)
}
