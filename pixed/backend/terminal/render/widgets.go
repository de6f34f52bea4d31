package render

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-pixed/pixed/canvas"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/config"
	"github.com/valerio/go-pixed/pixed/drawing"
)

var (
	barStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	modeStyle    = barStyle.Bold(true)
	commandStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	errorStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	warnStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// DrawText writes s starting at (x, y) without passing limit, and returns
// the column after the last written rune.
func DrawText(w canvas.CellWriter, x, y, limit int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= limit {
			break
		}
		w.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func fill(w canvas.CellWriter, x, y, limit int, style tcell.Style) {
	for ; x < limit; x++ {
		w.SetContent(x, y, ' ', nil, style)
	}
}

// swatchStyle shows c as seen over white, with readable text on top
func swatchStyle(c color.Color) tcell.Style {
	bg := color.BlendOver(c, color.White.RGB())
	fg := color.ContrastForeground(bg.Color())
	return tcell.StyleDefault.Background(bg.TCell()).Foreground(fg.RGB().TCell())
}

// DrawStatusBar renders the mode, the current color, the recallable
// history and the drawing size on row y.
//
//	NORMAL  #ff0000  1 2 3 4 5 6  16x16  art.json
func DrawStatusBar(w canvas.CellWriter, y, width int, cfg *config.Config, d *drawing.Drawing, path string) {
	fill(w, 0, y, width, barStyle)

	x := DrawText(w, 0, y, width, " "+cfg.Mode.String()+" ", modeStyle)
	x = DrawText(w, x, y, width, " ", barStyle)

	current := cfg.Palette.Current()
	x = DrawText(w, x, y, width, " "+current.Hex()+" ", swatchStyle(current))
	x = DrawText(w, x, y, width, " ", barStyle)

	for i := 0; i < cfg.Palette.Len(); i++ {
		c, _ := cfg.Palette.Recall(i)
		key := fmt.Sprintf("%d", (i+1)%10)
		x = DrawText(w, x, y, width, key, swatchStyle(c))
		x = DrawText(w, x, y, width, " ", barStyle)
	}

	x = DrawText(w, x, y, width, fmt.Sprintf(" %dx%d ", d.Width, d.Height), barStyle)
	if path != "" {
		DrawText(w, x, y, width, " "+path, barStyle)
	}
}

// DrawCommandBar renders the command line being typed, or the newest log
// message at info level or above when in normal mode.
func DrawCommandBar(w canvas.CellWriter, y, width int, cfg *config.Config, logs *LogBuffer) {
	fill(w, 0, y, width, commandStyle)

	if cfg.Mode.Kind == config.ModeCommand {
		x := DrawText(w, 0, y, width, ":"+cfg.Mode.Line(), commandStyle)
		if x < width {
			w.SetContent(x, y, ' ', nil, commandStyle.Reverse(true))
		}
		return
	}

	if logs == nil {
		return
	}
	entry, ok := logs.Latest(slog.LevelInfo)
	if !ok {
		return
	}
	style := commandStyle
	switch {
	case entry.Level >= slog.LevelError:
		style = errorStyle
	case entry.Level >= slog.LevelWarn:
		style = warnStyle
	}
	DrawText(w, 0, y, width, entry.Message, style)
}

// DrawTooSmall replaces the whole screen with a resize hint
func DrawTooSmall(w canvas.CellWriter, width, height, minWidth, minHeight int) {
	msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minWidth, minHeight)
	DrawText(w, 0, height/2, width, msg, errorStyle)
}
