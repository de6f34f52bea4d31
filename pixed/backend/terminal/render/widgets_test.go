package render

import (
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/config"
	"github.com/valerio/go-pixed/pixed/drawing"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestDrawStatusBar(t *testing.T) {
	s := newScreen(t, 60, 3)
	cfg := config.Default()
	d := drawing.Default()

	DrawStatusBar(s, 1, 60, cfg, d, "art.json")

	assert.Equal(t, " NORMAL ", rowText(s, 1, 0, 8))
	assert.Equal(t, " #000000 ", rowText(s, 1, 9, 18))

	_, _, style, _ := s.GetContent(10, 1)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, color.White.RGB().TCell(), fg, "white text on a black swatch")
	assert.Equal(t, color.Black.RGB().TCell(), bg)

	// Hotkey 1 recalls the newest history entry
	r, _, style, _ := s.GetContent(19, 1)
	assert.Equal(t, '1', r)
	_, bg, _ = style.Decompose()
	newest, ok := cfg.Palette.Recall(0)
	require.True(t, ok)
	assert.Equal(t, newest.RGB().TCell(), bg)

	line := rowText(s, 1, 0, 60)
	assert.Contains(t, line, " 16x16 ")
	assert.Contains(t, line, "art.json")
}

func TestDrawStatusBar_Clipped(t *testing.T) {
	s := newScreen(t, 30, 2)
	DrawStatusBar(s, 0, 5, config.Default(), drawing.Default(), "")

	assert.Equal(t, " NORM", rowText(s, 0, 0, 5))
	r, _, _, _ := s.GetContent(5, 0)
	assert.Equal(t, ' ', r, "nothing is written past the limit")
}

func TestDrawCommandBar(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*config.Config, *LogBuffer)
		want  string
	}{
		{
			name: "typing a command",
			setup: func(c *config.Config, _ *LogBuffer) {
				c.Mode.EnterCommand()
				for _, r := range "color red" {
					c.Mode.Push(r)
				}
			},
			want: ":color red",
		},
		{
			name: "latest message",
			setup: func(_ *config.Config, lb *LogBuffer) {
				lb.Add(LogEntry{Level: slog.LevelInfo, Message: "Write success"})
				lb.Add(LogEntry{Level: slog.LevelDebug, Message: "hidden"})
			},
			want: "Write success",
		},
		{
			name:  "nothing to show",
			setup: func(*config.Config, *LogBuffer) {},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(t, 20, 2)
			cfg := config.Default()
			lb := NewLogBuffer(10)
			tt.setup(cfg, lb)

			DrawCommandBar(s, 1, 20, cfg, lb)

			assert.Equal(t, tt.want, rowText(s, 1, 0, len([]rune(tt.want))))
		})
	}
}
