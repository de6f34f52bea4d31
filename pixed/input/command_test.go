package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-pixed/pixed/input/action"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"color red", Command{Action: action.SetColor, Color: "red"}},
		{"c #ff0000", Command{Action: action.SetColor, Color: "#ff0000"}},
		{`color = "#ff000080"`, Command{Action: action.SetColor, Color: "#ff000080"}},
		{`color='blue';`, Command{Action: action.SetColor, Color: "blue"}},
		{"  resize 32 24 ", Command{Action: action.Resize, Width: 32, Height: 24}},
		{"resize 32x24", Command{Action: action.Resize, Width: 32, Height: 24}},
		{"resize 16", Command{Action: action.Resize, Width: 16, Height: 16}},
		{"resize 1024 1", Command{Action: action.Resize, Width: 1024, Height: 1}},
		{"erase", Command{Action: action.Erase}},
		{"w", Command{Action: action.Save}},
		{"w out.json", Command{Action: action.Save, Path: "out.json"}},
		{"wq", Command{Action: action.Save, Quit: true}},
		{"q", Command{Action: action.Quit}},
		{"QUIT", Command{Action: action.Quit}},
		{"snapshot", Command{Action: action.Snapshot}},
		{"snapshot art.png 8", Command{Action: action.Snapshot, Path: "art.png", Scale: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrEmptyCommand},
		{"   ", ErrEmptyCommand},
		{"paint 1 2", ErrUnknownCommand},
		{"42", ErrUnknownCommand},
		{"color", ErrBadArguments},
		{"color =", ErrBadArguments},
		{"resize", ErrBadArguments},
		{"resize 0 4", ErrBadArguments},
		{"resize a b", ErrBadArguments},
		{"resize 1 2 3", ErrBadArguments},
		{"resize 1025 4", ErrBadArguments},
		{"resize 4 1025", ErrBadArguments},
		{"resize 100000 100000", ErrBadArguments},
		{"resize 4294967296 4294967296", ErrBadArguments},
		{"resize 4294967296x4294967296", ErrBadArguments},
		{"resize 99999999999999999999", ErrBadArguments},
		{"erase now", ErrBadArguments},
		{`write "my art.json"`, ErrBadArguments},
		{"snapshot a.png 0", ErrBadArguments},
		{"snapshot a.png x", ErrBadArguments},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
