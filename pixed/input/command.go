package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/input/action"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Command is a parsed command line
type Command struct {
	Action action.Action
	// Color is the unparsed color text of SetColor
	Color string
	// Width and Height are the new size for Resize
	Width, Height int
	// Path is the optional target of Save and Snapshot
	Path string
	// Scale is the snapshot upscaling factor, 0 means default
	Scale int
	// Quit is set when the command ends the session after running
	Quit bool
}

// ParseCommand parses a line typed after ':'.
//
//	color red            color = "#ff000080"
//	resize 32 24         resize 32x24        resize 16
//	erase
//	w [path]             wq [path]           q
//	snapshot [path] [scale]
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	nameEnd := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsLetter(r) })
	if nameEnd < 0 {
		nameEnd = len(line)
	}
	name := strings.ToLower(line[:nameEnd])
	rest := strings.TrimSpace(line[nameEnd:])
	if strings.HasPrefix(rest, "=") {
		rest = strings.TrimSpace(rest[1:])
	}
	args := strings.Fields(rest)

	switch name {
	case "color", "c":
		value := unquote(rest)
		if value == "" {
			return Command{}, fmt.Errorf("%w: %s needs a color", ErrBadArguments, name)
		}
		return Command{Action: action.SetColor, Color: value}, nil

	case "resize":
		w, h, err := parseSize(args)
		if err != nil {
			return Command{}, err
		}
		return Command{Action: action.Resize, Width: w, Height: h}, nil

	case "erase":
		if len(args) > 0 {
			return Command{}, fmt.Errorf("%w: erase takes no arguments", ErrBadArguments)
		}
		return Command{Action: action.Erase}, nil

	case "w", "write", "save", "wq":
		if len(args) > 1 {
			return Command{}, fmt.Errorf("%w: %s takes at most one path", ErrBadArguments, name)
		}
		cmd := Command{Action: action.Save, Quit: name == "wq"}
		if len(args) == 1 {
			cmd.Path = unquote(args[0])
		}
		return cmd, nil

	case "q", "quit":
		return Command{Action: action.Quit}, nil

	case "snapshot", "png":
		if len(args) > 2 {
			return Command{}, fmt.Errorf("%w: snapshot takes a path and a scale", ErrBadArguments)
		}
		cmd := Command{Action: action.Snapshot}
		if len(args) > 0 {
			cmd.Path = unquote(args[0])
		}
		if len(args) > 1 {
			scale, err := strconv.Atoi(args[1])
			if err != nil || scale < 1 {
				return Command{}, fmt.Errorf("%w: scale must be a positive integer, got %q", ErrBadArguments, args[1])
			}
			cmd.Scale = scale
		}
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

func parseSize(args []string) (int, int, error) {
	if len(args) == 1 {
		if w, h, found := strings.Cut(strings.ToLower(args[0]), "x"); found {
			args = []string{w, h}
		}
	}

	var dims []int
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 || n > display.MaxDrawingSize {
			return 0, 0, fmt.Errorf("%w: size must be between 1 and %d, got %q",
				ErrBadArguments, display.MaxDrawingSize, a)
		}
		dims = append(dims, n)
	}

	switch len(dims) {
	case 1:
		return dims[0], dims[0], nil
	case 2:
		return dims[0], dims[1], nil
	}
	return 0, 0, fmt.Errorf("%w: resize needs a width and a height", ErrBadArguments)
}

func unquote(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
