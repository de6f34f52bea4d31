package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/valerio/go-pixed/pixed/canvas"
	"github.com/valerio/go-pixed/pixed/color"
	"github.com/valerio/go-pixed/pixed/display"
	"github.com/valerio/go-pixed/pixed/palette"
)

// Config is the editor state shared by the renderer and the input handler:
// painting color and history, how transparency is shown, and the input mode.
type Config struct {
	Palette *palette.Palette
	Grid    canvas.TransparencyGrid
	Mode    Mode

	// Size of the drawing created when no file is loaded
	DrawingWidth  int
	DrawingHeight int
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Palette:       palette.Default(),
		Grid:          canvas.DefaultGrid(),
		DrawingWidth:  display.DefaultDrawingSize,
		DrawingHeight: display.DefaultDrawingSize,
	}
}

// File is the on-disk YAML form. Every field is optional.
//
//	palette:
//	  current: "#000000"
//	  history: [white, red, "#00ff00"]
//	grid:
//	  size: 8
//	  dark: "#d9d9d9"
//	  light: "#f0f0f0"
//	drawing:
//	  width: 32
//	  height: 32
type File struct {
	Palette struct {
		Current string   `yaml:"current"`
		History []string `yaml:"history"`
	} `yaml:"palette"`
	Grid struct {
		Size  int    `yaml:"size"`
		Dark  string `yaml:"dark"`
		Light string `yaml:"light"`
	} `yaml:"grid"`
	Drawing struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"drawing"`
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.apply(f); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(f File) error {
	var errs []error
	parse := func(field, s string) (color.Color, bool) {
		col, err := color.Parse(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
			return color.Color{}, false
		}
		return col, true
	}

	if f.Palette.Current != "" || len(f.Palette.History) > 0 {
		current := c.Palette.Current()
		if f.Palette.Current != "" {
			if col, ok := parse("palette.current", f.Palette.Current); ok {
				current = col
			}
		}
		history := c.Palette.History()
		if len(f.Palette.History) > 0 {
			history = history[:0]
			for i, s := range f.Palette.History {
				if col, ok := parse(fmt.Sprintf("palette.history[%d]", i), s); ok {
					history = append(history, col)
				}
			}
		}
		c.Palette = palette.New(current, history...)
	}

	if f.Grid.Size < 0 {
		errs = append(errs, fmt.Errorf("grid.size: must not be negative, got %d", f.Grid.Size))
	} else if f.Grid.Size > 0 {
		c.Grid.CellSize = f.Grid.Size
	}
	if f.Grid.Dark != "" {
		if col, ok := parse("grid.dark", f.Grid.Dark); ok {
			c.Grid.Dark = col.RGB()
		}
	}
	if f.Grid.Light != "" {
		if col, ok := parse("grid.light", f.Grid.Light); ok {
			c.Grid.Light = col.RGB()
		}
	}

	if f.Drawing.Width < 0 || f.Drawing.Height < 0 ||
		f.Drawing.Width > display.MaxDrawingSize || f.Drawing.Height > display.MaxDrawingSize {
		errs = append(errs, fmt.Errorf("drawing: size must be between 1 and %d, got %dx%d",
			display.MaxDrawingSize, f.Drawing.Width, f.Drawing.Height))
	} else {
		if f.Drawing.Width > 0 {
			c.DrawingWidth = f.Drawing.Width
		}
		if f.Drawing.Height > 0 {
			c.DrawingHeight = f.Drawing.Height
		}
	}

	return errors.Join(errs...)
}
