package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-pixed/pixed"
	"github.com/valerio/go-pixed/pixed/backend"
	"github.com/valerio/go-pixed/pixed/backend/headless"
	"github.com/valerio/go-pixed/pixed/backend/terminal"
	"github.com/valerio/go-pixed/pixed/config"
	"github.com/valerio/go-pixed/pixed/display"
)

func main() {
	app := cli.NewApp()
	app.Name = "pixed"
	app.Description = "A pixel art editor for the terminal"
	app.Usage = "pixed [options] [drawing file]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Width of a new drawing in pixels (default: from config, or 16)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Height of a new drawing in pixels (default: from config, or 16)",
		},
		cli.IntFlag{
			Name:  "grid-size",
			Usage: "Side of one transparency checker square in drawing pixels",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runEditor
	app.Commands = []cli.Command{
		{
			Name:      "edit",
			Usage:     "Open a drawing in the terminal editor (default)",
			ArgsUsage: "[drawing file]",
			Action:    runEditor,
		},
		{
			Name:      "print",
			Usage:     "Print a drawing to stdout with 24-bit colors",
			ArgsUsage: "<drawing file>",
			Action:    runPrint,
		},
		{
			Name:      "snapshot",
			Usage:     "Export a drawing as PNG",
			ArgsUsage: "<drawing file>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out",
					Usage: "Output PNG path (default: timestamped file in the current directory)",
				},
				cli.IntFlag{
					Name:  "scale",
					Usage: "Image pixels per drawing pixel",
					Value: display.DefaultSnapshotScale,
				},
			},
			Action: runSnapshot,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running pixed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if w := c.GlobalInt("width"); w > 0 {
		cfg.DrawingWidth = w
	}
	if h := c.GlobalInt("height"); h > 0 {
		cfg.DrawingHeight = h
	}
	if size := c.GlobalInt("grid-size"); size > 0 {
		cfg.Grid.CellSize = size
	}
	return cfg, nil
}

func backendConfig(c *cli.Context) backend.BackendConfig {
	level := slog.LevelInfo
	if c.GlobalBool("debug") {
		level = slog.LevelDebug
	}
	return backend.BackendConfig{Title: "pixed", LogLevel: level}
}

func openEditor(c *cli.Context) (*pixed.Editor, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if c.NArg() == 0 {
		return pixed.New(cfg)
	}
	return pixed.NewWithFile(cfg, c.Args().First())
}

// openExisting is openEditor for commands that only read a drawing
func openExisting(c *cli.Context) (*pixed.Editor, error) {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, c.Command.Name)
		return nil, errors.New("no drawing file provided")
	}
	path := c.Args().First()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot open drawing: %w", err)
	}
	return openEditor(c)
}

func runEditor(c *cli.Context) error {
	e, err := openEditor(c)
	if err != nil {
		return err
	}
	return e.Run(terminal.New(), backendConfig(c))
}

func runPrint(c *cli.Context) error {
	e, err := openExisting(c)
	if err != nil {
		return err
	}
	return e.Run(headless.New(os.Stdout), backendConfig(c))
}

func runSnapshot(c *cli.Context) error {
	cfg := backendConfig(c)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	slog.SetDefault(slog.New(handler))

	e, err := openExisting(c)
	if err != nil {
		return err
	}
	return e.Snapshot(c.String("out"), c.Int("scale"))
}
