// Package config holds the runtime settings of the radial viewer.
//
// Settings come from Default, optionally overridden by a YAML file, then by
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// SourceMode selects how the board is turned into a texture.
type SourceMode string

const (
	// SourceCells draws the board as outlined cells on a fixed-size image.
	SourceCells SourceMode = "cells"
	// SourceDirect maps one board cell to one texel.
	SourceDirect SourceMode = "direct"
)

func (m SourceMode) MarshalText() ([]byte, error) { return []byte(m), nil }

func (m *SourceMode) UnmarshalText(b []byte) error {
	switch v := SourceMode(strings.ToLower(strings.TrimSpace(string(b)))); v {
	case SourceCells, SourceDirect:
		*m = v
		return nil
	default:
		return fmt.Errorf("%w: source %q, want %q or %q", ErrInvalid, string(b), SourceCells, SourceDirect)
	}
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Projection struct {
	// GridWidth and GridHeight size the texture in SourceCells mode.
	GridWidth   int        `yaml:"grid_width"`
	GridHeight  int        `yaml:"grid_height"`
	InnerRadius float64    `yaml:"inner_radius"`
	OuterRadius float64    `yaml:"outer_radius"`
	Source      SourceMode `yaml:"source"`
}

type Timing struct {
	Tick       time.Duration `yaml:"tick"`
	Game       time.Duration `yaml:"game"`
	AngleDelta float64       `yaml:"angle_delta"`
	Fade       time.Duration `yaml:"fade"`
}

type Render struct {
	Smooth bool   `yaml:"smooth"`
	Credit string `yaml:"credit"`
}

type Game struct {
	Seed      uint64 `yaml:"seed"`
	Autostart bool   `yaml:"autostart"`
}

type Headless struct {
	Enabled bool   `yaml:"enabled"`
	Ticks   int    `yaml:"ticks"`
	Output  string `yaml:"output"`
	// Report prints a run summary to stdout when done.
	Report bool `yaml:"report"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	Projection Projection `yaml:"projection"`
	Timing     Timing     `yaml:"timing"`
	Render     Render     `yaml:"render"`
	Game       Game       `yaml:"game"`
	Headless   Headless   `yaml:"headless"`
	Debug      bool       `yaml:"debug"`
	LogLevel   slog.Level `yaml:"log_level"`
}

// Default returns the classic 600×600 setup.
func Default() Config {
	return Config{
		Window: Window{Width: 600, Height: 600, Title: "Radial Tetris"},
		Projection: Projection{
			GridWidth:   100,
			GridHeight:  100,
			InnerRadius: 80,
			OuterRadius: 270,
			Source:      SourceCells,
		},
		Timing: Timing{
			Tick:       10 * time.Millisecond,
			Game:       400 * time.Millisecond,
			AngleDelta: 0.001,
			Fade:       300 * time.Millisecond,
		},
		Render: Render{Smooth: true, Credit: "by O.L."},
		Game:   Game{Seed: 1, Autostart: false},
		Headless: Headless{
			Ticks:  400,
			Output: "radial.png",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings describe a drawable view.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Projection.GridWidth >= 2 && c.Projection.GridHeight >= 2,
		"grid size %dx%d, need at least 2x2", c.Projection.GridWidth, c.Projection.GridHeight)
	check(c.Projection.InnerRadius >= 0 && c.Projection.InnerRadius < c.Projection.OuterRadius,
		"radii %g..%g, need 0 <= inner < outer", c.Projection.InnerRadius, c.Projection.OuterRadius)
	check(c.Projection.Source == SourceCells || c.Projection.Source == SourceDirect,
		"source %q", c.Projection.Source)
	check(c.Timing.Tick > 0, "tick interval %s", c.Timing.Tick)
	check(c.Timing.Game > 0, "game interval %s", c.Timing.Game)
	check(c.Timing.Fade >= 0, "fade duration %s", c.Timing.Fade)
	if c.Headless.Enabled {
		check(c.Headless.Ticks >= 0, "headless ticks %d", c.Headless.Ticks)
		check(c.Headless.Output != "", "headless output path is empty")
	}
	return errors.Join(errs...)
}

// BindFlags registers a flag for every setting on fs, using the current
// values of c as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")
	fs.StringVar(&c.Window.Title, "title", c.Window.Title, "window title")

	fs.IntVar(&c.Projection.GridWidth, "grid-width", c.Projection.GridWidth, "texture width in cells mode")
	fs.IntVar(&c.Projection.GridHeight, "grid-height", c.Projection.GridHeight, "texture height in cells mode")
	fs.Float64Var(&c.Projection.InnerRadius, "inner-radius", c.Projection.InnerRadius, "inner radius of the ring")
	fs.Float64Var(&c.Projection.OuterRadius, "outer-radius", c.Projection.OuterRadius, "outer radius of the ring")
	fs.TextVar(&c.Projection.Source, "source", c.Projection.Source, "board texture: cells or direct")

	fs.DurationVar(&c.Timing.Tick, "tick", c.Timing.Tick, "animation tick interval")
	fs.DurationVar(&c.Timing.Game, "game-interval", c.Timing.Game, "time between game steps")
	fs.Float64Var(&c.Timing.AngleDelta, "angle-delta", c.Timing.AngleDelta, "rotation per tick in radians")
	fs.DurationVar(&c.Timing.Fade, "fade", c.Timing.Fade, "game-over panel fade duration")

	fs.BoolVar(&c.Render.Smooth, "smooth", c.Render.Smooth, "bilinear down/up sampling")
	fs.StringVar(&c.Render.Credit, "credit", c.Render.Credit, "credit label, empty to hide")

	fs.Uint64Var(&c.Game.Seed, "seed", c.Game.Seed, "piece randomiser seed")
	fs.BoolVar(&c.Game.Autostart, "autostart", c.Game.Autostart, "start playing without pressing space")

	fs.BoolVar(&c.Headless.Enabled, "headless", c.Headless.Enabled, "render without a window and write a PNG")
	fs.IntVar(&c.Headless.Ticks, "ticks", c.Headless.Ticks, "ticks to simulate in headless mode")
	fs.StringVar(&c.Headless.Output, "out", c.Headless.Output, "PNG written in headless mode")

	fs.BoolVar(&c.Headless.Report, "report", c.Headless.Report, "print a run report after a headless run")

	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// FromArgs builds a config from command-line arguments. A -config flag names
// a YAML file applied before any other flag given on the command line.
func FromArgs(name string, args []string) (Config, error) {
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	path := probe.String("config", "", "")
	scratch := Default()
	scratch.BindFlags(probe)
	// Errors are reported by the second parse, which prints usage.
	_ = probe.Parse(args)

	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", *path, "YAML config file")
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
