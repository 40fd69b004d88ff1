package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/plus3/radial"
	"github.com/plus3/radial/config"
	"github.com/plus3/radial/display"
	"github.com/plus3/radial/display/window"
	"github.com/plus3/radial/loop"
	"github.com/plus3/radial/tetris"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Printf("radial: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.FromArgs("radial", args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	radial.SetLogger(logger)

	model := tetris.New(cfg.Game.Seed)
	clock := loop.NewClock(model, loop.Options{
		TickInterval: cfg.Timing.Tick,
		GameInterval: cfg.Timing.Game,
		AngleDelta:   cfg.Timing.AngleDelta,
		FadeDuration: cfg.Timing.Fade,
	})
	if cfg.Game.Autostart {
		clock.Submit(loop.Restart)
	}

	renderer, err := display.NewRenderer(cfg, display.Board{
		Cols:       model.Cols(),
		Rows:       model.Rows(),
		HiddenRows: tetris.HiddenRows,
	})
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	if cfg.Headless.Enabled {
		return runHeadless(cfg, clock, renderer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return window.Run(ctx, clock, renderer, window.Options{
		Title: cfg.Window.Title,
		Debug: cfg.Debug,
	})
}

func runHeadless(cfg config.Config, clock *loop.Clock, renderer *display.Renderer) error {
	report := &Report{Config: cfg}
	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

	h := &display.Headless{Clock: clock, Renderer: renderer, Tick: cfg.Timing.Tick}
	if err := h.WriteFile(cfg.Headless.Output, cfg.Headless.Ticks); err != nil {
		return err
	}

	if !cfg.Headless.Report {
		return nil
	}
	report.TotalTime = time.Since(start)
	report.Final = clock.Latest()
	report.Scheduler = clock.Stats()
	report.InvalidColors = clock.InvalidColors()
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report.Generate(os.Stdout)
}
