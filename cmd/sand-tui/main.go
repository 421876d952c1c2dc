package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"sandca/internal/app"
	"sandca/internal/core"
	"sandca/internal/logging"
	_ "sandca/internal/sims/sand"
	"sandca/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sand-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		return err
	}
	if cfg.DumpConfig {
		return app.WriteSettings(os.Stdout, settings)
	}
	// The terminal is the display, so logs only go to a file.
	if settings.Log.File == "" {
		settings.Log.Level = "error"
	}
	logger, err := logging.New(logging.Options{
		Level:      settings.Log.Level,
		File:       settings.Log.File,
		ShowCaller: settings.Log.Caller,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	factory, err := core.Lookup(settings.Sim)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	fit := tui.GridSizeFor(cols, rows)
	options := settings.Options
	if _, ok := options["w"]; !ok {
		options["w"] = strconv.Itoa(fit.W)
	}
	if _, ok := options["h"]; !ok {
		options["h"] = strconv.Itoa(fit.H)
	}

	sim := factory(options)
	sim.Reset(settings.Seed)
	logger.Sugar().Infow("starting", "sim", sim.Name(), "options", settings.OptionKeys(), "w", sim.Size().W, "h", sim.Size().H, "tps", settings.TPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tui.New(screen, sim, settings.Seed, settings.TPS).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
