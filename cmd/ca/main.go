//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sandca/internal/app"
	"sandca/internal/core"
	"sandca/internal/logging"
	_ "sandca/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DumpConfig {
		if err := app.WriteSettings(os.Stdout, settings); err != nil {
			log.Fatal(err)
		}
		return
	}
	logger, err := logging.New(logging.Options{
		Level:      settings.Log.Level,
		File:       settings.Log.File,
		ShowCaller: settings.Log.Caller,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	factory, err := core.Lookup(settings.Sim)
	if err != nil {
		logger.Sugar().Fatal(err)
	}

	sim := factory(settings.Options)
	sim.Reset(settings.Seed)

	game := app.New(sim, settings.Scale, settings.Seed)
	size := sim.Size()
	logger.Sugar().Infow("starting", "sim", sim.Name(), "options", settings.OptionKeys(), "w", size.W, "h", size.H, "tps", settings.TPS)

	ebiten.SetWindowTitle("sandca - " + sim.Name())
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(size.W*settings.Scale+app.HUDWidth, size.H*settings.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Sugar().Fatal(err)
	}
}
