//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"lifekit/internal/app"
	"lifekit/internal/cli"
	"lifekit/internal/core"
	_ "lifekit/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	sim, err := core.Lookup(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	loop := app.NewLoop(sim, cfg.Period(), cfg.Seed)
	game := app.New(loop, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifekit - " + sim.Name())
	ebiten.SetWindowSize(w, h)
	slog.Info("starting GUI", "sim", sim.Name(), "size", sim.Size().W, "pattern", cfg.Pattern(), "interval", cfg.Period())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
