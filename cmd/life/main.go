// Command life runs Conway's Game of Life in the terminal, or renders a
// single generation to PNG with -snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"lifekit/internal/app"
	"lifekit/internal/cli"
	"lifekit/internal/core"
	"lifekit/internal/ctxlog"
	"lifekit/internal/render"
	"lifekit/internal/term"
	"lifekit/internal/ui"
	_ "lifekit/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(out)
	cfg.Bind(fs)
	snapshot := fs.String("snapshot", "", "write the board to this PNG file instead of opening the terminal view")
	generations := fs.Int("generations", 0, "generations to advance before writing -snapshot")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return cli.Usage(err)
	}

	logger, err := cli.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return cli.Usage(err)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Usage(err)
	}
	sim, err := core.Lookup(cfg.Sim, cfg.SimConfig())
	if err != nil {
		return cli.Usage(err)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if *snapshot != "" {
		return writeSnapshot(ctx, out, sim, *generations, *snapshot)
	}
	return runTerminal(ctx, cfg, sim)
}

func runTerminal(ctx context.Context, cfg *app.Config, sim core.Sim) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	ctxlog.FromContext(ctx).Debug("starting terminal view", "size", sim.Size().W, "pattern", cfg.Pattern(), "interval", cfg.Period())
	return term.New(screen, app.NewLoop(sim, cfg.Period(), cfg.Seed)).Run(ctx)
}

func writeSnapshot(ctx context.Context, out io.Writer, sim core.Sim, generations int, path string) error {
	if generations < 0 {
		return cli.Usage(fmt.Errorf("generations must not be negative, got %d", generations))
	}
	for i := 0; i < generations; i++ {
		sim.Step()
	}
	size := sim.Size()
	img := render.Image(sim.Cells(), size.W, size.H, color.White, color.Black)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	ctxlog.FromContext(ctx).Info("snapshot written", slog.String("path", path), slog.Int("generations", generations))
	fmt.Fprintln(out, ui.StatusLine(sim, false))
	return nil
}
