package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-names/glyphs"
	"github.com/sheikhrachel/go-gol-names/sim"
	"github.com/sheikhrachel/go-gol-names/ui"
	"github.com/sheikhrachel/go-gol-names/utils"
)

func main() {
	// Defaults, then config.json (if present), then flags
	config, err := utils.ParseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("invalid configuration: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := sim.NewSession(config, glyphs.NewStamper(glyphs.Default()))
	initializeGame(config, session)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return session.Run(ctx)
	})
	if config.MetricsAddr != "" {
		eg.Go(func() error {
			return serveMetrics(ctx, config.MetricsAddr)
		})
	}
	eg.Go(func() error {
		// the frontend returning ends the run
		defer cancel()
		if !config.Interactive {
			return runHeadless(ctx, config, session)
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "[main] failed to create screen")
		}
		return ui.New(screen, session).Run(ctx)
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("game stopped: %+v", err)
	}
}
