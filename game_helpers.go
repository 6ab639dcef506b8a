package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sheikhrachel/go-gol-names/model"
	"github.com/sheikhrachel/go-gol-names/sim"
	"github.com/sheikhrachel/go-gol-names/utils"
)

// initializeGame seeds the board from the configured name. Without a name
// the headless game starts from random cells and the interactive one empty.
func initializeGame(config utils.Config, session *sim.Session) {
	if config.Name == "" {
		if !config.Interactive {
			session.Randomize()
		}
		return
	}
	session.SetName(config.Name)
	session.PlaceName()
}

// displayGameInfo shows the initial game information
func displayGameInfo(ctx context.Context, config utils.Config, session *sim.Session) {
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		config.Cols, config.Rows, session.Status().Living)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(st sim.Status, config utils.Config, grid *model.Grid) {
	density := float64(st.Living) / float64(grid.Rows()*grid.Cols()) * 100

	status := "Active"
	if st.Stagnant {
		status = fmt.Sprintf("Stagnant (%d)", st.Generation)
	}
	if st.Living == 0 {
		status = "Extinct"
	}

	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", grid.BoundingBoxSize())
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		st.Generation, st.Living, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		st.Stats.GenerationsPerSecond, st.Stats.AveragePopulation, st.Stats.Runtime().Seconds())
	fmt.Println()
}

// runHeadless prints every generation to the terminal until the session
// stops or ctx is done
func runHeadless(ctx context.Context, config utils.Config, session *sim.Session) error {
	renderer := &model.TerminalRenderer{}

	displayGameInfo(ctx, config, session)
	session.Start()

	for {
		select {
		case <-ctx.Done():
			st := session.Status()
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				st.Generation, st.Stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				st.Stats.GenerationsPerSecond, st.Stats.AveragePopulation)
			return nil
		case <-session.Updates():
		}

		var running bool
		renderer.Clear()
		session.View(func(g *model.Grid, st sim.Status) {
			displayGameStatus(st, config, g)
			renderer.Display(g)
			running = st.Running
		})

		if !running {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}
	}
}

// serveMetrics exposes Prometheus metrics until ctx is done
func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "[serveMetrics] metrics HTTP server failed on %s", addr)
	}
	return nil
}
