package model

import (
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-names/rules"
)

// EngineOptions selects how generations are computed
type EngineOptions struct {
	Parallel   bool
	Bounded    bool
	MemoryPool bool
	Seed       uint64
}

// Engine computes generations and builds new grids. Step may be called
// from several goroutines; Randomize may not.
type Engine struct {
	opts EngineOptions
	pool *GridPool
	rng  *rand.Rand
}

// NewEngine creates an engine with the given options
func NewEngine(opts EngineOptions) *Engine {
	e := &Engine{
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, 0)),
	}
	if opts.MemoryPool {
		e.pool = NewGridPool()
	}
	return e
}

func (e *Engine) newGrid(rows, cols int) *Grid {
	if e.pool != nil {
		return e.pool.Get(rows, cols)
	}
	return NewGrid(rows, cols)
}

// Release hands a grid nobody else references back to the pool
func (e *Engine) Release(g *Grid) {
	GridToPool(g, e.pool)
}

// Step calculates the next generation. g is not modified.
func (e *Engine) Step(g *Grid) *Grid {
	switch {
	case e.opts.Bounded:
		return e.NextGenerationBounded(g)
	case e.opts.Parallel:
		return e.NextGenerationParallel(g)
	default:
		return e.NextGeneration(g)
	}
}

// NextGeneration calculates the next generation with a single full scan
func (e *Engine) NextGeneration(g *Grid) *Grid {
	next := e.newGrid(g.rows, g.cols)
	stepRows(g, next, 0, g.rows, 0, g.cols-1)
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing
func (e *Engine) NextGenerationParallel(g *Grid) *Grid {
	next := e.newGrid(g.rows, g.cols)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			stepRows(g, next, startRow, endRow, 0, g.cols-1)
			return nil
		})
	}

	// workers never fail; Wait is the join point
	_ = eg.Wait()

	return next
}

// NextGenerationBounded calculates next generation only in the active region
func (e *Engine) NextGenerationBounded(g *Grid) *Grid {
	next := e.newGrid(g.rows, g.cols)

	b := g.activeBounds()
	if !b.valid {
		return next
	}

	// Process only the active region + 1 margin
	minR := max(0, b.minR-1)
	maxR := min(g.rows-1, b.maxR+1)
	minC := max(0, b.minC-1)
	maxC := min(g.cols-1, b.maxC+1)

	stepRows(g, next, minR, maxR+1, minC, maxC)
	return next
}

// stepRows writes the next state of rows [fromRow, toRow) and columns
// [fromCol, toCol] of g into next, which must start out empty.
func stepRows(g, next *Grid, fromRow, toRow, fromCol, toCol int) {
	for r := fromRow; r < toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if rules.ApplyConwayRules(g.CountNeighbors(r, c), g.cells[r][c] == Alive) {
				next.cells[r][c] = Alive
			}
		}
	}
}

// Randomize builds a grid where each cell is alive with probability density
func (e *Engine) Randomize(rows, cols int, density float64) *Grid {
	density = min(max(density, 0), 1)

	g := e.newGrid(max(rows, 0), max(cols, 0))
	for r := range g.rows {
		for c := range g.cols {
			if e.rng.Float64() < density {
				g.cells[r][c] = Alive
			}
		}
	}
	return g
}
