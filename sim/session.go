// Package sim drives a grid through generations on a fixed schedule and
// holds the state a frontend edits: the board, the running flag and the
// name being typed.
package sim

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/sheikhrachel/go-gol-names/glyphs"
	"github.com/sheikhrachel/go-gol-names/model"
	"github.com/sheikhrachel/go-gol-names/utils"
)

// Status describes the session at one point in time
type Status struct {
	Generation int
	Running    bool
	Name       string
	Living     int
	Stagnant   bool
	Stats      utils.Stats
}

// Session owns the current grid. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	cfg     utils.Config
	engine  *model.Engine
	stamper *glyphs.Stamper

	grid          *model.Grid
	running       bool
	name          []rune
	generation    int
	stagnantCount int
	history       model.History
	stats         *utils.Stats
	lastTick      time.Time

	updates chan struct{}
}

// NewSession creates a stopped session with an empty grid. A zero seed in
// cfg is replaced with one taken from the clock.
func NewSession(cfg utils.Config, stamper *glyphs.Stamper) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if stamper == nil {
		stamper = glyphs.NewStamper(nil)
	}

	return &Session{
		cfg: cfg,
		engine: model.NewEngine(model.EngineOptions{
			Parallel:   cfg.UseParallel,
			Bounded:    cfg.UseBoundedGrid,
			MemoryPool: cfg.UseMemoryPool,
			Seed:       seed,
		}),
		stamper: stamper,
		grid:    model.NewGrid(cfg.Rows, cfg.Cols),
		stats:   utils.NewStats(),
		updates: make(chan struct{}, 1),
	}
}

// Updates is signalled after every state change. Signals coalesce.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

func (s *Session) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// replace swaps in a new grid and recycles the old one. Callers hold s.mu.
func (s *Session) replace(g *model.Grid) {
	old := s.grid
	s.grid = g
	if old != g {
		s.engine.Release(old)
	}
	population.Set(float64(g.CountLivingCells()))
}

// restart forgets generation bookkeeping after the grid is swapped
// for an unrelated one. Callers hold s.mu.
func (s *Session) restart() {
	s.generation = 0
	s.stagnantCount = 0
	s.history.Reset()
}

// Start sets the running flag
func (s *Session) Start() {
	s.setRunning(true)
}

// Stop clears the running flag. A step already in progress completes.
func (s *Session) Stop() {
	s.setRunning(false)
}

// ToggleRunning flips the running flag and returns the new value
func (s *Session) ToggleRunning() bool {
	s.mu.Lock()
	running := !s.running
	s.setRunningLocked(running)
	s.mu.Unlock()

	s.notify()
	return running
}

func (s *Session) setRunning(running bool) {
	s.mu.Lock()
	s.setRunningLocked(running)
	s.mu.Unlock()
	s.notify()
}

func (s *Session) setRunningLocked(running bool) {
	if running && !s.running {
		s.lastTick = time.Now()
	}
	s.running = running
}

// Running reports whether generations are being computed
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Tick computes one generation if the session is running and reports
// whether it did. Reaching MaxGenerations stops the session.
func (s *Session) Tick() bool {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return false
	}

	start := time.Now()
	next := s.engine.Step(s.grid)
	stepDuration.Observe(time.Since(start).Seconds())

	if s.history.IsStagnant(next) {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}
	s.history.Push(next)

	s.replace(next)
	s.generation++
	generationsTotal.Inc()

	now := time.Now()
	s.stats.Update(s.generation, next.CountLivingCells(), now.Sub(s.lastTick))
	s.lastTick = now

	if s.cfg.MaxGenerations > 0 && s.generation >= s.cfg.MaxGenerations {
		s.running = false
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// Run ticks every FrameRate until ctx is done. The running flag is checked
// before each tick, so Stop takes effect on the next one.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// ToggleCell flips the cell at (i, k). Out of bounds is ignored.
func (s *Session) ToggleCell(i, k int) {
	s.mu.Lock()
	s.replace(s.grid.Toggle(i, k))
	s.mu.Unlock()
	s.notify()
}

// Clear empties the grid and stops the session
func (s *Session) Clear() {
	s.mu.Lock()
	s.replace(model.NewGrid(s.cfg.Rows, s.cfg.Cols))
	s.running = false
	s.restart()
	s.mu.Unlock()
	s.notify()
}

// Randomize replaces the grid with a random one at the configured density
func (s *Session) Randomize() {
	s.mu.Lock()
	s.replace(s.engine.Randomize(s.cfg.Rows, s.cfg.Cols, s.cfg.RandomDensity))
	s.restart()
	s.mu.Unlock()
	s.notify()
}

// SetName replaces the name buffer
func (s *Session) SetName(name string) {
	s.mu.Lock()
	s.name = []rune(strings.ToUpper(name))
	s.mu.Unlock()
	s.notify()
}

// AppendName adds a character to the name buffer
func (s *Session) AppendName(r rune) {
	s.mu.Lock()
	s.name = append(s.name, unicode.ToUpper(r))
	s.mu.Unlock()
	s.notify()
}

// Backspace removes the last character of the name buffer
func (s *Session) Backspace() {
	s.mu.Lock()
	if len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}
	s.mu.Unlock()
	s.notify()
}

// PlaceName stamps the name buffer onto a fresh grid, replacing the
// current one, and empties the buffer
func (s *Session) PlaceName() {
	s.mu.Lock()
	grid := s.stamper.PlaceText(
		model.NewGrid(s.cfg.Rows, s.cfg.Cols),
		string(s.name),
		s.cfg.TextStartRow,
		s.cfg.TextStartCol,
	)
	s.replace(grid)
	s.restart()
	s.name = s.name[:0]
	s.mu.Unlock()

	textStamps.Inc()
	s.notify()
}

// View calls fn with the current grid and status while holding the
// session lock. fn must not keep g after it returns.
func (s *Session) View(fn func(g *model.Grid, st Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid, s.status())
}

// Snapshot returns a copy of the current grid that is safe to keep
func (s *Session) Snapshot() *model.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Status returns the current session status
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

func (s *Session) status() Status {
	return Status{
		Generation: s.generation,
		Running:    s.running,
		Name:       string(s.name),
		Living:     s.grid.CountLivingCells(),
		Stagnant:   s.cfg.StagnationThreshold > 0 && s.stagnantCount >= s.cfg.StagnationThreshold,
		Stats:      *s.stats,
	}
}
