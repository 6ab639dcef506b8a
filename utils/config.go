package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	Seed                uint64        `json:"seed"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Interactive         bool          `json:"interactive"`
	Name                string        `json:"name"`
	TextStartRow        int           `json:"text_start_row"`
	TextStartCol        int           `json:"text_start_col"`
	MetricsAddr         string        `json:"metrics_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                30,
		FrameRate:           100 * time.Millisecond,
		RandomDensity:       0.3,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      false,
		MaxGenerations:      0, // unlimited
		StagnationThreshold: 5,
		Interactive:         true,
		TextStartRow:        2,
		TextStartCol:        2,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so command-line
// flags override file values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability of a live cell when randomizing")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute generations across all CPUs")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grids through a memory pool")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only evaluate the region holding live cells")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = unlimited)")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "run the interactive terminal UI")
	fs.StringVar(&c.Name, "name", c.Name, "text stamped onto the grid at startup")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "address to serve Prometheus metrics on (empty disables)")
}

// Validate reports settings the game cannot run with
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	return nil
}

// ParseConfig builds the configuration for a run: defaults, then the JSON
// file named by -config (a missing file is not an error), then any other
// flags in args
func ParseConfig(args []string) (Config, error) {
	var (
		config = DefaultConfig()
		boot   = flag.NewFlagSet("gol", flag.ContinueOnError)
		path   = boot.String("config", "config.json", "path to a JSON configuration file")
	)
	config.Bind(boot)
	if err := boot.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseConfig] failed to parse flags")
	}

	loaded, err := LoadConfig(*path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return loaded, err
		}
		loaded = DefaultConfig()
	}

	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.String("config", *path, "path to a JSON configuration file")
	loaded.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return loaded, errors.Wrap(err, "[ParseConfig] failed to parse flags")
	}

	return loaded, loaded.Validate()
}
