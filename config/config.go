package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for out-of-range option values (spec.md §6/§4.H:
// range validation returns a Precondition-flavoured error without
// touching the network or a solver).
var (
	ErrBadMaxGrDist      = errors.New("config: maxGrDist must be positive")
	ErrBadCacheThreshold = errors.New("config: cacheThreshold must be non-negative")
	ErrBadNumThreads     = errors.New("config: numThreads must be non-negative")
)

// GeoPenKey identifies one geo-penalty override: a base-grid edge id
// and the compass direction it applies to.
type GeoPenKey struct {
	EdgeID    int
	Direction int
}

// Config is the optimizer's option bag (spec.md §6). It is built with
// DefaultConfig plus functional Options, or loaded from a TOML file
// via Load.
type Config struct {
	// MaxGrDist is the candidate-sink cutoff, in grid cells.
	MaxGrDist float64
	// TimeLimSeconds bounds solver wall-clock time. <= 0 means unlimited.
	TimeLimSeconds float64
	// CacheDir roots the warm-start/partial-solution cache; empty
	// disables caching.
	CacheDir string
	// CacheThreshold gates cache writes: a solution is cached only if
	// its objective is within this margin of the best score seen.
	CacheThreshold float64
	// NumThreads bounds solver-internal parallelism. 0 means the
	// solver's own default.
	NumThreads int
	// SolverStr selects a solver façade backend by tag ("ref" for the
	// bundled reference backend).
	SolverStr string
	// Path is the output MPS/MST file path prefix; empty writes no
	// model files.
	Path string
	// NoSolve builds the model (and, if Path is set, writes it) but
	// skips invoking the solver.
	NoSolve bool
	// GeoPensMap overrides the default per-edge/direction geographic
	// penalty, keyed by GeoPenKey.
	GeoPensMap map[GeoPenKey]float64
}

// Deterministic defaults, named rather than inlined.
const (
	defaultMaxGrDist      = 3.0
	defaultTimeLimSeconds = 30.0
	defaultCacheThreshold = 0.0
	defaultNumThreads     = 1
	defaultSolverStr      = "ref"
)

// Option mutates a Config under construction. Options are applied in
// the order given; later options override earlier ones.
type Option func(*Config)

// DefaultConfig returns the option bag's deterministic defaults, then
// applies opts in order.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		MaxGrDist:      defaultMaxGrDist,
		TimeLimSeconds: defaultTimeLimSeconds,
		CacheThreshold: defaultCacheThreshold,
		NumThreads:     defaultNumThreads,
		SolverStr:      defaultSolverStr,
		GeoPensMap:     make(map[GeoPenKey]float64),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxGrDist sets the candidate-sink cutoff.
func WithMaxGrDist(v float64) Option { return func(c *Config) { c.MaxGrDist = v } }

// WithTimeLim sets the solver wall-clock time limit, in seconds.
func WithTimeLim(seconds float64) Option { return func(c *Config) { c.TimeLimSeconds = seconds } }

// WithCacheDir sets the warm-start cache root directory.
func WithCacheDir(dir string) Option { return func(c *Config) { c.CacheDir = dir } }

// WithCacheThreshold sets the cache-write objective margin.
func WithCacheThreshold(v float64) Option { return func(c *Config) { c.CacheThreshold = v } }

// WithNumThreads sets the solver's internal thread budget.
func WithNumThreads(n int) Option { return func(c *Config) { c.NumThreads = n } }

// WithSolverStr selects a solver façade backend by tag.
func WithSolverStr(tag string) Option { return func(c *Config) { c.SolverStr = tag } }

// WithPath sets the output MPS/MST file path prefix.
func WithPath(p string) Option { return func(c *Config) { c.Path = p } }

// WithNoSolve builds the model without invoking the solver.
func WithNoSolve(v bool) Option { return func(c *Config) { c.NoSolve = v } }

// WithGeoPens merges overrides into the config's geo-penalty map,
// last-write-wins for duplicate keys.
func WithGeoPens(overrides map[GeoPenKey]float64) Option {
	return func(c *Config) {
		for k, v := range overrides {
			c.GeoPensMap[k] = v
		}
	}
}

// Validate checks Config's numeric ranges (spec.md §4.H): maxGrDist >
// 0, cacheThreshold >= 0, numThreads >= 0 (0 means solver default).
// timeLim has no lower bound to reject: spec.md documents <= 0 as
// "unlimited", and solver/refsolver's Solve already treats it that way.
func (c Config) Validate() error {
	switch {
	case c.MaxGrDist <= 0:
		return fmt.Errorf("%w: got %v", ErrBadMaxGrDist, c.MaxGrDist)
	case c.CacheThreshold < 0:
		return fmt.Errorf("%w: got %v", ErrBadCacheThreshold, c.CacheThreshold)
	case c.NumThreads < 0:
		return fmt.Errorf("%w: got %v", ErrBadNumThreads, c.NumThreads)
	default:
		return nil
	}
}
