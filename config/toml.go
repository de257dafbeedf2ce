package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// tomlConfig mirrors Config's scalar fields with TOML struct tags
// matching the field names in snake_case, the convention
// matzehuels-stacktower's toml.Unmarshal callers use for lockfile-style
// structs. GeoPensMap is intentionally absent: its textual form is
// loaded separately by the pens package (spec.md §4.L) and merged in
// with WithGeoPens.
type tomlConfig struct {
	MaxGrDist      float64 `toml:"max_gr_dist"`
	TimeLimSeconds float64 `toml:"time_lim_seconds"`
	CacheDir       string  `toml:"cache_dir"`
	CacheThreshold float64 `toml:"cache_threshold"`
	NumThreads     int     `toml:"num_threads"`
	SolverStr      string  `toml:"solver_str"`
	Path           string  `toml:"path"`
	NoSolve        bool    `toml:"no_solve"`
}

// Load reads a TOML file at path, applies it on top of DefaultConfig's
// zero-value-safe defaults (an absent key keeps its default), then
// validates the result.
func Load(path string) (Config, error) {
	tc := tomlConfig{
		MaxGrDist:      defaultMaxGrDist,
		TimeLimSeconds: defaultTimeLimSeconds,
		CacheThreshold: defaultCacheThreshold,
		NumThreads:     defaultNumThreads,
		SolverStr:      defaultSolverStr,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &tc); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig(
		WithMaxGrDist(tc.MaxGrDist),
		WithTimeLim(tc.TimeLimSeconds),
		WithCacheDir(tc.CacheDir),
		WithCacheThreshold(tc.CacheThreshold),
		WithNumThreads(tc.NumThreads),
		WithSolverStr(tc.SolverStr),
		WithPath(tc.Path),
		WithNoSolve(tc.NoSolve),
	)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
