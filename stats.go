package octigrid

import "time"

// Stats reports the shape and outcome of one Optimize call, the
// {score, cols, rows, time, optimal} tuple spec.md §6 requires.
type Stats struct {
	// RunID identifies this Optimize call in logs, generated fresh per
	// call so concurrent runs' log lines (and cache-store failures) can
	// be told apart.
	RunID string
	// Score is the solved objective value, or 0 if NoSolve was set.
	Score float64
	// Cols and Rows are the final model's column/row counts.
	Cols int
	Rows int
	// Time is how long Solve took (zero if NoSolve was set).
	Time time.Duration
	// Optimal reports whether the solver proved optimality within its
	// time limit; false for a suboptimal-but-feasible result and
	// meaningless (always false) when NoSolve was set.
	Optimal bool
}
