package octierr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors every exported error type can be tested against with
// errors.Is, regardless of which concrete type wraps them.
var (
	// ErrInfeasible marks a solver INF result.
	ErrInfeasible = errors.New("octierr: infeasible")
	// ErrTimeLimit marks a solve aborted by its time limit before any
	// feasible solution was found.
	ErrTimeLimit = errors.New("octierr: time limit exceeded before a feasible solution was found")
	// ErrNoCandidates marks a comb node left with zero candidate sinks
	// by the configured cutoff/degree filter.
	ErrNoCandidates = errors.New("octierr: comb node has no candidate sinks")
	// ErrDecodeInvariant marks a decoder invariant violation: a walk
	// that failed to reach its target sink.
	ErrDecodeInvariant = errors.New("octierr: decoded path violates a structural invariant")
	// ErrSolverUnavailable marks a solverStr tag with no registered
	// backend.
	ErrSolverUnavailable = errors.New("octierr: no solver backend registered for tag")
)

// InfeasibleError reports that no feasible drawing exists for the given
// inputs, either because the solver returned INF or because a
// precondition (an empty candidate set) made the model trivially
// infeasible before the solver ever ran.
type InfeasibleError struct {
	// Hint is a human-readable explanation of why the model is
	// infeasible, e.g. naming the comb node that has no candidates.
	Hint string
	Err  error
}

func (e *InfeasibleError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("octilinear layout is infeasible: %v", e.Err)
	}

	return fmt.Sprintf("octilinear layout is infeasible: %s: %v", e.Hint, e.Err)
}

func (e *InfeasibleError) Unwrap() error { return e.Err }

// NewInfeasible wraps cause (typically ErrInfeasible, ErrTimeLimit, or
// ErrNoCandidates) with a human-readable hint.
func NewInfeasible(hint string, cause error) *InfeasibleError {
	return &InfeasibleError{Hint: hint, Err: cause}
}

// InternalError reports a programming-error-grade invariant violation:
// something the model builder or decoder should have guaranteed could
// not happen, but did. Callers should treat this as a bug report, not
// a recoverable condition.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("octigrid internal error during %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternal wraps cause with the name of the operation that
// discovered the violated invariant, and attaches a stack trace at the
// point the invariant was found — these errors are bug reports, and a
// captured trace is what turns one into an actionable one.
func NewInternal(op string, cause error) *InternalError {
	return &InternalError{Op: op, Err: errors.WithStack(cause)}
}

// SolverIOError reports a failure writing the model to disk (MPS/MST)
// or launching/communicating with a solver backend.
type SolverIOError struct {
	Path string
	Err  error
}

func (e *SolverIOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("solver i/o error: %v", e.Err)
	}

	return fmt.Sprintf("solver i/o error writing %s: %v", e.Path, e.Err)
}

func (e *SolverIOError) Unwrap() error { return e.Err }

// NewSolverIO wraps cause with the path being read or written, if any.
func NewSolverIO(path string, cause error) *SolverIOError {
	return &SolverIOError{Path: path, Err: cause}
}
