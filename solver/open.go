package solver

import "github.com/octiline/octigrid/octierr"

// Opener constructs a Facade backend. Backends register themselves
// with Register under a solverStr tag at package init time.
type Opener func() Facade

var registry = map[string]Opener{}

// Register makes a backend available under tag. Called from backend
// packages' init functions (see solver/refsolver).
func Register(tag string, open Opener) {
	registry[tag] = open
}

// Open returns a fresh Facade for the given solverStr tag. An unknown
// tag returns a SolverIOError wrapping ErrSolverUnavailable, matching
// the pass-through, no-hidden-default contract implied by spec.md §6's
// solver variant list.
func Open(tag string) (Facade, error) {
	open, ok := registry[tag]
	if !ok {
		return nil, octierr.NewSolverIO("", &unknownBackendError{tag: tag})
	}

	return open(), nil
}

type unknownBackendError struct{ tag string }

func (e *unknownBackendError) Error() string {
	return "solver: no backend registered for tag " + e.tag
}

func (e *unknownBackendError) Unwrap() error { return octierr.ErrSolverUnavailable }
