// Package octierr defines the optimizer's error taxonomy: three
// exported error types, each wrapping an underlying cause, and a small
// set of sentinel errors callers can match against with errors.Is.
//
// InfeasibleError covers a solver INF result and the precondition case
// where a comb node is left with zero candidate sinks (spec 7:
// "the unique station constraint becomes 0 = 1"). InternalError covers
// programming-error-grade invariant violations such as a decoder walk
// that fails to terminate. SolverIOError covers MPS/MST write and
// solver-process failures.
package octierr
