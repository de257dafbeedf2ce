// Package config holds the optimizer's option bag (spec.md §6):
// maxGrDist, timeLim, cacheDir, cacheThreshold, numThreads, solverStr,
// path, noSolve, geoPensMap.
//
// Config is built with DefaultConfig plus functional Options, in the
// teacher's builderConfig style, or loaded from a TOML file for
// batch/regression use. Loading validates ranges and never touches the
// network or a solver.
package config
