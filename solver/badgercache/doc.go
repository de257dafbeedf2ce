// Package badgercache is the bundled on-disk solver.Cache
// implementation (spec.md §6's cacheDir, given concrete meaning by
// SPEC_FULL.md §4.K): an embedded key-value store rooted at cacheDir,
// gated by cacheThreshold on writes.
package badgercache
