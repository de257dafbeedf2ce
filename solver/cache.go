package solver

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// Cache is the optional warm-start/partial-solution cache contract
// (spec.md §6's cacheDir/cacheThreshold pass-through, given concrete
// meaning by SPEC_FULL.md §4.K). Absence of a cache is always
// supported: a caller that never constructs one simply skips Load and
// Store, which is the default path.
type Cache interface {
	Load(key string) (starter map[string]float64, ok bool)
	Store(key string, starter map[string]float64, score float64) error
}

// CacheKey derives a deterministic cache key from a model's column and
// row names, sorted before hashing so the key never depends on the
// order Build happened to emit them in.
func CacheKey(colNames, rowNames []string) string {
	cols := append([]string(nil), colNames...)
	rows := append([]string(nil), rowNames...)
	sort.Strings(cols)
	sort.Strings(rows)

	h := sha256.New()
	for _, c := range cols {
		h.Write([]byte(c))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	for _, r := range rows {
		h.Write([]byte(r))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
