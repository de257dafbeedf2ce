// SPDX-License-Identifier: MIT
// Package matrix - prepared Dense construction and bulk loading.
//
// NewPreparedDense and Fill exist for distance-matrix builders (APSP
// callers such as basegraph's sink-hop precompute) that need to seed a
// Dense with +Inf "no path" sentinels ahead of running FloydWarshall,
// something the strict-by-default NewDense/Set numeric policy forbids.
package matrix

// NewPreparedDense builds a zero-initialized r×c Dense the same as
// NewDense, then applies opts to its numeric policy before any values
// are written. WithAllowInfDistances is the option relevant here: it
// lets +Inf pass through Set/Fill while NaN and -Inf remain rejected.
//
// Complexity: O(r*c).
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = o.validateNaNInf
	m.allowInfDistances = o.allowInfDistances

	return m, nil
}

// Fill overwrites m's entire buffer in row-major order from data,
// honoring m's numeric policy exactly as Set does per element. This is
// the bulk-loading counterpart to Set, used to seed distance-matrix
// fixtures without one Set call per cell.
//
// Complexity: O(r*c).
func (m *Dense) Fill(data []float64) error {
	if len(data) != m.r*m.c {
		return ErrDimensionMismatch
	}
	if m.validateNaNInf {
		for i, v := range data {
			if m.rejects(v) {
				return denseErrorf(ctxSet, i/m.c, i%m.c, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return nil
}
