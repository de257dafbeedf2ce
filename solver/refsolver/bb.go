package refsolver

import (
	"math"
	"time"

	"github.com/octiline/octigrid/solver"
)

// bbEngine holds all search state for one Solve call, mirroring
// tsp.bbEngine's split between static configuration/precomputes and
// mutable search state kept in one struct rather than closures.
type bbEngine struct {
	m *Model

	useDeadline bool
	deadline    time.Time
	steps       int

	// domain[i] holds every value column i may take during branching.
	// Binary columns get {0, 1}; bounded-integer columns get every
	// integer in [lb, ub]; continuous columns are left empty and
	// solved algebraically once every other column is fixed.
	domain [][]float64

	assigned []bool
	value    []float64

	bestVal   []float64
	bestObj   float64
	foundAny  bool
	timedOut  bool
}

func newBBEngine(m *Model) *bbEngine {
	e := &bbEngine{
		m:        m,
		domain:   make([][]float64, len(m.cols)),
		assigned: make([]bool, len(m.cols)),
		value:    make([]float64, len(m.cols)),
		bestVal:  make([]float64, len(m.cols)),
		bestObj:  math.Inf(1),
	}
	for i, c := range m.cols {
		switch c.kind {
		case solver.Binary:
			e.domain[i] = []float64{0, 1}
		case solver.Integer:
			domain := make([]float64, 0, int(c.ub-c.lb)+1)
			for v := c.lb; v <= c.ub+1e-9; v++ {
				domain = append(domain, v)
			}
			e.domain[i] = domain
		default: // Continuous: resolved in solveContinuous, not branched.
			e.domain[i] = nil
		}
	}

	return e
}

func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || e.steps&1023 != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true

		return true
	}

	return false
}

// rowBounds returns the interval the row's linear combination can
// possibly take given the currently assigned columns and the box
// bounds of every unassigned one.
func (e *bbEngine) rowBounds(r row) (lo, hi float64) {
	for _, t := range r.terms {
		if e.assigned[t.col] {
			v := e.value[t.col] * t.coef
			lo += v
			hi += v

			continue
		}
		c := e.m.cols[t.col]
		a, b := c.lb*t.coef, c.ub*t.coef
		if a > b {
			a, b = b, a
		}
		lo += a
		hi += b
	}

	return lo, hi
}

// rowFeasible reports whether r can still be satisfied given the
// current partial assignment (an admissible feasibility relaxation:
// it never rejects a row that some completion could still satisfy).
func (e *bbEngine) rowFeasible(r row) bool {
	lo, hi := e.rowBounds(r)
	switch r.sense {
	case solver.LE:
		return lo <= r.rhs+1e-9
	case solver.GE:
		return hi >= r.rhs-1e-9
	default: // EQ
		return lo <= r.rhs+1e-9 && hi >= r.rhs-1e-9
	}
}

// lowerBound returns an admissible bound on the objective's remaining
// contribution: for each unassigned column, its own best-case
// coefficient*bound term, ignoring coupling constraints. This is the
// corner-bound analogue of tsp.bbEngine's degree-1 relaxation: cheap,
// always valid, but only as tight as the columns' individual boxes.
func (e *bbEngine) lowerBound() float64 {
	total := 0.0
	for i, c := range e.m.cols {
		if e.assigned[i] {
			total += e.value[i] * c.obj

			continue
		}
		lo, hi := c.obj*c.lb, c.obj*c.ub
		if lo > hi {
			lo, hi = hi, lo
		}
		total += lo
	}

	return total
}

func (e *bbEngine) allRowsFeasible() bool {
	for _, r := range e.m.rows {
		if !e.rowFeasible(r) {
			return false
		}
	}

	return true
}

// nextBranchCol returns the index of the first unassigned
// branch-domain column, in column-index order, or -1 once every
// branch-domain column is fixed.
func (e *bbEngine) nextBranchCol() int {
	for i := range e.m.cols {
		if !e.assigned[i] && e.domain[i] != nil {
			return i
		}
	}

	return -1
}

func (e *bbEngine) dfs() {
	if e.deadlineCheck() {
		return
	}
	if !e.allRowsFeasible() {
		return
	}
	if e.lowerBound() >= e.bestObj-1e-9 && e.foundAny {
		return
	}

	col := e.nextBranchCol()
	if col == -1 {
		e.commitIfComplete()

		return
	}

	for _, v := range e.domain[col] {
		e.assigned[col] = true
		e.value[col] = v
		e.dfs()
		e.assigned[col] = false

		if e.timedOut {
			return
		}
	}
}

// commitIfComplete resolves any remaining continuous columns
// algebraically, checks full feasibility, and records a new
// incumbent if it improves on the best found so far.
func (e *bbEngine) commitIfComplete() {
	if !e.solveContinuous() {
		return
	}
	if !e.allRowsExactlyFeasible() {
		return
	}

	obj := 0.0
	for i, c := range e.m.cols {
		obj += e.value[i] * c.obj
	}
	if e.foundAny && obj >= e.bestObj-1e-9 {
		return
	}

	e.foundAny = true
	e.bestObj = obj
	copy(e.bestVal, e.value)
}

// solveContinuous fixes every continuous column whose row leaves it
// as the sole unassigned term, isolating it algebraically. Continuous
// columns with no such row are left at their lower bound: a documented
// simplification appropriate to a reference backend, since the model
// this package targets has no continuous columns in practice.
func (e *bbEngine) solveContinuous() bool {
	for i, c := range e.m.cols {
		if c.kind != solver.Continuous || e.assigned[i] {
			continue
		}
		e.assigned[i] = true
		e.value[i] = c.lb
	}
	for _, r := range e.m.rows {
		if r.sense != solver.EQ {
			continue
		}
		var freeCol = -1
		var freeCoef float64
		sum := 0.0
		for _, t := range r.terms {
			if e.m.cols[t.col].kind == solver.Continuous && freeCol == -1 {
				freeCol = t.col
				freeCoef = t.coef

				continue
			}
			sum += e.value[t.col] * t.coef
		}
		if freeCol == -1 || freeCoef == 0 {
			continue
		}
		v := (r.rhs - sum) / freeCoef
		c := e.m.cols[freeCol]
		if v < c.lb-1e-6 || v > c.ub+1e-6 {
			return false
		}
		e.value[freeCol] = v
	}

	return true
}

func (e *bbEngine) allRowsExactlyFeasible() bool {
	for _, r := range e.m.rows {
		lhs := 0.0
		for _, t := range r.terms {
			lhs += e.value[t.col] * t.coef
		}
		switch r.sense {
		case solver.LE:
			if lhs > r.rhs+1e-6 {
				return false
			}
		case solver.GE:
			if lhs < r.rhs-1e-6 {
				return false
			}
		default:
			if math.Abs(lhs-r.rhs) > 1e-6 {
				return false
			}
		}
	}

	return true
}

// Solve runs the branch-and-bound search to completion or until the
// model's configured time limit elapses.
func (m *Model) Solve() (solver.Status, error) {
	e := newBBEngine(m)
	if m.timeLimSeconds > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(time.Duration(m.timeLimSeconds * float64(time.Second)))
	}
	e.applyStarterOrder(m)

	e.dfs()

	if !e.foundAny {
		return solver.Infeasible, nil
	}

	m.values = make([]float64, len(m.cols))
	copy(m.values, e.bestVal)
	m.objVal = e.bestObj

	if e.timedOut {
		return solver.SubOptimalTimeout, nil
	}

	return solver.Optimal, nil
}

// applyStarterOrder reorders each branch domain so the warm-start
// value (if any) for that column is tried first, letting a good
// starter tighten bestObj early without changing which values are
// eventually explored.
func (e *bbEngine) applyStarterOrder(m *Model) {
	for i, c := range m.cols {
		if e.domain[i] == nil {
			continue
		}
		start, ok := m.starter[c.name]
		if !ok {
			continue
		}
		for j, v := range e.domain[i] {
			if v == start {
				e.domain[i][0], e.domain[i][j] = e.domain[i][j], e.domain[i][0]

				break
			}
		}
	}
}
