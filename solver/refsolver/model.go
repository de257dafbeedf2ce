package refsolver

import (
	"fmt"
	"sort"

	"github.com/octiline/octigrid/solver"
)

type column struct {
	name string
	kind solver.ColKind
	obj  float64
	lb   float64
	ub   float64
}

type term struct {
	col  int
	coef float64
}

type row struct {
	name  string
	sense solver.RowSense
	rhs   float64
	terms []term
}

// Model is the in-memory column/row store and solver.Facade
// implementation. Columns and rows are appended in caller order and
// never reordered, so WriteMPS output is deterministic across runs
// with identical build sequences (spec.md §8 invariant 8).
type Model struct {
	cols      []column
	rows      []row
	colByName map[string]int
	rowByName map[string]int

	starter map[string]float64

	timeLimSeconds float64
	cacheDir       string
	cacheThreshold float64
	numThreads     int

	values  []float64
	objVal  float64
	updated bool
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{
		colByName: make(map[string]int),
		rowByName: make(map[string]int),
		starter:   make(map[string]float64),
	}
}

func (m *Model) AddCol(name string, kind solver.ColKind, objCoef, lb, ub float64) (int, error) {
	if _, exists := m.colByName[name]; exists {
		return -1, fmt.Errorf("refsolver: duplicate column name %q", name)
	}
	idx := len(m.cols)
	m.cols = append(m.cols, column{name: name, kind: kind, obj: objCoef, lb: lb, ub: ub})
	m.colByName[name] = idx
	m.updated = false

	return idx, nil
}

func (m *Model) AddRow(name string, sense solver.RowSense, rhs float64) (int, error) {
	if _, exists := m.rowByName[name]; exists {
		return -1, fmt.Errorf("refsolver: duplicate row name %q", name)
	}
	idx := len(m.rows)
	m.rows = append(m.rows, row{name: name, sense: sense, rhs: rhs})
	m.rowByName[name] = idx
	m.updated = false

	return idx, nil
}

func (m *Model) AddColToRow(rowIdx, colIdx int, coef float64) error {
	if rowIdx < 0 || rowIdx >= len(m.rows) {
		return fmt.Errorf("refsolver: row index %d out of range", rowIdx)
	}
	if colIdx < 0 || colIdx >= len(m.cols) {
		return fmt.Errorf("refsolver: col index %d out of range", colIdx)
	}
	m.rows[rowIdx].terms = append(m.rows[rowIdx].terms, term{col: colIdx, coef: coef})
	m.updated = false

	return nil
}

func (m *Model) GetVarByName(name string) (int, bool) {
	idx, ok := m.colByName[name]

	return idx, ok
}

// Update finalizes the model. Rows are left in insertion order (no
// reordering, no dedup): the DFS engine and MPS writer both iterate
// m.rows/m.cols directly, so there is nothing to compile ahead of
// time. Update exists to satisfy solver.Facade; it only records that
// the model was updated.
func (m *Model) Update() error {
	m.updated = true

	return nil
}

func (m *Model) SetStarter(values map[string]float64) error {
	for name, v := range values {
		if _, ok := m.colByName[name]; !ok {
			return fmt.Errorf("refsolver: SetStarter: unknown column %q", name)
		}
		m.starter[name] = v
	}

	return nil
}

func (m *Model) SetTimeLim(seconds float64)  { m.timeLimSeconds = seconds }
func (m *Model) SetCacheDir(dir string)      { m.cacheDir = dir }
func (m *Model) SetCacheThreshold(v float64) { m.cacheThreshold = v }
func (m *Model) SetNumThreads(n int)         { m.numThreads = n }
func (m *Model) NumCols() int                { return len(m.cols) }
func (m *Model) NumRows() int                { return len(m.rows) }

func (m *Model) GetVarVal(col int) (float64, error) {
	if col < 0 || col >= len(m.values) {
		return 0, fmt.Errorf("refsolver: GetVarVal: no solution for column %d", col)
	}

	return m.values[col], nil
}

func (m *Model) GetObjVal() (float64, error) {
	if m.values == nil {
		return 0, fmt.Errorf("refsolver: GetObjVal: no solution available")
	}

	return m.objVal, nil
}

// GetColObj returns the objective coefficient col was registered
// with, for callers (tests, diagnostics) that need to inspect a
// built model without solving it.
func (m *Model) GetColObj(col int) (float64, error) {
	if col < 0 || col >= len(m.cols) {
		return 0, fmt.Errorf("refsolver: GetColObj: column %d out of range", col)
	}

	return m.cols[col].obj, nil
}

// sortedColNames returns every column name in ascending order, used
// wherever a caller-visible ordering must not depend on colByName's
// map iteration order.
func (m *Model) sortedColNames() []string {
	names := make([]string, 0, len(m.colByName))
	for name := range m.colByName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ColNames returns every column name in append order, for callers
// (e.g. solver.CacheKey) that need the model's full name set but don't
// care about column index alignment.
func (m *Model) ColNames() []string {
	names := make([]string, len(m.cols))
	for i, c := range m.cols {
		names[i] = c.name
	}

	return names
}

// RowNames returns every row name in append order.
func (m *Model) RowNames() []string {
	names := make([]string, len(m.rows))
	for i, r := range m.rows {
		names[i] = r.name
	}

	return names
}
