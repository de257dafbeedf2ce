package refsolver

import (
	"bufio"
	"fmt"
	"os"

	"github.com/octiline/octigrid/solver"
)

// WriteMPS writes the model in fixed free-format MPS to path, iterating
// m.cols and m.rows in stored append order throughout. Never sorting
// or map-iterating over names here is what makes two builds with an
// identical call sequence produce byte-identical files.
func (m *Model) WriteMPS(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("refsolver: WriteMPS: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "NAME          OCTIGRID")
	fmt.Fprintln(w, "ROWS")
	fmt.Fprintln(w, " N  COST")
	for _, r := range m.rows {
		fmt.Fprintf(w, " %s  %s\n", mpsSense(r.sense), r.name)
	}

	fmt.Fprintln(w, "COLUMNS")
	for ci, c := range m.cols {
		if c.kind != solver.Continuous {
			fmt.Fprintf(w, "    MARKER                 'MARKER'                 'INTORG'\n")
		}
		if c.obj != 0 {
			fmt.Fprintf(w, "    %-10s  COST      %.10g\n", c.name, c.obj)
		}
		for _, r := range m.rows {
			for _, t := range r.terms {
				if t.col == ci {
					fmt.Fprintf(w, "    %-10s  %-8s  %.10g\n", c.name, r.name, t.coef)
				}
			}
		}
		if c.kind != solver.Continuous {
			fmt.Fprintf(w, "    MARKER                 'MARKER'                 'INTEND'\n")
		}
	}

	fmt.Fprintln(w, "RHS")
	for _, r := range m.rows {
		if r.rhs != 0 {
			fmt.Fprintf(w, "    RHS       %-8s  %.10g\n", r.name, r.rhs)
		}
	}

	fmt.Fprintln(w, "BOUNDS")
	for _, c := range m.cols {
		switch {
		case c.kind == solver.Binary:
			fmt.Fprintf(w, " BV BND       %s\n", c.name)
		default:
			fmt.Fprintf(w, " LO BND       %s  %.10g\n", c.name, c.lb)
			fmt.Fprintf(w, " UP BND       %s  %.10g\n", c.name, c.ub)
		}
	}

	fmt.Fprintln(w, "ENDATA")

	return w.Flush()
}

func mpsSense(s solver.RowSense) string {
	switch s {
	case solver.LE:
		return "L"
	case solver.GE:
		return "G"
	default:
		return "E"
	}
}

// WriteMST writes starter as an MST warm-start file: one line per
// named column that appears both in starter and in the model, in
// column-index order so the file never depends on starter's own map
// iteration order.
func (m *Model) WriteMST(path string, starter map[string]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("refsolver: WriteMST: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "NAME          OCTIGRID-MST")
	for _, c := range m.cols {
		v, ok := starter[c.name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "    %-10s  %.10g\n", c.name, v)
	}
	fmt.Fprintln(w, "ENDATA")

	return w.Flush()
}
