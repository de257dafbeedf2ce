package obslog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/octiline/octigrid/obslog"
)

// TestPhase_WritesAtInfoLevel checks that Phase emits a line containing
// the phase name and its fields.
func TestPhase_WritesAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := obslog.New(&buf, log.InfoLevel)

	lg.Phase("grid built", "sinks", 12)

	out := buf.String()
	if !strings.Contains(out, "grid built") || !strings.Contains(out, "sinks") {
		t.Errorf("Phase output = %q; want it to mention name and fields", out)
	}
}

// TestCounts_SuppressedAboveDebug checks that Counts is silent when the
// logger is configured above Debug.
func TestCounts_SuppressedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	lg := obslog.New(&buf, log.InfoLevel)

	lg.Counts("constraint rows", "family", "flow", "rows", 40)

	if buf.Len() != 0 {
		t.Errorf("Counts wrote %q at Info level; want silence", buf.String())
	}
}

// TestNewNop_Silent checks that calls on the no-op logger, which writes
// to io.Discard, complete without panicking.
func TestNewNop_Silent(t *testing.T) {
	lg := obslog.NewNop()
	lg.Phase("solve started")
	lg.Error("solve failed", nil)
}
