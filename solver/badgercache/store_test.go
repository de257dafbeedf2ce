package badgercache_test

import (
	"testing"

	"github.com/octiline/octigrid/solver/badgercache"
)

func TestStore_LoadMiss(t *testing.T) {
	dir := t.TempDir()
	s, err := badgercache.Open(dir, 0.1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, ok := s.Load("nope"); ok {
		t.Fatal("Load on empty store: expected ok=false")
	}
}

func TestStore_StoreThenLoad(t *testing.T) {
	dir := t.TempDir()
	s, err := badgercache.Open(dir, 0.1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	starter := map[string]float64{"x1": 1, "x2": 0}
	if err := s.Store("key1", starter, 3.5); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := s.Load("key1")
	if !ok {
		t.Fatal("Load: expected ok=true after Store")
	}
	if got["x1"] != 1 || got["x2"] != 0 {
		t.Fatalf("Load returned %v, want %v", got, starter)
	}
}

func TestStore_ThresholdRejectsWorseScore(t *testing.T) {
	dir := t.TempDir()
	s, err := badgercache.Open(dir, 0.1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Store("key1", map[string]float64{"x1": 1}, 1.0); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := s.Store("key1", map[string]float64{"x1": 0}, 5.0); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, _ := s.Load("key1")
	if got["x1"] != 1 {
		t.Fatalf("expected worse-score write to be rejected, got %v", got)
	}
}
