package geo

import "testing"

func TestDist(t *testing.T) {
	if d := Dist(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Fatalf("Dist() = %v, want 5", d)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(Point{X: 1, Y: 1}, 10)
	cx, cy := tr.Cell(Point{X: 11, Y: 21})
	if cx != 1 || cy != 2 {
		t.Fatalf("Cell() = (%d,%d), want (1,2)", cx, cy)
	}
	p := tr.World(cx, cy)
	if p.X != 11 || p.Y != 21 {
		t.Fatalf("World() = %+v, want (11,21)", p)
	}
}

func TestWithinCutoff(t *testing.T) {
	if !WithinCutoff(9, 10, 1.0) {
		t.Fatalf("expected 9 < 10*1.0 to be within cutoff")
	}
	if WithinCutoff(10, 10, 1.0) {
		t.Fatalf("expected 10 < 10*1.0 to be false (strict inequality)")
	}
}

func TestFromPoints(t *testing.T) {
	b := FromPoints([]Point{{0, 0}, {5, -2}, {3, 7}})
	want := Box{MinX: 0, MinY: -2, MaxX: 5, MaxY: 7}
	if b != want {
		t.Fatalf("FromPoints() = %+v, want %+v", b, want)
	}
}
