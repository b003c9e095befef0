package grid

import "testing"

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}

	// Clear intersection
	if !Overlaps(a, Rect{X: 2, Y: 2, W: 4, H: 4}) {
		t.Error("intersecting rects should overlap")
	}

	// Containment
	if !Overlaps(a, Rect{X: 1, Y: 1, W: 2, H: 2}) {
		t.Error("contained rect should overlap")
	}

	// Identical
	if !Overlaps(a, a) {
		t.Error("identical rects should overlap")
	}

	// Fully separate
	if Overlaps(a, Rect{X: 8, Y: 8, W: 2, H: 2}) {
		t.Error("separate rects should not overlap")
	}
}

func TestOverlapsSharedEdge(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}

	// Touching on the right edge: a ends at x=4, b starts at x=4
	if Overlaps(a, Rect{X: 4, Y: 0, W: 4, H: 4}) {
		t.Error("rects sharing a vertical edge should not overlap")
	}

	// Touching on the bottom edge
	if Overlaps(a, Rect{X: 0, Y: 4, W: 4, H: 4}) {
		t.Error("rects sharing a horizontal edge should not overlap")
	}

	// Touching at a corner only
	if Overlaps(a, Rect{X: 4, Y: 4, W: 2, H: 2}) {
		t.Error("rects sharing only a corner should not overlap")
	}
}

func TestOverlapsCommutes(t *testing.T) {
	a := Rect{X: 1, Y: 2, W: 3, H: 2}
	b := Rect{X: 2, Y: 3, W: 5, H: 1}
	if Overlaps(a, b) != Overlaps(b, a) {
		t.Error("Overlaps should be symmetric")
	}
}

func TestOverlappingPairs(t *testing.T) {
	widgets := []Widget{
		{ID: "a", Rect: Rect{X: 0, Y: 0, W: 6, H: 4}},
		{ID: "b", Rect: Rect{X: 6, Y: 0, W: 6, H: 4}},
		{ID: "c", Rect: Rect{X: 4, Y: 2, W: 4, H: 4}},
	}
	pairs := OverlappingPairs(widgets)
	if len(pairs) != 2 {
		t.Fatalf("OverlappingPairs = %v, want 2 pairs", pairs)
	}
	if pairs[0] != [2]string{"a", "c"} || pairs[1] != [2]string{"b", "c"} {
		t.Errorf("OverlappingPairs = %v, want [a c] and [b c]", pairs)
	}
}

func TestOverlappingPairsClean(t *testing.T) {
	widgets := []Widget{
		{ID: "a", Rect: Rect{X: 0, Y: 0, W: 6, H: 4}},
		{ID: "b", Rect: Rect{X: 6, Y: 0, W: 6, H: 4}},
	}
	if pairs := OverlappingPairs(widgets); pairs != nil {
		t.Errorf("OverlappingPairs = %v, want nil for a clean layout", pairs)
	}
}

func TestSnapToGrid(t *testing.T) {
	got := SnapToGrid(1.4, 2.6, 3.2, 0.9, 1)
	want := Rect{X: 1, Y: 3, W: 3, H: 1}
	if got != want {
		t.Errorf("SnapToGrid(1.4, 2.6, 3.2, 0.9, 1) = %+v, want %+v", got, want)
	}
}

func TestSnapToGridHalfUp(t *testing.T) {
	got := SnapToGrid(0.5, 1.5, 2.5, 2.5, 1)
	want := Rect{X: 1, Y: 2, W: 3, H: 3}
	if got != want {
		t.Errorf("SnapToGrid half values = %+v, want %+v", got, want)
	}
}

func TestSnapToGridCoarse(t *testing.T) {
	got := SnapToGrid(2.9, 7.0, 4.1, 5.9, 3)
	want := Rect{X: 3, Y: 6, W: 3, H: 6}
	if got != want {
		t.Errorf("SnapToGrid(gridSize 3) = %+v, want %+v", got, want)
	}
}

func TestSnapToGridMinimumSize(t *testing.T) {
	// Both dimensions round to 0; they must come back as 1
	got := SnapToGrid(0, 0, 0.2, 0.4, 1)
	if got.W != 1 || got.H != 1 {
		t.Errorf("SnapToGrid tiny size = %+v, want w=1 h=1", got)
	}
}
