package grid

import (
	"errors"
	"testing"
)

func TestFindAvailablePositionEmpty(t *testing.T) {
	p, err := FindAvailablePosition(nil, 6, 4, 12)
	if err != nil {
		t.Fatalf("FindAvailablePosition() error: %v", err)
	}
	want := Rect{X: 0, Y: 0, W: 6, H: 4}
	if p.Rect != want {
		t.Errorf("position = %+v, want %+v", p.Rect, want)
	}
	if p.Exhausted {
		t.Error("empty grid should not exhaust the search")
	}
}

func TestFindAvailablePositionBelowFullRow(t *testing.T) {
	existing := []Rect{{X: 0, Y: 0, W: 12, H: 4}}
	p, err := FindAvailablePosition(existing, 6, 4, 12)
	if err != nil {
		t.Fatalf("FindAvailablePosition() error: %v", err)
	}
	want := Rect{X: 0, Y: 4, W: 6, H: 4}
	if p.Rect != want {
		t.Errorf("position = %+v, want %+v", p.Rect, want)
	}
}

func TestFindAvailablePositionFillsRowFirst(t *testing.T) {
	// Half the top row is taken; the other half fits the new widget,
	// so row-major order picks it over the empty row below.
	existing := []Rect{{X: 0, Y: 0, W: 6, H: 4}}
	p, err := FindAvailablePosition(existing, 6, 4, 12)
	if err != nil {
		t.Fatalf("FindAvailablePosition() error: %v", err)
	}
	want := Rect{X: 6, Y: 0, W: 6, H: 4}
	if p.Rect != want {
		t.Errorf("position = %+v, want %+v", p.Rect, want)
	}
}

func TestFindAvailablePositionGap(t *testing.T) {
	// A 2-wide gap at x=4 is too narrow for a 3-wide widget; it must go
	// under the blocks, not into the gap.
	existing := []Rect{
		{X: 0, Y: 0, W: 4, H: 2},
		{X: 6, Y: 0, W: 6, H: 2},
	}
	p, err := FindAvailablePosition(existing, 3, 2, 12)
	if err != nil {
		t.Fatalf("FindAvailablePosition() error: %v", err)
	}
	want := Rect{X: 0, Y: 2, W: 3, H: 2}
	if p.Rect != want {
		t.Errorf("position = %+v, want %+v", p.Rect, want)
	}

	// A 2-wide widget does fit the gap
	p, err = FindAvailablePosition(existing, 2, 2, 12)
	if err != nil {
		t.Fatalf("FindAvailablePosition() error: %v", err)
	}
	want = Rect{X: 4, Y: 0, W: 2, H: 2}
	if p.Rect != want {
		t.Errorf("position = %+v, want %+v", p.Rect, want)
	}
}

func TestFindAvailablePositionNeverOverlaps(t *testing.T) {
	existing := []Rect{
		{X: 0, Y: 0, W: 5, H: 3},
		{X: 5, Y: 0, W: 7, H: 2},
		{X: 2, Y: 3, W: 6, H: 5},
	}
	p, err := FindAvailablePosition(existing, 4, 4, 12)
	if err != nil {
		t.Fatalf("FindAvailablePosition() error: %v", err)
	}
	if p.Exhausted {
		t.Fatal("search should not exhaust with unbounded rows available")
	}
	for _, r := range existing {
		if Overlaps(p.Rect, r) {
			t.Errorf("returned position %+v overlaps existing %+v", p.Rect, r)
		}
	}
}

func TestFindAvailablePositionExhausted(t *testing.T) {
	// Wider than the grid: no candidate column exists, so the scan runs
	// out and the fallback is flagged.
	p, err := FindAvailablePositionCapped(nil, 13, 2, 12, 50)
	if err != nil {
		t.Fatalf("FindAvailablePositionCapped() error: %v", err)
	}
	if !p.Exhausted {
		t.Error("width > cols should exhaust the search")
	}
	want := Rect{X: 0, Y: 0, W: 13, H: 2}
	if p.Rect != want {
		t.Errorf("fallback position = %+v, want %+v", p.Rect, want)
	}
}

func TestFindAvailablePositionBadParams(t *testing.T) {
	if _, err := FindAvailablePosition(nil, 6, 4, 0); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("cols=0 error = %v, want ErrInvalidParam", err)
	}
	if _, err := FindAvailablePosition(nil, 0, 4, 12); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("width=0 error = %v, want ErrInvalidParam", err)
	}
	if _, err := FindAvailablePosition(nil, 6, -1, 12); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("height=-1 error = %v, want ErrInvalidParam", err)
	}
}

func TestFindAvailablePositionDefaultCap(t *testing.T) {
	// maxScanRows < 1 falls back to the default cap; the search still
	// finds the obvious spot.
	p, err := FindAvailablePositionCapped(nil, 2, 2, 12, 0)
	if err != nil {
		t.Fatalf("FindAvailablePositionCapped() error: %v", err)
	}
	if p.Rect != (Rect{X: 0, Y: 0, W: 2, H: 2}) {
		t.Errorf("position = %+v, want origin", p.Rect)
	}
}
