// Package grid implements the widget grid layout engine: overlap detection,
// free-position search, validation, vertical compaction, breakpoint lookup,
// and snap-to-grid. Every operation is a pure function over value inputs;
// the engine holds no state between calls.
package grid

import (
	"errors"
	"math"
)

// DefaultCols is the standard column count for a dashboard grid.
const DefaultCols = 12

// ErrInvalidParam marks parameter errors that indicate a caller bug
// (non-positive cols, width, or height). Use errors.Is to detect it.
var ErrInvalidParam = errors.New("invalid grid parameter")

// Rect is a widget's footprint on the grid. X, Y are the top-left cell;
// W, H are the extent in cells. MinW, MinH, MaxW, MaxH are optional size
// bounds; zero means the bound is not set (a valid W or H is always >= 1).
type Rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`

	MinW int `json:"minW,omitempty" yaml:"min_w,omitempty"`
	MinH int `json:"minH,omitempty" yaml:"min_h,omitempty"`
	MaxW int `json:"maxW,omitempty" yaml:"max_w,omitempty"`
	MaxH int `json:"maxH,omitempty" yaml:"max_h,omitempty"`
}

// Widget is a Rect with its identity. The engine adjusts geometry only;
// IDs pass through untouched.
type Widget struct {
	ID string `json:"id" yaml:"id"`
	Rect
}

// Overlaps reports whether two rectangles intersect with positive area.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return !(a.X+a.W <= b.X || b.X+b.W <= a.X || a.Y+a.H <= b.Y || b.Y+b.H <= a.Y)
}

// OverlappingPairs returns the IDs of every pair of distinct widgets whose
// rectangles overlap, in input order. A valid layout returns nil.
func OverlappingPairs(widgets []Widget) [][2]string {
	var pairs [][2]string
	for i := 0; i < len(widgets); i++ {
		for j := i + 1; j < len(widgets); j++ {
			if Overlaps(widgets[i].Rect, widgets[j].Rect) {
				pairs = append(pairs, [2]string{widgets[i].ID, widgets[j].ID})
			}
		}
	}
	return pairs
}

// SnapToGrid rounds fractional coordinates to the nearest multiple of
// gridSize (half-up) and returns the resulting Rect. Width and height are
// floored to a minimum of 1 after rounding. The result is not checked for
// overlap or grid bounds; callers re-validate afterward.
func SnapToGrid(x, y, w, h float64, gridSize int) Rect {
	if gridSize < 1 {
		gridSize = 1
	}
	snapped := Rect{
		X: snap(x, gridSize),
		Y: snap(y, gridSize),
		W: snap(w, gridSize),
		H: snap(h, gridSize),
	}
	if snapped.W < 1 {
		snapped.W = 1
	}
	if snapped.H < 1 {
		snapped.H = 1
	}
	return snapped
}

func snap(v float64, size int) int {
	g := float64(size)
	return int(math.Floor(v/g+0.5)) * size
}
