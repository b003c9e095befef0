package grid

import "fmt"

// DefaultMaxScanRows caps the free-position search. The scan terminates on
// its own once it clears the bottom edge of every existing rectangle, so the
// cap only fires for degenerate inputs (e.g. a requested width wider than
// the grid, which leaves no candidate column at all).
const DefaultMaxScanRows = 1000

// Placement is the result of a free-position search. When Exhausted is true
// the search hit its row cap without finding a free block and Rect is the
// best-effort origin position, which may overlap existing widgets; callers
// must surface that instead of silently applying it.
type Placement struct {
	Rect      Rect `json:"rect"`
	Exhausted bool `json:"exhausted,omitempty"`
}

type cell struct {
	x, y int
}

// FindAvailablePosition scans candidate top-left positions in row-major
// order (lower y first, then lower x) and returns the first spot where a
// width x height block fits without overlapping any existing rectangle.
// The scan is capped at DefaultMaxScanRows rows.
func FindAvailablePosition(existing []Rect, width, height, cols int) (Placement, error) {
	return FindAvailablePositionCapped(existing, width, height, cols, DefaultMaxScanRows)
}

// FindAvailablePositionCapped is FindAvailablePosition with an explicit row
// cap. maxScanRows < 1 falls back to DefaultMaxScanRows.
func FindAvailablePositionCapped(existing []Rect, width, height, cols, maxScanRows int) (Placement, error) {
	if cols < 1 {
		return Placement{}, fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidParam, cols)
	}
	if width < 1 || height < 1 {
		return Placement{}, fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidParam, width, height)
	}
	if maxScanRows < 1 {
		maxScanRows = DefaultMaxScanRows
	}

	occupied := make(map[cell]struct{})
	for _, r := range existing {
		for x := r.X; x < r.X+r.W; x++ {
			for y := r.Y; y < r.Y+r.H; y++ {
				occupied[cell{x, y}] = struct{}{}
			}
		}
	}

	for y := 0; y < maxScanRows; y++ {
		for x := 0; x <= cols-width; x++ {
			if blockFree(occupied, x, y, width, height) {
				return Placement{Rect: Rect{X: x, Y: y, W: width, H: height}}, nil
			}
		}
	}

	// No candidate within the cap. Report the origin rather than inventing
	// a position, and flag it so the caller can warn instead of persisting
	// an overlapping layout.
	return Placement{Rect: Rect{X: 0, Y: 0, W: width, H: height}, Exhausted: true}, nil
}

func blockFree(occupied map[cell]struct{}, x, y, w, h int) bool {
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < h; dy++ {
			if _, taken := occupied[cell{x + dx, y + dy}]; taken {
				return false
			}
		}
	}
	return true
}
