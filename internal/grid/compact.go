package grid

import "sort"

// Compact removes vertical gaps by sliding widgets upward. Widgets are
// processed in (y, x) order; each one moves to the smallest y' between 0
// and its original y that does not overlap a widget already placed in this
// pass. A single greedy top-down sweep, not a global packer: a widget only
// ever moves up, never sideways, and horizontal neighbors on the same row
// compact independently without crossing each other.
//
// The result is a new slice in the input's order; the input is not mutated.
// Compacting an already-compacted layout changes nothing.
func Compact(widgets []Widget) []Widget {
	order := make([]int, len(widgets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		wa, wb := widgets[order[a]], widgets[order[b]]
		if wa.Y != wb.Y {
			return wa.Y < wb.Y
		}
		return wa.X < wb.X
	})

	out := make([]Widget, len(widgets))
	copy(out, widgets)
	placed := make([]Widget, 0, len(widgets))
	for _, idx := range order {
		w := out[idx]
		w.Y = lowestFreeY(w.Rect, placed)
		out[idx] = w
		placed = append(placed, w)
	}
	return out
}

// lowestFreeY scans upward from 0 for the first y that keeps r clear of
// every already-finalized widget. For a non-overlapping input layout r's
// own y is always free, so the scan terminates at or before it; if the
// input already overlaps, r stays where it was.
func lowestFreeY(r Rect, placed []Widget) int {
	for y := 0; y <= r.Y; y++ {
		candidate := r
		candidate.Y = y
		if !overlapsAny(candidate, placed) {
			return y
		}
	}
	return r.Y
}

func overlapsAny(r Rect, placed []Widget) bool {
	for _, w := range placed {
		if Overlaps(r, w.Rect) {
			return true
		}
	}
	return false
}
