package grid

import "fmt"

// Report is the outcome of validating one rectangle. Errors holds one
// message per failed check, in a fixed check order, so identical inputs
// always produce identical reports.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidatePosition checks a rectangle against the grid and its own size
// bounds. Every failing check contributes exactly one message; the checks
// run in order (x, y, w, h, right edge, minW, minH, maxW, maxH) without
// short-circuiting. Constraint violations are data, not errors; only a
// non-positive cols is treated as a caller bug.
func ValidatePosition(r Rect, cols int) (Report, error) {
	if cols < 1 {
		return Report{}, fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidParam, cols)
	}

	var errs []string
	if r.X < 0 {
		errs = append(errs, fmt.Sprintf("x must be >= 0, got %d", r.X))
	}
	if r.Y < 0 {
		errs = append(errs, fmt.Sprintf("y must be >= 0, got %d", r.Y))
	}
	if r.W < 1 {
		errs = append(errs, fmt.Sprintf("w must be >= 1, got %d", r.W))
	}
	if r.H < 1 {
		errs = append(errs, fmt.Sprintf("h must be >= 1, got %d", r.H))
	}
	if r.X+r.W > cols {
		errs = append(errs, fmt.Sprintf("widget extends past grid width: x+w = %d, cols = %d", r.X+r.W, cols))
	}
	if r.MinW > 0 && r.W < r.MinW {
		errs = append(errs, fmt.Sprintf("w %d is below minW %d", r.W, r.MinW))
	}
	if r.MinH > 0 && r.H < r.MinH {
		errs = append(errs, fmt.Sprintf("h %d is below minH %d", r.H, r.MinH))
	}
	if r.MaxW > 0 && r.W > r.MaxW {
		errs = append(errs, fmt.Sprintf("w %d exceeds maxW %d", r.W, r.MaxW))
	}
	if r.MaxH > 0 && r.H > r.MaxH {
		errs = append(errs, fmt.Sprintf("h %d exceeds maxH %d", r.H, r.MaxH))
	}

	return Report{Valid: len(errs) == 0, Errors: errs}, nil
}

// LayoutReport aggregates validation over a whole layout: one Report per
// widget plus the IDs of every overlapping pair.
type LayoutReport struct {
	Valid    bool              `json:"valid"`
	Widgets  map[string]Report `json:"widgets"`
	Overlaps [][2]string       `json:"overlaps,omitempty"`
}

// ValidateLayout validates every widget against the grid and checks the
// whole layout for overlaps.
func ValidateLayout(widgets []Widget, cols int) (LayoutReport, error) {
	report := LayoutReport{Valid: true, Widgets: make(map[string]Report, len(widgets))}
	for _, w := range widgets {
		r, err := ValidatePosition(w.Rect, cols)
		if err != nil {
			return LayoutReport{}, err
		}
		report.Widgets[w.ID] = r
		if !r.Valid {
			report.Valid = false
		}
	}
	report.Overlaps = OverlappingPairs(widgets)
	if len(report.Overlaps) > 0 {
		report.Valid = false
	}
	return report, nil
}
