package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePositionValid(t *testing.T) {
	r, err := ValidatePosition(Rect{X: 0, Y: 0, W: 6, H: 4}, 12)
	if err != nil {
		t.Fatalf("ValidatePosition() error: %v", err)
	}
	if !r.Valid || len(r.Errors) != 0 {
		t.Errorf("report = %+v, want valid with no errors", r)
	}
}

func TestValidatePositionGridOverflow(t *testing.T) {
	r, err := ValidatePosition(Rect{X: 10, Y: 0, W: 5, H: 1}, 12)
	if err != nil {
		t.Fatalf("ValidatePosition() error: %v", err)
	}
	if r.Valid {
		t.Error("rect past the right edge should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", r.Errors)
	}
	if !strings.Contains(r.Errors[0], "grid width") {
		t.Errorf("error %q should mention the grid width overflow", r.Errors[0])
	}
}

func TestValidatePositionAccumulates(t *testing.T) {
	// Negative origin, zero size: four violations, plus none for the
	// right edge since x+w = -1 < 12.
	r, err := ValidatePosition(Rect{X: -1, Y: -2, W: 0, H: 0}, 12)
	if err != nil {
		t.Fatalf("ValidatePosition() error: %v", err)
	}
	if r.Valid {
		t.Error("report should be invalid")
	}
	if len(r.Errors) != 4 {
		t.Fatalf("errors = %v, want 4", r.Errors)
	}
	// Fixed check order: x, y, w, h
	for i, want := range []string{"x ", "y ", "w ", "h "} {
		if !strings.HasPrefix(r.Errors[i], want) {
			t.Errorf("errors[%d] = %q, want %q prefix", i, r.Errors[i], want)
		}
	}
}

func TestValidatePositionDeterministic(t *testing.T) {
	rect := Rect{X: -3, Y: 0, W: 20, H: 2, MaxH: 1}
	a, err := ValidatePosition(rect, 12)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ValidatePosition(rect, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Errors) != len(b.Errors) {
		t.Fatalf("repeat runs disagree: %v vs %v", a.Errors, b.Errors)
	}
	for i := range a.Errors {
		if a.Errors[i] != b.Errors[i] {
			t.Errorf("errors[%d] differs between runs: %q vs %q", i, a.Errors[i], b.Errors[i])
		}
	}
}

func TestValidatePositionSizeBounds(t *testing.T) {
	// Below min
	r, _ := ValidatePosition(Rect{X: 0, Y: 0, W: 2, H: 2, MinW: 3, MinH: 3}, 12)
	if r.Valid || len(r.Errors) != 2 {
		t.Errorf("below-min report = %+v, want two violations", r)
	}

	// Above max
	r, _ = ValidatePosition(Rect{X: 0, Y: 0, W: 6, H: 6, MaxW: 4, MaxH: 4}, 12)
	if r.Valid || len(r.Errors) != 2 {
		t.Errorf("above-max report = %+v, want two violations", r)
	}

	// Bounds satisfied
	r, _ = ValidatePosition(Rect{X: 0, Y: 0, W: 4, H: 4, MinW: 2, MaxW: 6, MinH: 2, MaxH: 6}, 12)
	if !r.Valid {
		t.Errorf("in-bounds report = %+v, want valid", r)
	}

	// Zero bounds mean unset
	r, _ = ValidatePosition(Rect{X: 0, Y: 0, W: 9, H: 9}, 12)
	if !r.Valid {
		t.Errorf("unset bounds report = %+v, want valid", r)
	}
}

func TestValidatePositionBadCols(t *testing.T) {
	if _, err := ValidatePosition(Rect{W: 1, H: 1}, 0); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("cols=0 error = %v, want ErrInvalidParam", err)
	}
	if _, err := ValidatePosition(Rect{W: 1, H: 1}, -4); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("cols=-4 error = %v, want ErrInvalidParam", err)
	}
}

func TestValidateLayout(t *testing.T) {
	widgets := []Widget{
		{ID: "ok", Rect: Rect{X: 0, Y: 0, W: 6, H: 4}},
		{ID: "wide", Rect: Rect{X: 10, Y: 0, W: 5, H: 1}},
		{ID: "clash", Rect: Rect{X: 2, Y: 2, W: 6, H: 4}},
	}
	report, err := ValidateLayout(widgets, 12)
	if err != nil {
		t.Fatalf("ValidateLayout() error: %v", err)
	}
	if report.Valid {
		t.Error("layout with overflow and overlap should be invalid")
	}
	if !report.Widgets["ok"].Valid {
		t.Error("widget 'ok' should validate")
	}
	if report.Widgets["wide"].Valid {
		t.Error("widget 'wide' should fail validation")
	}
	if len(report.Overlaps) != 1 || report.Overlaps[0] != [2]string{"ok", "clash"} {
		t.Errorf("overlaps = %v, want [[ok clash]]", report.Overlaps)
	}
}

func TestValidateLayoutClean(t *testing.T) {
	widgets := []Widget{
		{ID: "a", Rect: Rect{X: 0, Y: 0, W: 6, H: 4}},
		{ID: "b", Rect: Rect{X: 6, Y: 0, W: 6, H: 4}},
	}
	report, err := ValidateLayout(widgets, 12)
	if err != nil {
		t.Fatalf("ValidateLayout() error: %v", err)
	}
	if !report.Valid || len(report.Overlaps) != 0 {
		t.Errorf("report = %+v, want valid", report)
	}
}
