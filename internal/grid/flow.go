package grid

// Flow is a cursor-based row packer for building a layout from scratch.
// Widgets are placed left to right in the order given, wrapping to a new
// row when the current one is full. Unlike FindAvailablePosition it never
// reaches back into gaps on earlier rows, so declaration order stays
// reading order. Flow is a builder, not part of the stateless engine API;
// use one per layout being built.
type Flow struct {
	cols      int
	cursorX   int
	cursorY   int
	rowHeight int
}

// NewFlow creates a row packer for a grid of the given width.
func NewFlow(cols int) *Flow {
	if cols < 1 {
		cols = DefaultCols
	}
	return &Flow{cols: cols}
}

// Place positions the next widget and returns its rectangle. Widths wider
// than the grid are clamped to it so the result always fits the columns.
func (f *Flow) Place(width, height int) Rect {
	if width < 1 {
		width = 1
	}
	if width > f.cols {
		width = f.cols
	}
	if height < 1 {
		height = 1
	}

	if f.cursorX+width > f.cols {
		f.wrap()
	}
	r := Rect{X: f.cursorX, Y: f.cursorY, W: width, H: height}
	f.cursorX += width
	if height > f.rowHeight {
		f.rowHeight = height
	}
	return r
}

// BreakRow forces the next placement onto a fresh row below the tallest
// widget placed so far in the current one.
func (f *Flow) BreakRow() {
	if f.cursorX > 0 {
		f.wrap()
	}
}

// Reset clears the cursor for a new layout.
func (f *Flow) Reset() {
	f.cursorX = 0
	f.cursorY = 0
	f.rowHeight = 0
}

func (f *Flow) wrap() {
	f.cursorY += f.rowHeight
	f.cursorX = 0
	f.rowHeight = 0
}
