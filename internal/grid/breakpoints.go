package grid

// Breakpoint is one responsive-width tier: viewports at least MinWidth
// pixels wide get Cols grid columns.
type Breakpoint struct {
	Name     string `json:"name" yaml:"name"`
	MinWidth int    `json:"minWidth" yaml:"min_width"`
	Cols     int    `json:"cols" yaml:"cols"`
}

// Table is an ordered breakpoint table, widest tier first. Lookups scan
// from the largest threshold downward and take the first match.
type Table []Breakpoint

// DefaultTable is the standard five-tier responsive table.
var DefaultTable = Table{
	{Name: "lg", MinWidth: 1200, Cols: 12},
	{Name: "md", MinWidth: 996, Cols: 10},
	{Name: "sm", MinWidth: 768, Cols: 6},
	{Name: "xs", MinWidth: 480, Cols: 4},
	{Name: "xxs", MinWidth: 0, Cols: 2},
}

// BreakpointFor returns the name of the widest tier whose MinWidth does not
// exceed width. Widths below every threshold map to the narrowest tier.
func (t Table) BreakpointFor(width int) string {
	if len(t) == 0 {
		return ""
	}
	for _, bp := range t {
		if width >= bp.MinWidth {
			return bp.Name
		}
	}
	return t[len(t)-1].Name
}

// ColumnsFor returns the column count for a named tier, or DefaultCols for
// a name not in the table.
func (t Table) ColumnsFor(name string) int {
	for _, bp := range t {
		if bp.Name == name {
			return bp.Cols
		}
	}
	return DefaultCols
}

// BreakpointFor looks up width in DefaultTable.
func BreakpointFor(width int) string {
	return DefaultTable.BreakpointFor(width)
}

// ColumnsFor looks up a tier name in DefaultTable.
func ColumnsFor(name string) int {
	return DefaultTable.ColumnsFor(name)
}
