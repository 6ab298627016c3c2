package grid

// FlagKey addresses one highlighted cell by data-row index (0-based,
// header excluded) and field name.
type FlagKey struct {
	Row   int
	Field string
}

// FlagMap is the sparse set of highlighted cells. Merging is a union;
// flagging the same key twice is a no-op.
type FlagMap map[FlagKey]bool

// Flag marks a cell as failed.
func (m FlagMap) Flag(row int, field string) {
	m[FlagKey{Row: row, Field: field}] = true
}

// Has reports whether a cell carries a flag.
func (m FlagMap) Has(row int, field string) bool {
	return m[FlagKey{Row: row, Field: field}]
}

// Merge unions another flag map into this one.
func (m FlagMap) Merge(other FlagMap) {
	for k := range other {
		m[k] = true
	}
}

// Result is what every validator and the aggregator return: the grid they
// annotated, the cells they flagged, and their human-readable summary.
type Result struct {
	Grid    *Grid
	Flags   FlagMap
	Summary []string
}

// NewResult wraps a grid with an empty flag set.
func NewResult(g *Grid) *Result {
	return &Result{Grid: g, Flags: make(FlagMap)}
}

// Absorb folds a validator's result into an aggregate: flags are unioned
// and summary lines appended in validator order.
func (r *Result) Absorb(other *Result) {
	r.Flags.Merge(other.Flags)
	r.Summary = append(r.Summary, other.Summary...)
}
