package validation

import (
	"fmt"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

const msgCapacity = "must be a non-negative number"

// CheckProductionCapacity rejects non-empty production_capacity values
// that do not parse as a number greater than or equal to zero.
func CheckProductionCapacity(g *grid.Grid) *grid.Result {
	res := grid.NewResult(g)
	violations := 0

	for i := range g.Rows {
		cell := g.Cell(i, schema.FieldProductionCapacity)
		if cell == nil || IsEmpty(cell.Value) {
			continue
		}
		f, ok := ToFloat(cell.Value)
		if !ok || f < 0 {
			cell.AddMessage(msgCapacity)
			res.Flags.Flag(i, schema.FieldProductionCapacity)
			violations++
		}
	}

	if violations == 0 {
		res.Summary = append(res.Summary, "Production capacity: all rows valid.")
	} else {
		res.Summary = append(res.Summary,
			fmt.Sprintf("Production capacity: %d violation(s); production_capacity must be a non-negative number.", violations))
	}
	return res
}
