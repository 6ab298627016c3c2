package validation

import (
	"fmt"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

// checkIntRange flags every non-empty cell in the column that does not
// coerce to an integer inside [min, max]. Empty cells are the mandatory
// check's concern, not a range violation.
func checkIntRange(g *grid.Grid, field string, min, max int, message, label string) *grid.Result {
	res := grid.NewResult(g)
	violations := 0

	for i := range g.Rows {
		cell := g.Cell(i, field)
		if cell == nil || IsEmpty(cell.Value) {
			continue
		}
		n, ok := ToInt(cell.Value)
		if !ok || n < min || n > max {
			cell.AddMessage(message)
			res.Flags.Flag(i, field)
			violations++
		}
	}

	if violations == 0 {
		res.Summary = append(res.Summary, fmt.Sprintf("%s: all rows valid.", label))
	} else {
		res.Summary = append(res.Summary,
			fmt.Sprintf("%s: %d violation(s); %s must be an integer between %d and %d.", label, violations, field, min, max))
	}
	return res
}

// CheckAssetUsage enforces the asset_usage_id code range [38, 56].
func CheckAssetUsage(g *grid.Grid) *grid.Result {
	return checkIntRange(g, schema.FieldAssetUsageID, 38, 56,
		"must be an integer between 38 and 56", "Asset usage")
}

// CheckValueBase enforces the value_base code range [1, 9].
func CheckValueBase(g *grid.Grid) *grid.Result {
	return checkIntRange(g, schema.FieldValueBase, 1, 9,
		"must be an integer between 1 and 9", "Value base")
}
