package validation

import (
	"fmt"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

const msgNonDecimalInteger = "must be a non-decimal integer"

// CheckFinalValue requires final_value on every row and rejects anything
// that does not coerce to a non-decimal integer. "123.0" passes (spurious
// decimal), "123.4" does not.
func CheckFinalValue(g *grid.Grid) *grid.Result {
	res := grid.NewResult(g)
	violations := 0

	for i := range g.Rows {
		cell := g.Cell(i, schema.FieldFinalValue)
		if cell == nil {
			continue
		}

		switch {
		case IsEmpty(cell.Value):
			cell.AddMessage(msgMandatory)
			res.Flags.Flag(i, schema.FieldFinalValue)
			violations++
		default:
			if _, ok := ToInt(cell.Value); !ok {
				cell.AddMessage(msgNonDecimalInteger)
				res.Flags.Flag(i, schema.FieldFinalValue)
				violations++
			}
		}
	}

	if violations == 0 {
		res.Summary = append(res.Summary, "Final value: all rows valid.")
	} else {
		res.Summary = append(res.Summary,
			fmt.Sprintf("Final value: %d violation(s); final_value must be a non-empty, non-decimal integer.", violations))
	}
	return res
}
