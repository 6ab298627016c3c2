package validation

import (
	"fmt"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

const msgMandatory = "mandatory and cannot be empty"

// CheckMandatory enforces the mandatory-field rules on every data row.
// The requirement table in domain/schema drives the two exceptions:
// market_approach is never required (empty reads as implicit 0), and
// market_approach_value is required only on rows that actually selected
// a market approach.
func CheckMandatory(g *grid.Grid) *grid.Result {
	res := grid.NewResult(g)
	violations := 0

	rules := schema.MandatoryRules()
	for i := range g.Rows {
		for _, rule := range rules {
			cell := g.Cell(i, rule.Field)
			if cell == nil {
				continue
			}

			required := false
			switch rule.Requires {
			case schema.Always:
				required = true
			case schema.Never:
				required = false
			case schema.WhenApproachSelected:
				if ma := g.Cell(i, schema.FieldMarketApproach); ma != nil {
					required = approachSelected(ma.Value)
				}
			}

			if required && IsEmpty(cell.Value) {
				cell.AddMessage(msgMandatory)
				res.Flags.Flag(i, rule.Field)
				violations++
			}
		}
	}

	if violations == 0 {
		res.Summary = append(res.Summary, "Mandatory fields: all rows complete.")
	} else {
		res.Summary = append(res.Summary,
			fmt.Sprintf("Mandatory fields: %d empty cell(s); every mandatory field must carry a value.", violations))
	}
	return res
}
