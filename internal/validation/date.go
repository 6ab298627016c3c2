package validation

import (
	"fmt"
	"regexp"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

// Inspection dates are matched textually, not parsed as calendar dates.
// "31-02-2024" passes; "2024/03/07" does not.
var (
	dayFirstPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	isoPattern      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

const msgDateFormat = "must be a date in dd-mm-yyyy format"

// CheckInspectionDate enforces the dd-mm-yyyy textual shape on
// inspection_date. ISO-shaped values (yyyy-mm-dd) are rewritten in place
// to dd-mm-yyyy and reported as auto-fixed rather than flagged.
func CheckInspectionDate(g *grid.Grid) *grid.Result {
	res := grid.NewResult(g)
	violations := 0
	autoFixed := 0

	for i := range g.Rows {
		cell := g.Cell(i, schema.FieldInspectionDate)
		if cell == nil {
			continue
		}

		switch {
		case IsEmpty(cell.Value):
			cell.AddMessage(msgMandatory)
			res.Flags.Flag(i, schema.FieldInspectionDate)
			violations++
		case dayFirstPattern.MatchString(cell.Value):
			// Already in the expected shape.
		case isoPattern.MatchString(cell.Value):
			m := isoPattern.FindStringSubmatch(cell.Value)
			cell.Value = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
			autoFixed++
		default:
			cell.AddMessage(msgDateFormat)
			res.Flags.Flag(i, schema.FieldInspectionDate)
			violations++
		}
	}

	if violations == 0 {
		res.Summary = append(res.Summary, "Inspection date: all rows valid.")
	} else {
		res.Summary = append(res.Summary,
			fmt.Sprintf("Inspection date: %d violation(s); inspection_date must be dd-mm-yyyy.", violations))
	}
	if autoFixed > 0 {
		res.Summary = append(res.Summary,
			fmt.Sprintf("Inspection date: %d value(s) auto-fixed from yyyy-mm-dd to dd-mm-yyyy.", autoFixed))
	}
	return res
}
