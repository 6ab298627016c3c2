package validation

import (
	"fmt"

	"valuecheck/domain/grid"
)

// Check is one field-level validator: it scans every data row, annotates
// offending cells on the shared grid, and reports its flags and summary.
type Check func(*grid.Grid) *grid.Result

// orderedChecks is the fixed validator order. Later validators see cells
// already annotated by earlier passes, so this order determines message
// order within a cell's trail and must not change.
func orderedChecks() []Check {
	return []Check{
		CheckMandatory,
		CheckFinalValue,
		CheckInspectionDate,
		CheckAssetUsage,
		CheckValueBase,
		CheckMarketApproach,
		CheckCostApproach,
		CheckProductionCapacity,
	}
}

// ValidateAll runs every validator in the fixed order against the grid,
// unions their flags, and concatenates their summaries. The second return
// is the final_value total across all rows.
//
// ValidateAll must run exactly once per freshly read grid: message trails
// accumulate, so re-running it on an already annotated grid duplicates
// messages even though the flag set stays the same.
func ValidateAll(g *grid.Grid) (*grid.Result, float64) {
	agg := grid.NewResult(g)

	var extra int
	for i, check := range orderedChecks() {
		res := check(g)
		// Production capacity has no selector of its own; its count is
		// reported on the catch-all line below.
		if i == len(orderedChecks())-1 {
			extra = len(res.Flags)
		}
		agg.Absorb(res)
	}

	agg.Summary = append(agg.Summary,
		fmt.Sprintf("Additional rule violations: %d.", extra))
	if len(agg.Flags) == 0 {
		agg.Summary = append(agg.Summary, "All checks passed; the workbook is valid.")
	}

	return agg, SumFinalValue(g)
}
