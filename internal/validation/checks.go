package validation

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

// Preview selectors. "sum" is a pure aggregation, not a validator; any
// other or empty selector runs the full aggregate.
const (
	SelectorDate           = "date"
	SelectorMandatory      = "mandatory"
	SelectorFinal          = "final"
	SelectorAssetUsage     = "asset_usage"
	SelectorValueBase      = "value_base"
	SelectorMarketApproach = "market_approach"
	SelectorCostApproach   = "cost_approach"
	SelectorSum            = "sum"
)

func selectorChecks() map[string]Check {
	return map[string]Check{
		SelectorDate:           CheckInspectionDate,
		SelectorMandatory:      CheckMandatory,
		SelectorFinal:          CheckFinalValue,
		SelectorAssetUsage:     CheckAssetUsage,
		SelectorValueBase:      CheckValueBase,
		SelectorMarketApproach: CheckMarketApproach,
		SelectorCostApproach:   CheckCostApproach,
	}
}

// Run executes the named single check against the grid, or the sum
// aggregation, or the full aggregate when the selector is empty or
// unrecognized. The total pointer is non-nil only for sum and full
// aggregate runs.
func Run(g *grid.Grid, selector string) (*grid.Result, *float64) {
	if selector == SelectorSum {
		res := grid.NewResult(g)
		total := SumFinalValue(g)
		res.Summary = append(res.Summary, sumSummary(total))
		return res, &total
	}

	if check, ok := selectorChecks()[selector]; ok {
		return check(g), nil
	}

	res, total := ValidateAll(g)
	return res, &total
}

func sumSummary(total float64) string {
	return "Final value total: " + strconv.FormatFloat(total, 'f', -1, 64) + "."
}

// SumFinalValue totals the final_value column. Each cell contributes the
// float value of its numeric prefix, with thousands separators removed;
// unparsable or empty cells contribute 0.
func SumFinalValue(g *grid.Grid) float64 {
	values := make([]float64, 0, len(g.Rows))
	for i := range g.Rows {
		cell := g.Cell(i, schema.FieldFinalValue)
		if cell == nil {
			continue
		}
		values = append(values, parseLenientFloat(cell.Value))
	}
	if len(values) == 0 {
		return 0
	}
	total, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return total
}

func parseLenientFloat(v string) float64 {
	s := NumericPrefix(v)
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
