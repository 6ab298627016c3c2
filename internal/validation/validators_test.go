package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
)

// validRow is a baseline row that passes every check; tests override the
// cells they care about.
var validRow = map[string]string{
	schema.FieldAssetID:             "A-0001",
	schema.FieldAssetName:           "CNC lathe",
	schema.FieldAssetUsageID:        "40",
	schema.FieldOwnerName:           "Acme Industrial",
	schema.FieldRegion:              "North",
	schema.FieldInspectorName:       "J. Smit",
	schema.FieldInspectionDate:      "07-03-2024",
	schema.FieldValueBase:           "2",
	schema.FieldFinalValue:          "200",
	schema.FieldMarketApproach:      "1",
	schema.FieldMarketApproachValue: "200",
	schema.FieldProductionCapacity:  "12.5",
	schema.FieldCurrency:            "USD",
	schema.FieldConditionRating:     "3",
	schema.FieldAcquisitionYear:     "2015",
	schema.FieldCostApproach:        "",
	schema.FieldCostApproachValue:   "",
}

func testGrid(t *testing.T, overrides ...map[string]string) *grid.Grid {
	t.Helper()
	header := grid.Header(schema.ExpectedColumns())
	raw := make([][]string, len(overrides))
	for i, over := range overrides {
		row := make([]string, len(header))
		for j, field := range header {
			if v, ok := over[field]; ok {
				row[j] = v
			} else {
				row[j] = validRow[field]
			}
		}
		raw[i] = row
	}
	return grid.New(header, raw)
}

func TestCheckMandatoryFlagsEmptyCells(t *testing.T) {
	g := testGrid(t, map[string]string{
		schema.FieldAssetName: "",
		schema.FieldCurrency:  "  ",
	})

	res := CheckMandatory(g)

	assert.True(t, res.Flags.Has(0, schema.FieldAssetName))
	assert.True(t, res.Flags.Has(0, schema.FieldCurrency))
	assert.Len(t, res.Flags, 2)
	assert.Equal(t, []string{msgMandatory}, g.Cell(0, schema.FieldAssetName).Messages)
}

func TestCheckMandatoryMarketApproachIsNeverRequired(t *testing.T) {
	g := testGrid(t, map[string]string{
		schema.FieldMarketApproach:      "",
		schema.FieldMarketApproachValue: "",
	})

	res := CheckMandatory(g)

	// Empty market_approach reads as implicit 0, which also releases
	// market_approach_value from its requirement.
	assert.Empty(t, res.Flags)
}

func TestCheckMandatoryApproachValueRequiredWhenSelected(t *testing.T) {
	g := testGrid(t,
		map[string]string{
			schema.FieldMarketApproach:      "1.7", // float-then-truncate selects approach 1
			schema.FieldMarketApproachValue: "",
		},
		map[string]string{
			schema.FieldMarketApproach:      "0",
			schema.FieldMarketApproachValue: "",
		},
	)

	res := CheckMandatory(g)

	assert.True(t, res.Flags.Has(0, schema.FieldMarketApproachValue))
	assert.False(t, res.Flags.Has(1, schema.FieldMarketApproachValue))
}

func TestCheckFinalValue(t *testing.T) {
	g := testGrid(t,
		map[string]string{schema.FieldFinalValue: ""},
		map[string]string{schema.FieldFinalValue: "100.5"},
		map[string]string{schema.FieldFinalValue: "100.0"},
		map[string]string{schema.FieldFinalValue: "100"},
	)

	res := CheckFinalValue(g)

	assert.True(t, res.Flags.Has(0, schema.FieldFinalValue))
	assert.Equal(t, []string{msgMandatory}, g.Cell(0, schema.FieldFinalValue).Messages)
	assert.True(t, res.Flags.Has(1, schema.FieldFinalValue))
	assert.Equal(t, []string{msgNonDecimalInteger}, g.Cell(1, schema.FieldFinalValue).Messages)
	assert.False(t, res.Flags.Has(2, schema.FieldFinalValue))
	assert.False(t, res.Flags.Has(3, schema.FieldFinalValue))
}

func TestCheckInspectionDate(t *testing.T) {
	g := testGrid(t,
		map[string]string{schema.FieldInspectionDate: "07-03-2024"},
		map[string]string{schema.FieldInspectionDate: "2024-03-07"},
		map[string]string{schema.FieldInspectionDate: "2024/03/07"},
		map[string]string{schema.FieldInspectionDate: ""},
	)

	res := CheckInspectionDate(g)

	// Kept as-is.
	assert.Equal(t, "07-03-2024", g.Cell(0, schema.FieldInspectionDate).Value)
	assert.False(t, res.Flags.Has(0, schema.FieldInspectionDate))

	// ISO shape auto-fixed in place, not flagged.
	assert.Equal(t, "07-03-2024", g.Cell(1, schema.FieldInspectionDate).Value)
	assert.False(t, res.Flags.Has(1, schema.FieldInspectionDate))

	// Wrong delimiter is a format violation even though the date is real.
	assert.True(t, res.Flags.Has(2, schema.FieldInspectionDate))
	assert.True(t, res.Flags.Has(3, schema.FieldInspectionDate))

	assert.Contains(t, res.Summary[len(res.Summary)-1], "1 value(s) auto-fixed")
}

func TestCheckInspectionDateNotCalendarAware(t *testing.T) {
	g := testGrid(t, map[string]string{schema.FieldInspectionDate: "99-99-2024"})
	res := CheckInspectionDate(g)
	assert.Empty(t, res.Flags)
}

func TestCheckAssetUsageRange(t *testing.T) {
	g := testGrid(t,
		map[string]string{schema.FieldAssetUsageID: "38"},
		map[string]string{schema.FieldAssetUsageID: "56"},
		map[string]string{schema.FieldAssetUsageID: "57"},
		map[string]string{schema.FieldAssetUsageID: "fifty"},
		map[string]string{schema.FieldAssetUsageID: ""},
	)

	res := CheckAssetUsage(g)

	assert.False(t, res.Flags.Has(0, schema.FieldAssetUsageID))
	assert.False(t, res.Flags.Has(1, schema.FieldAssetUsageID))
	assert.True(t, res.Flags.Has(2, schema.FieldAssetUsageID))
	assert.True(t, res.Flags.Has(3, schema.FieldAssetUsageID))
	// Empty cells belong to the mandatory check.
	assert.False(t, res.Flags.Has(4, schema.FieldAssetUsageID))
}

func TestCheckValueBaseRange(t *testing.T) {
	g := testGrid(t,
		map[string]string{schema.FieldValueBase: "1"},
		map[string]string{schema.FieldValueBase: "9"},
		map[string]string{schema.FieldValueBase: "0"},
		map[string]string{schema.FieldValueBase: "10"},
	)

	res := CheckValueBase(g)

	assert.False(t, res.Flags.Has(0, schema.FieldValueBase))
	assert.False(t, res.Flags.Has(1, schema.FieldValueBase))
	assert.True(t, res.Flags.Has(2, schema.FieldValueBase))
	assert.True(t, res.Flags.Has(3, schema.FieldValueBase))
}

func TestCheckMarketApproachConsistency(t *testing.T) {
	g := testGrid(t,
		map[string]string{
			schema.FieldMarketApproach:      "1",
			schema.FieldMarketApproachValue: "100",
			schema.FieldFinalValue:          "200",
		},
		map[string]string{
			schema.FieldMarketApproach:      "1",
			schema.FieldMarketApproachValue: "200",
			schema.FieldFinalValue:          "200",
		},
		map[string]string{schema.FieldMarketApproach: "3"},
		map[string]string{schema.FieldMarketApproach: ""},
	)

	res := CheckMarketApproach(g)

	assert.True(t, res.Flags.Has(0, schema.FieldMarketApproachValue))
	assert.False(t, res.Flags.Has(1, schema.FieldMarketApproachValue))
	assert.True(t, res.Flags.Has(2, schema.FieldMarketApproach))
	assert.False(t, res.Flags.Has(3, schema.FieldMarketApproach))
}

func TestCheckMarketApproachComparesExactStrings(t *testing.T) {
	// Textual comparison: numerically equal but differently written
	// values do not match.
	g := testGrid(t, map[string]string{
		schema.FieldMarketApproach:      "2",
		schema.FieldMarketApproachValue: "200.0",
		schema.FieldFinalValue:          "200",
	})

	res := CheckMarketApproach(g)
	assert.True(t, res.Flags.Has(0, schema.FieldMarketApproachValue))
}

func TestCheckCostApproach(t *testing.T) {
	g := testGrid(t,
		// market_approach 0: cost_approach required.
		map[string]string{
			schema.FieldMarketApproach: "0",
			schema.FieldCostApproach:   "",
		},
		// Valid cost row.
		map[string]string{
			schema.FieldMarketApproach:    "0",
			schema.FieldCostApproach:      "2",
			schema.FieldCostApproachValue: "200",
			schema.FieldFinalValue:        "200",
		},
		// Cost value mismatch.
		map[string]string{
			schema.FieldMarketApproach:    "0",
			schema.FieldCostApproach:      "1",
			schema.FieldCostApproachValue: "150",
			schema.FieldFinalValue:        "200",
		},
		// Out-of-enum cost approach: flagged, no consistency check.
		map[string]string{
			schema.FieldMarketApproach:    "0",
			schema.FieldCostApproach:      "3",
			schema.FieldCostApproachValue: "999",
		},
		// market_approach 1: the whole check is skipped.
		map[string]string{
			schema.FieldMarketApproach: "1",
			schema.FieldCostApproach:   "",
		},
		// Empty market_approach does not ToInt-resolve to 0: skipped.
		map[string]string{
			schema.FieldMarketApproach: "",
			schema.FieldCostApproach:   "",
		},
	)

	res := CheckCostApproach(g)

	assert.True(t, res.Flags.Has(0, schema.FieldCostApproach))
	assert.False(t, res.Flags.Has(1, schema.FieldCostApproach))
	assert.False(t, res.Flags.Has(1, schema.FieldCostApproachValue))
	assert.True(t, res.Flags.Has(2, schema.FieldCostApproachValue))
	assert.True(t, res.Flags.Has(3, schema.FieldCostApproach))
	assert.False(t, res.Flags.Has(3, schema.FieldCostApproachValue))
	assert.False(t, res.Flags.Has(4, schema.FieldCostApproach))
	assert.False(t, res.Flags.Has(5, schema.FieldCostApproach))
}

func TestCheckProductionCapacity(t *testing.T) {
	g := testGrid(t,
		map[string]string{schema.FieldProductionCapacity: "0"},
		map[string]string{schema.FieldProductionCapacity: "12.5"},
		map[string]string{schema.FieldProductionCapacity: "-1"},
		map[string]string{schema.FieldProductionCapacity: "lots"},
		map[string]string{schema.FieldProductionCapacity: ""},
	)

	res := CheckProductionCapacity(g)

	assert.False(t, res.Flags.Has(0, schema.FieldProductionCapacity))
	assert.False(t, res.Flags.Has(1, schema.FieldProductionCapacity))
	assert.True(t, res.Flags.Has(2, schema.FieldProductionCapacity))
	assert.True(t, res.Flags.Has(3, schema.FieldProductionCapacity))
	assert.False(t, res.Flags.Has(4, schema.FieldProductionCapacity))
}

func TestFlaggedCellsAlwaysCarryMessages(t *testing.T) {
	g := testGrid(t,
		map[string]string{
			schema.FieldFinalValue:     "abc",
			schema.FieldValueBase:      "0",
			schema.FieldInspectionDate: "bad",
		},
		map[string]string{},
	)

	res, _ := ValidateAll(g)
	require.NotEmpty(t, res.Flags)

	for key := range res.Flags {
		cell := g.Cell(key.Row, key.Field)
		require.NotNil(t, cell)
		assert.NotEmpty(t, cell.Messages, "flagged cell %v must carry a message", key)
	}

	// The fully valid row's cells are untouched.
	for _, field := range schema.ExpectedColumns() {
		cell := g.Cell(1, field)
		assert.Equal(t, cell.Original, cell.Value)
		assert.Empty(t, cell.Messages)
	}
}
