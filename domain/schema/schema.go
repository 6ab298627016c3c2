// Package schema carries the fixed column schema for asset-valuation
// uploads: the columns every workbook must contain, which of them must be
// non-empty, and the dependency rules that make a handful of requirements
// conditional on the selected valuation approach.
package schema

// Column names as they must appear in the header row of an upload.
const (
	FieldAssetID             = "asset_id"
	FieldAssetName           = "asset_name"
	FieldAssetUsageID        = "asset_usage_id"
	FieldOwnerName           = "owner_name"
	FieldRegion              = "region"
	FieldInspectorName       = "inspector_name"
	FieldInspectionDate      = "inspection_date"
	FieldValueBase           = "value_base"
	FieldFinalValue          = "final_value"
	FieldMarketApproach      = "market_approach"
	FieldMarketApproachValue = "market_approach_value"
	FieldProductionCapacity  = "production_capacity"
	FieldCurrency            = "currency"
	FieldConditionRating     = "condition_rating"
	FieldAcquisitionYear     = "acquisition_year"
	FieldCostApproach        = "cost_approach"
	FieldCostApproachValue   = "cost_approach_value"
)

// ExpectedColumns lists every column an upload must carry. The uploaded
// header may contain more; it must never contain fewer.
func ExpectedColumns() []string {
	return []string{
		FieldAssetID,
		FieldAssetName,
		FieldAssetUsageID,
		FieldOwnerName,
		FieldRegion,
		FieldInspectorName,
		FieldInspectionDate,
		FieldValueBase,
		FieldFinalValue,
		FieldMarketApproach,
		FieldMarketApproachValue,
		FieldProductionCapacity,
		FieldCurrency,
		FieldConditionRating,
		FieldAcquisitionYear,
		FieldCostApproach,
		FieldCostApproachValue,
	}
}

// Requirement states when a mandatory field must be non-empty.
type Requirement int

const (
	// Always requires a non-empty value on every row.
	Always Requirement = iota
	// Never exempts the field entirely; an empty market_approach reads
	// as an implicit 0 downstream.
	Never
	// WhenApproachSelected requires a value only on rows whose
	// market_approach resolves to a non-zero integer.
	WhenApproachSelected
)

// MandatoryRule pairs a field with the condition under which it is
// required. Keeping the conditions in one table keeps future rule
// additions auditable instead of buried in validator branches.
type MandatoryRule struct {
	Field    string
	Requires Requirement
}

// MandatoryRules returns the 15 mandatory fields in schema order.
// cost_approach and cost_approach_value are expected columns but are
// only conditionally checked by the cost-approach validator, so they do
// not appear here.
func MandatoryRules() []MandatoryRule {
	return []MandatoryRule{
		{Field: FieldAssetID, Requires: Always},
		{Field: FieldAssetName, Requires: Always},
		{Field: FieldAssetUsageID, Requires: Always},
		{Field: FieldOwnerName, Requires: Always},
		{Field: FieldRegion, Requires: Always},
		{Field: FieldInspectorName, Requires: Always},
		{Field: FieldInspectionDate, Requires: Always},
		{Field: FieldValueBase, Requires: Always},
		{Field: FieldFinalValue, Requires: Always},
		{Field: FieldMarketApproach, Requires: Never},
		{Field: FieldMarketApproachValue, Requires: WhenApproachSelected},
		{Field: FieldProductionCapacity, Requires: Always},
		{Field: FieldCurrency, Requires: Always},
		{Field: FieldConditionRating, Requires: Always},
		{Field: FieldAcquisitionYear, Requires: Always},
	}
}

// MissingColumns returns every expected column absent from the uploaded
// header, in schema order. A non-empty result is a hard precondition
// failure: no validation is attempted against an incomplete header.
func MissingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, want := range ExpectedColumns() {
		if !present[want] {
			missing = append(missing, want)
		}
	}
	return missing
}
