package excel

// ReportConfig holds presentation settings for the generated validation
// report workbook.
type ReportConfig struct {
	SheetName     string `json:"sheet_name"`
	CommentAuthor string `json:"comment_author"`

	// ARGB-less hex fills, excelize pattern fill format.
	HeaderFill  string `json:"header_fill"`
	FlaggedFill string `json:"flagged_fill"`
	ValidFill   string `json:"valid_fill"`
}

// DefaultReportConfig returns the standard report presentation: a blue
// bold header and Excel's conventional bad/good cell colors.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		SheetName:     "Validation Report",
		CommentAuthor: "valuecheck",
		HeaderFill:    "4F81BD",
		FlaggedFill:   "FFC7CE",
		ValidFill:     "C6EFCE",
	}
}
