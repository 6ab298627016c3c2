package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"valuecheck/domain/grid"
)

// ReportWriter renders a validation result as a fresh workbook: styled
// header, highlighted flagged cells with their message trail attached as
// a comment, and a neutral valid style everywhere else. The output is a
// clean rebuild; nothing of the uploaded file's formatting survives.
type ReportWriter struct {
	config ReportConfig
}

// NewReportWriter creates a writer with the given presentation config.
func NewReportWriter(config ReportConfig) *ReportWriter {
	return &ReportWriter{config: config}
}

// Write renders the result to an .xlsx file at path.
func (w *ReportWriter) Write(res *grid.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.config.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{w.config.HeaderFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	flaggedStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "9C0006"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{w.config.FlaggedFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to build flagged style: %w", err)
	}
	validStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "006100"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{w.config.ValidFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to build valid style: %w", err)
	}

	g := res.Grid
	for col, name := range g.Header {
		ref, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, ref, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, ref, ref, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range g.Rows {
		for col, cell := range row {
			ref, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			// Cell.Value is the trail-free value; date auto-fixes are
			// kept, message text is not.
			if err := f.SetCellStr(sheet, ref, cell.Value); err != nil {
				return err
			}

			style := validStyle
			if res.Flags.Has(i, g.Header[col]) {
				style = flaggedStyle
				comment := excelize.Comment{
					Cell:      ref,
					Author:    w.config.CommentAuthor,
					Paragraph: []excelize.RichTextRun{{Text: strings.Join(cell.Messages, " | ")}},
				}
				if err := f.AddComment(sheet, comment); err != nil {
					return fmt.Errorf("failed to attach comment at %s: %w", ref, err)
				}
			}
			if err := f.SetCellStyle(sheet, ref, ref, style); err != nil {
				return err
			}
		}
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
