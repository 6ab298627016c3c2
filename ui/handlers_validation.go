package ui

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"valuecheck/adapters/excel"
	"valuecheck/domain/grid"
	"valuecheck/domain/schema"
	"valuecheck/internal/errors"
	"valuecheck/internal/validation"
)

const uploadField = "workbook"

// PreviewCell is one cell of the preview payload: the annotated value
// (message trail included) and whether the cell is highlighted.
type PreviewCell struct {
	Value     string `json:"value"`
	Highlight bool   `json:"highlight"`
}

// PreviewResponse is the JSON body of the preview endpoint. Total is
// present only for sum and full-aggregate runs.
type PreviewResponse struct {
	Header  []string                 `json:"header"`
	Preview []map[string]PreviewCell `json:"preview"`
	Summary []string                 `json:"summary"`
	Total   *float64                 `json:"total,omitempty"`
}

// handleUpload runs the full aggregate against an uploaded workbook and
// responds with the rebuilt, annotated report file.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	g, cleanup, err := a.ingestWorkbook(w, r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		writeError(w, err)
		return
	}

	res, _ := validation.ValidateAll(g)
	a.log.Info("[handleUpload] validated %d rows, %d flagged cells", len(g.Rows), len(res.Flags))

	reportPath := a.store.Reserve("validation_report.xlsx")
	// The report is request-scoped; remove it whether or not the send
	// below succeeds.
	defer a.store.Delete(r.Context(), reportPath)

	if err := a.writer.Write(res, reportPath); err != nil {
		writeError(w, errors.Wrap(err, "failed to render report"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="validation_report.xlsx"`)
	http.ServeFile(w, r, reportPath)
}

// handlePreview runs one named check (or the sum aggregation, or the
// full aggregate) and responds with the per-cell JSON preview.
func (a *App) handlePreview(w http.ResponseWriter, r *http.Request) {
	g, cleanup, err := a.ingestWorkbook(w, r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		writeError(w, err)
		return
	}

	selector := r.URL.Query().Get("check")
	res, total := validation.Run(g, selector)
	a.log.Info("[handlePreview] check=%q rows=%d flagged=%d", selector, len(g.Rows), len(res.Flags))

	writeJSON(w, http.StatusOK, buildPreview(res, total))
}

// ingestWorkbook stores the multipart upload, reads it into a grid, and
// enforces the schema precondition. The returned cleanup removes the
// stored upload and must run on every exit path.
func (a *App) ingestWorkbook(w http.ResponseWriter, r *http.Request) (*grid.Grid, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, nil, errors.InvalidInput("no workbook uploaded")
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		return nil, nil, errors.InvalidInput(fmt.Sprintf("unsupported file type %q; upload .xlsx or .csv", ext))
	}

	path, err := a.store.Store(r.Context(), file, header.Filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to store upload")
	}
	cleanup := func() {
		if err := a.store.Delete(r.Context(), path); err != nil {
			a.log.Warn("[ingestWorkbook] cleanup failed for %s: %v", path, err)
		}
	}

	g, err := excel.NewReader(path).ReadGrid()
	if err != nil {
		return nil, cleanup, errors.Wrap(err, "failed to read workbook")
	}

	if missing := schema.MissingColumns(g.Header); len(missing) > 0 {
		return nil, cleanup, errors.SchemaInvalid("missing expected columns: " + strings.Join(missing, ", "))
	}

	return g, cleanup, nil
}

func buildPreview(res *grid.Result, total *float64) PreviewResponse {
	g := res.Grid
	preview := make([]map[string]PreviewCell, len(g.Rows))
	for i, row := range g.Rows {
		cells := make(map[string]PreviewCell, len(g.Header))
		for col, name := range g.Header {
			cell := row[col]
			cells[name] = PreviewCell{
				Value:     cell.Annotated(),
				Highlight: res.Flags.Has(i, name),
			}
		}
		preview[i] = cells
	}

	return PreviewResponse{
		Header:  []string(g.Header),
		Preview: preview,
		Summary: res.Summary,
		Total:   total,
	}
}
