package grid

import "strings"

// Header is the ordered list of column names read from row 1 of an upload.
type Header []string

// IndexOf returns the position of a column in the header, or -1 when the
// column is absent. Lookup is exact after trimming, matching how headers
// are normalized at read time.
func (h Header) IndexOf(column string) int {
	for i, name := range h {
		if name == column {
			return i
		}
	}
	return -1
}

// Cell holds one spreadsheet cell together with its validation diagnostics.
//
// Original is the raw text as uploaded and is never changed. Value starts
// equal to Original and changes only when a validator normalizes it (the
// inspection-date auto-fix). Messages accumulates one entry per rule
// violation, in validator order.
type Cell struct {
	Original string   `json:"original"`
	Value    string   `json:"value"`
	Messages []string `json:"messages,omitempty"`
}

// NewCell builds a cell from raw uploaded text.
func NewCell(raw string) Cell {
	return Cell{Original: raw, Value: raw}
}

// AddMessage records one rule violation against the cell.
func (c *Cell) AddMessage(msg string) {
	c.Messages = append(c.Messages, msg)
}

// Annotated renders the cell the way the legacy pipe-trail format did:
// the current value followed by every message, joined with " | ". A value
// that is blank or the literal "nan" collapses so the trail starts at the
// first message.
func (c *Cell) Annotated() string {
	out := c.Value
	for _, msg := range c.Messages {
		out = AppendMessage(out, msg)
	}
	return out
}

// AppendMessage joins a violation message onto an existing cell text.
// A blank or "nan" existing text is replaced outright rather than
// prefixed, so trails never start with a dangling separator.
func AppendMessage(existing, message string) string {
	trimmed := strings.TrimSpace(existing)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return message
	}
	return existing + " | " + message
}

// Row is one data row, positionally aligned to the header. Cells absent
// from the upload are materialized as empty cells at read time so every
// row has exactly len(header) cells.
type Row []Cell

// Grid is the request-scoped unit of work the validators operate on.
// It lives for one upload and is never persisted.
type Grid struct {
	Header Header
	Rows   []Row
}

// New builds a grid from raw uploaded text. Rows shorter than the header
// are padded with empty cells; cells beyond the header width are dropped.
func New(header Header, rows [][]string) *Grid {
	g := &Grid{Header: header, Rows: make([]Row, len(rows))}
	for i, raw := range rows {
		row := make(Row, len(header))
		for j := range header {
			if j < len(raw) {
				row[j] = NewCell(raw[j])
			} else {
				row[j] = NewCell("")
			}
		}
		g.Rows[i] = row
	}
	return g
}

// Cell returns the cell for a (row, column-name) pair, or nil when the
// column is not part of the header. Validators use this to address cells
// by field name rather than position.
func (g *Grid) Cell(row int, column string) *Cell {
	idx := g.Header.IndexOf(column)
	if idx < 0 || row < 0 || row >= len(g.Rows) {
		return nil
	}
	return &g.Rows[row][idx]
}
