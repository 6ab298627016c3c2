package ui

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"valuecheck/domain/schema"
)

func jsonDecode(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

// columnOf returns the 1-based column number of a schema field in the
// generated report, which lays columns out in schema order.
func columnOf(t *testing.T, field string) int {
	t.Helper()
	for i, name := range schema.ExpectedColumns() {
		if name == field {
			return i + 1
		}
	}
	t.Fatalf("unknown field %q", field)
	return 0
}

func cellRef(t *testing.T, col, row int) string {
	t.Helper()
	ref, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return ref
}
