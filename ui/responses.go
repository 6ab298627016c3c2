package ui

import (
	"encoding/json"
	"net/http"

	"valuecheck/internal"
	"valuecheck/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		internal.DefaultLogger.Error("[writeJSON] failed to encode response: %v", err)
	}
}

// writeError maps the two boundary error classes onto HTTP statuses: a
// schema precondition failure carries its specific message back to the
// caller, everything else is surfaced generically.
func writeError(w http.ResponseWriter, err error) {
	switch errors.GetCode(err) {
	case errors.CodeSchemaInvalid, errors.CodeInvalidInput:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		internal.DefaultLogger.Error("[writeError] processing failure: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to process workbook"})
	}
}
