package validation

import (
	"strconv"
	"strings"
)

// IsEmpty reports whether a cell value counts as missing data: absent or
// blank after trimming. A literal "0" or "n/a" (any case) is a legitimate
// value, not a missing-data marker, and is never empty.
func IsEmpty(v string) bool {
	return strings.TrimSpace(v) == ""
}

// ToInt coerces a cell value to a base-10 integer. A single trailing ".0"
// is tolerated as an integer written with a spurious decimal; any other
// decimal point fails the coercion.
func ToInt(v string) (int, bool) {
	s := strings.TrimSpace(v)
	if IsEmpty(s) {
		return 0, false
	}
	s = strings.TrimSuffix(s, ".0")
	if strings.Contains(s, ".") {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToFloat coerces a cell value to a floating-point number.
func ToFloat(v string) (float64, bool) {
	s := strings.TrimSpace(v)
	if IsEmpty(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NumericPrefix returns the text before the first "|", trimmed. Legacy
// uploads carried message trails inside the cell text; comparisons and
// totals only ever look at the prefix.
func NumericPrefix(v string) string {
	if i := strings.Index(v, "|"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// approachSelected reports whether a market_approach value resolves to a
// non-zero integer. Parsing is float-then-truncate on purpose: "1.7"
// selects an approach while "0.5" and unparsable text do not. This is
// deliberately looser than ToInt.
func approachSelected(v string) bool {
	if IsEmpty(v) {
		return false
	}
	f, ok := ToFloat(v)
	if !ok {
		return false
	}
	return int(f) != 0
}
