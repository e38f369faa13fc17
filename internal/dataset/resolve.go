package dataset

import (
	"strconv"
	"strings"
)

// Number resolves the first key containing keyPart (case-insensitive) and
// parses its cell as a decimal number. Returns 0 when no key matches or the
// cell is unparsable; a miss is a documented default, not an error.
func Number(r *Row, keyPart string) float64 {
	k, ok := r.match(keyPart)
	if !ok {
		return 0
	}
	v, _ := r.Get(k)
	if v.Numeric {
		return v.Num
	}
	return parseNumberOrDefault(v.Raw)
}

// Text resolves like Number but returns the matched cell's string form, or
// "" when no key matches.
func Text(r *Row, keyPart string) string {
	k, ok := r.match(keyPart)
	if !ok {
		return ""
	}
	v, _ := r.Get(k)
	return strings.TrimSpace(v.String())
}

// firstNumber tries keyPart candidates in priority order and returns the
// first non-zero resolution.
func firstNumber(r *Row, keyParts ...string) float64 {
	for _, p := range keyParts {
		if v := Number(r, p); v != 0 {
			return v
		}
	}
	return 0
}

// firstText tries keyPart candidates in priority order and returns the
// first non-empty resolution.
func firstText(r *Row, keyParts ...string) string {
	for _, p := range keyParts {
		if v := Text(r, p); v != "" {
			return v
		}
	}
	return ""
}

// parseNumberOrDefault parses a decimal cell best-effort, tolerating
// percent signs, comma decimal separators and surrounding noise. A bad cell
// yields 0 rather than an error; one bad cell never aborts a batch.
func parseNumberOrDefault(s string) float64 {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
