package normalize

import (
	"strconv"
	"strings"
)

// ParseAmount coerces a textual monetary or quantity field to a float.
// Returns nil for missing or unparseable values so that "no data" stays
// distinguishable from zero.
func ParseAmount(v *string) *float64 {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// RenderAmount formats an averaged amount for the consolidated artifact,
// substituting the comma decimal separator used downstream. Whole-number
// means keep a trailing ",0" so the column reads uniformly as a decimal.
// Missing amounts render as the empty string.
func RenderAmount(v *float64) string {
	if v == nil {
		return ""
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return strings.ReplaceAll(s, ".", ",")
}
