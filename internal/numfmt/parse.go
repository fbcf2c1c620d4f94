// Package numfmt converts between locale-ambiguous numeric strings and
// float64 values, and formats numbers for the two display locales.
package numfmt

import (
	"strconv"
	"strings"
)

// Parse converts a numeric string using either the Brazilian ("1.234,56")
// or the US/European ("1,234.56") convention into a float64. It never
// fails: blank or unparseable input yields 0.
//
// The heuristic looks at the last comma and the last dot. When the comma
// comes later it is the decimal separator and all dots are thousands
// separators. Otherwise commas are thousands separators, and if more than
// one dot remains the dots are thousands separators too.
//
// A string like "1.234" (single dot, no comma) is inherently ambiguous;
// it is read as the decimal fraction 1.234, not as one thousand two
// hundred thirty-four.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	if lastComma > lastDot {
		// Comma-decimal convention: "1.234,56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
		if strings.Count(s, ".") > 1 {
			// "1.234.567" — the dots can only be thousands separators.
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
