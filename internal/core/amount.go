// Package core provides the domain model for the finance tracker and the
// pure derived-data computations over it.
//
// This file contains best-effort parsing of user-entered amount strings.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts a decimal string to a float64. It accepts both dot
// (12.34) and comma (12,34) separators. Anything unparseable yields 0: a
// malformed amount must never abort an aggregate computation, it just
// contributes nothing to the sum.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a value the way the summaries display it, with two
// decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
