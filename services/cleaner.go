package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// priceRegexp captures the first numeric value with at most one decimal point.
var priceRegexp = regexp.MustCompile(`\d+(?:\.\d+)?`)

// CleanText strips leading/trailing whitespace and collapses internal
// whitespace runs to a single space. Empty input stays empty.
func CleanText(s string) string {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}

// ParsePrice extracts a numeric price from a currency-formatted string.
// Currency symbols and thousands separators are stripped first, so
// "$1,234.56" parses as 1234.56. When no numeric value is present the
// price defaults to 0 — callers treat that as "unknown", not as an error.
// Examples:
//
//	"$45.99"    → 45.99
//	"USD 99"    → 99
//	"$1,234.56" → 1234.56
//	"Free"      → 0
func ParsePrice(raw string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	match := priceRegexp.FindString(cleaned)
	if match == "" {
		return 0
	}

	val, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return val
}
