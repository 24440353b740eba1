package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SanitizeAmount keeps free-form amount input parseable: a comma counts as
// the decimal separator, and if the text still isn't a number the last
// character typed is dropped.
func SanitizeAmount(s string) string {
	if s == "" {
		return s
	}
	if _, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ".")); err == nil {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}

// ParseAmount parses sanitized input, treating a comma as the decimal point.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
