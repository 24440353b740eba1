// Package currency holds the currency value type and the pure list
// operations (sort, filter, view) the engine derives its outputs from.
package currency

import (
	"github.com/shopspring/decimal"
)

// Currency is one catalog entry. Code is its identity.
type Currency struct {
	Code        string
	DisplayName string
	FullName    string
	Quote       decimal.Decimal
}

// Dedupe drops later entries whose code was already seen. The input is not modified.
func Dedupe(list []Currency) []Currency {
	seen := make(map[string]struct{}, len(list))
	out := make([]Currency, 0, len(list))
	for _, c := range list {
		if _, ok := seen[c.Code]; ok {
			continue
		}
		seen[c.Code] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Codes returns the codes of list in order.
func Codes(list []Currency) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Code
	}
	return out
}
