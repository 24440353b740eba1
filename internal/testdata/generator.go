package testdata

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/jask/jaskfx/internal/currency"
)

// Saver is what Seed writes to; repository.CurrencyRepo satisfies it.
type Saver interface {
	SaveAll(ctx context.Context, list []currency.Currency) error
}

var sample = []struct {
	code, name, full string
	quote            string
}{
	{"USD", "Dollar", "United States Dollar", "1"},
	{"EUR", "Euro", "Euro", "0.92"},
	{"GBP", "Pound", "British Pound Sterling", "0.79"},
	{"JPY", "Yen", "Japanese Yen", "151.37"},
	{"AUD", "Dollar", "Australian Dollar", "1.52"},
	{"CAD", "Dollar", "Canadian Dollar", "1.36"},
	{"CHF", "Franc", "Swiss Franc", "0.90"},
	{"BRL", "Real", "Brazilian Real", "5.05"},
	{"INR", "Rupee", "Indian Rupee", "83.40"},
	{"MXN", "Peso", "Mexican Peso", "16.70"},
	{"SEK", "Krona", "Swedish Krona", "10.60"},
	{"ZAR", "Rand", "South African Rand", "18.70"},
}

// Catalog returns a fixed sample catalog against USD.
func Catalog() []currency.Currency {
	out := make([]currency.Currency, 0, len(sample))
	for _, s := range sample {
		out = append(out, currency.Currency{
			Code:        s.code,
			DisplayName: s.name,
			FullName:    s.full,
			Quote:       decimal.RequireFromString(s.quote),
		})
	}
	return out
}

// Jitter returns the sample catalog in shuffled order with quotes moved by
// up to ±2%, so repeated seeds look like successive fetches.
func Jitter(r *rand.Rand) []currency.Currency {
	list := Catalog()
	r.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	for i := range list {
		if list[i].Code == "USD" {
			continue
		}
		pct := decimal.NewFromInt(int64(r.Intn(401) - 200)).Shift(-4)
		list[i].Quote = list[i].Quote.Mul(decimal.NewFromInt(1).Add(pct)).Round(4)
	}
	return list
}

// Seed saves a sample catalog so the app has something to fall back on
// without network access.
func Seed(ctx context.Context, s Saver, r *rand.Rand) error {
	if r == nil {
		return s.SaveAll(ctx, Catalog())
	}
	return s.SaveAll(ctx, Jitter(r))
}
