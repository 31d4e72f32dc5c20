package ledger

import "github.com/Rhymond/go-money"

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = money.JPY

// Money converts a jar amount, counted in whole units of currency, to a
// money value for display.
func Money(amount int, currency string) *money.Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return money.NewFromFloat(float64(amount), currency)
}
