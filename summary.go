package main

import (
	"github.com/Rshep3087/happyjar/ledger"
)

// SummaryJSON is a jar summary with amounts formatted for output.
type SummaryJSON struct {
	Balance     string `json:"balance"`
	Deposited   string `json:"deposited"`
	Withdrawn   string `json:"withdrawn"`
	Currency    string `json:"currency"`
	Deposits    int    `json:"deposits"`
	Withdrawals int    `json:"withdrawals"`
}

// newSummaryJSON formats s in currency.
func newSummaryJSON(s ledger.Summary, currency string) SummaryJSON {
	if currency == "" {
		currency = ledger.DefaultCurrency
	}

	return SummaryJSON{
		Balance:     ledger.Money(s.Balance, currency).Display(),
		Deposited:   ledger.Money(s.Deposited, currency).Display(),
		Withdrawn:   ledger.Money(s.Withdrawn, currency).Display(),
		Currency:    currency,
		Deposits:    s.Deposits,
		Withdrawals: s.Withdrawals,
	}
}
