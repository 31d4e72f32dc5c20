package ledger

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/google/uuid"
)

func newTestLedger() *Ledger {
	now := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
	return New(WithClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	}))
}

func sumValues(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Value()
	}
	return total
}

func TestDeposit(t *testing.T) {
	l := newTestLedger()

	e, err := l.Deposit("  Had coffee with Mia \n", 3)
	be.NilErr(t, err)
	be.Equal(t, "Had coffee with Mia", e.Text)
	be.Equal(t, 3, e.Tier)
	be.False(t, e.IsWithdrawal)
	be.Equal(t, 50, e.Value())
	be.Equal(t, 50, l.Balance())

	second, err := l.Deposit("sunny walk", 1)
	be.NilErr(t, err)
	be.Equal(t, second.ID, l.Entries()[0].ID)
	be.Equal(t, e.ID, l.Entries()[1].ID)
	be.True(t, second.Timestamp.After(e.Timestamp))
}

func TestDepositValidation(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		tier  int
		field string
		err   error
	}{
		{name: "empty text", text: "", tier: 1, field: "text", err: ErrEmptyText},
		{name: "whitespace text", text: " \t\n", tier: 2, field: "text", err: ErrEmptyText},
		{name: "tier zero", text: "cake", tier: 0, field: "tier", err: ErrTierOutOfRange},
		{name: "tier six", text: "cake", tier: 6, field: "tier", err: ErrTierOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			_, err := l.Deposit(tt.text, tt.tier)

			var verr *ValidationError
			be.True(t, errors.As(err, &verr))
			be.Equal(t, tt.field, verr.Field)
			be.True(t, errors.Is(err, tt.err))
			be.Equal(t, 0, l.Len())
		})
	}
}

func TestWithdraw(t *testing.T) {
	l := newTestLedger()
	_, err := l.Deposit("finished a book", 4)
	be.NilErr(t, err)

	e, err := l.Withdraw(" flowers for mum ", 30)
	be.NilErr(t, err)
	be.True(t, e.IsWithdrawal)
	be.Equal(t, 0, e.Tier)
	be.Equal(t, -30, e.Value())
	be.Equal(t, "flowers for mum", e.Text)
	be.Equal(t, 70, l.Balance())

	// the whole remaining balance can be withdrawn
	_, err = l.Withdraw("dinner", 70)
	be.NilErr(t, err)
	be.Equal(t, 0, l.Balance())
}

func TestWithdrawRejectsOverBalance(t *testing.T) {
	l := newTestLedger()
	_, _ = l.Deposit("a", 2)
	_, _ = l.Deposit("b", 3)

	before := l.Entries()
	_, err := l.Withdraw("too much", l.Balance()+1)
	be.True(t, errors.Is(err, ErrInsufficientBalance))
	be.AllEqual(t, before, l.Entries())
	be.Equal(t, 60, l.Balance())
}

func TestWithdrawValidation(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		amount int
		err    error
	}{
		{name: "empty text", text: "  ", amount: 1, err: ErrEmptyText},
		{name: "zero amount", text: "gift", amount: 0, err: ErrNonPositiveAmount},
		{name: "negative amount", text: "gift", amount: -5, err: ErrNonPositiveAmount},
		{name: "empty ledger", text: "gift", amount: 1, err: ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger()
			_, err := l.Withdraw(tt.text, tt.amount)
			be.True(t, errors.Is(err, tt.err))
			be.Equal(t, 0, l.Len())
		})
	}
}

func TestBalanceMatchesEntrySum(t *testing.T) {
	l := newTestLedger()
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		if rng.IntN(3) == 0 && l.Balance() > 0 {
			amount := 1 + rng.IntN(l.Balance()+5)
			before := sumValues(l.Entries())
			_, err := l.Withdraw("spend", amount)
			be.Equal(t, amount > before, errors.Is(err, ErrInsufficientBalance))
		} else {
			tier := rng.IntN(7)
			_, err := l.Deposit("joy", tier)
			be.Equal(t, tier < 1 || tier > 5, errors.Is(err, ErrTierOutOfRange))
		}
		be.Equal(t, sumValues(l.Entries()), l.Balance())
		be.True(t, l.Balance() >= 0)
	}
}

func TestDelete(t *testing.T) {
	l := newTestLedger()
	keep, _ := l.Deposit("keep", 1)
	drop, _ := l.Deposit("drop", 5)

	removed := l.Delete(drop.ID, uuid.New())
	be.Equal(t, 1, removed)
	be.Equal(t, 1, l.Len())
	be.Equal(t, 5, l.Balance())

	_, ok := l.Get(drop.ID)
	be.False(t, ok)
	got, ok := l.Get(keep.ID)
	be.True(t, ok)
	be.Equal(t, keep, got)

	// deleting again is a no-op
	be.Equal(t, 0, l.Delete(drop.ID))
	be.Equal(t, 1, l.Len())
	be.Equal(t, 0, l.Delete())
}

func TestDeleteCanMakeBalanceNegative(t *testing.T) {
	l := newTestLedger()
	dep, _ := l.Deposit("bonus", 3)
	_, err := l.Withdraw("treat", 40)
	be.NilErr(t, err)

	l.Delete(dep.ID)
	be.Equal(t, -40, l.Balance())
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := newTestLedger()
	_, _ = l.Deposit("original", 2)

	entries := l.Entries()
	entries[0].Text = "mutated"

	be.Equal(t, "original", l.Entries()[0].Text)
}

func TestSummary(t *testing.T) {
	l := newTestLedger()
	_, _ = l.Deposit("a", 5)
	_, _ = l.Deposit("b", 2)
	_, _ = l.Withdraw("c", 100)

	s := l.Summary()
	be.Equal(t, Summary{Deposited: 510, Withdrawn: 100, Balance: 410, Deposits: 2, Withdrawals: 1}, s)
	be.Equal(t, l.Balance(), s.Balance)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "amount", Err: ErrNonPositiveAmount}
	be.Equal(t, "invalid amount: amount must be greater than zero", err.Error())
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   int
		currency string
		expected string
	}{
		{amount: 500, currency: "JPY", expected: "¥500"},
		{amount: 1234, currency: "JPY", expected: "¥1,234"},
		{amount: 5, currency: "USD", expected: "$5.00"},
		{amount: -20, currency: "", expected: "-¥20"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.expected, Money(tt.amount, tt.currency).Display())
	}
}
