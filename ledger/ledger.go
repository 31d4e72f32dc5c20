// Package ledger holds the ordered collection of jar entries and derives the
// balance from them.
//
// A Ledger performs no locking; the owner serialises calls.
package ledger

import (
	"slices"
	"strings"
	"time"

	"github.com/Rshep3087/happyjar/level"
	"github.com/google/uuid"
)

// Ledger is a newest-first sequence of entries.
type Ledger struct {
	entries []Entry
	now     func() time.Time
	newID   func() uuid.UUID
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the time source used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator sets the identifier source used for new entries.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

// New creates an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   time.Now,
		newID: uuid.New,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Deposit records a happiness event of the given tier.
func (l *Ledger) Deposit(text string, tier int) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, invalid("text", ErrEmptyText)
	}
	if !level.Valid(tier) {
		return Entry{}, invalid("tier", ErrTierOutOfRange)
	}

	e := Entry{
		ID:        l.newID(),
		Timestamp: l.now(),
		Text:      text,
		Tier:      tier,
	}
	l.prepend(e)

	return e, nil
}

// Withdraw records spending amount out of the current balance.
func (l *Ledger) Withdraw(text string, amount int) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, invalid("text", ErrEmptyText)
	}
	if amount <= 0 {
		return Entry{}, invalid("amount", ErrNonPositiveAmount)
	}
	if amount > l.Balance() {
		return Entry{}, invalid("amount", ErrInsufficientBalance)
	}

	e := Entry{
		ID:           l.newID(),
		Timestamp:    l.now(),
		Text:         text,
		IsWithdrawal: true,
		Amount:       amount,
	}
	l.prepend(e)

	return e, nil
}

func (l *Ledger) prepend(e Entry) {
	l.entries = slices.Insert(l.entries, 0, e)
}

// Balance folds every entry's value. It is recomputed on each call.
func (l *Ledger) Balance() int {
	balance := 0
	for _, e := range l.entries {
		balance += e.Value()
	}
	return balance
}

// Delete removes the entries with the given ids and returns how many were
// removed. Unknown ids are ignored.
func (l *Ledger) Delete(ids ...uuid.UUID) int {
	if len(ids) == 0 {
		return 0
	}

	before := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e Entry) bool {
		return slices.Contains(ids, e.ID)
	})

	return before - len(l.entries)
}

// Entries returns a copy of the entries, newest first.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Get looks up an entry by id.
func (l *Ledger) Get(id uuid.UUID) (Entry, bool) {
	i := slices.IndexFunc(l.entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Summary aggregates the ledger into totals.
type Summary struct {
	Deposited   int
	Withdrawn   int
	Balance     int
	Deposits    int
	Withdrawals int
}

// Summary totals deposits and withdrawals. Balance equals Deposited minus
// Withdrawn.
func (l *Ledger) Summary() Summary {
	var s Summary
	for _, e := range l.entries {
		if e.IsWithdrawal {
			s.Withdrawn += e.Amount
			s.Withdrawals++
			continue
		}
		s.Deposited += e.Value()
		s.Deposits++
	}
	s.Balance = s.Deposited - s.Withdrawn
	return s
}
