package ledger

import (
	"time"

	"github.com/Rshep3087/happyjar/level"
	"github.com/google/uuid"
)

// Entry is one recorded event in the jar: a deposit of happiness or a
// withdrawal against the balance. Entries are never edited in place.
type Entry struct {
	ID        uuid.UUID
	Timestamp time.Time
	Text      string
	// Tier is 1..5 for deposits and 0 for withdrawals.
	Tier         int
	IsWithdrawal bool
	// Amount is only set on withdrawals.
	Amount int
}

// Value is the signed contribution of the entry to the balance.
func (e Entry) Value() int {
	if e.IsWithdrawal {
		return -e.Amount
	}
	return level.DisplayValue(e.Tier)
}
