// Package jar wires the ledger, the search index and the visualizer into the
// single object the application drives.
package jar

import (
	"fmt"
	"time"

	"github.com/Rshep3087/happyjar/ledger"
	"github.com/Rshep3087/happyjar/search"
	"github.com/Rshep3087/happyjar/visualizer"
	"github.com/google/uuid"
)

// Scene is the visual side of the jar.
type Scene interface {
	Spawn(tier int) (visualizer.Sprite, error)
	Step(dt float64)
	Bodies() []visualizer.Sprite
}

var _ Scene = (*visualizer.Visualizer)(nil)

// Jar owns one ledger and one scene. Calls must be serialised by the caller.
type Jar struct {
	ledger *ledger.Ledger
	scene  Scene
	index  search.Index
}

// Option configures a Jar.
type Option func(*Jar)

// WithLedger uses l instead of a fresh ledger.
func WithLedger(l *ledger.Ledger) Option {
	return func(j *Jar) {
		j.ledger = l
	}
}

// WithScene uses s instead of a default visualizer.
func WithScene(s Scene) Option {
	return func(j *Jar) {
		j.scene = s
	}
}

// WithLocation sets the time zone dates are searched in.
func WithLocation(loc *time.Location) Option {
	return func(j *Jar) {
		j.index = search.NewIndex(loc)
	}
}

// New returns an empty jar.
func New(opts ...Option) *Jar {
	j := &Jar{}
	for _, opt := range opts {
		opt(j)
	}

	if j.ledger == nil {
		j.ledger = ledger.New()
	}
	if j.scene == nil {
		j.scene = visualizer.New(visualizer.DefaultConfig())
	}

	return j
}

// Deposit records an entry and drops its body into the scene. If the body
// cannot be spawned the entry is removed again.
func (j *Jar) Deposit(text string, tier int) (ledger.Entry, error) {
	e, err := j.ledger.Deposit(text, tier)
	if err != nil {
		return ledger.Entry{}, err
	}

	if _, err := j.scene.Spawn(e.Tier); err != nil {
		j.ledger.Delete(e.ID)
		return ledger.Entry{}, fmt.Errorf("deposit: %w", err)
	}

	return e, nil
}

// Withdraw records a withdrawal. The scene is not touched.
func (j *Jar) Withdraw(text string, amount int) (ledger.Entry, error) {
	return j.ledger.Withdraw(text, amount)
}

// Delete removes entries by id. Bodies already in the scene stay there.
func (j *Jar) Delete(ids ...uuid.UUID) int {
	return j.ledger.Delete(ids...)
}

// Balance returns the current balance.
func (j *Jar) Balance() int { return j.ledger.Balance() }

// CanWithdraw reports whether there is anything to withdraw.
func (j *Jar) CanWithdraw() bool { return j.ledger.Balance() > 0 }

// Summary returns ledger totals.
func (j *Jar) Summary() ledger.Summary { return j.ledger.Summary() }

// Entries returns every entry, newest first.
func (j *Jar) Entries() []ledger.Entry { return j.ledger.Entries() }

// Search returns the entries matching query, newest first.
func (j *Jar) Search(query string) []ledger.Entry {
	return j.index.Filter(j.ledger.Entries(), query)
}

// Step advances the scene by dt seconds.
func (j *Jar) Step(dt float64) { j.scene.Step(dt) }

// Bodies returns the scene's render state.
func (j *Jar) Bodies() []visualizer.Sprite { return j.scene.Bodies() }

// Location is the time zone dates are rendered and searched in.
func (j *Jar) Location() *time.Location { return j.index.Location() }
