// Package tracker persists which plan units have already been executed and
// computes the work that remains. The pending computation is a pure diff
// over a plan and a ledger snapshot; because plans are deterministic, a
// re-run after interruption picks up exactly where the last run stopped.
package tracker

import (
	"time"

	"github.com/inkwell-sh/inkwell/internal/plan"
)

// Entry records one completed day.
type Entry struct {
	Commits     int       `json:"commits"`
	CompletedAt time.Time `json:"completedAt"`
}

// Ledger is the persisted completion state: completed commits per date plus
// the time of the most recent run.
type Ledger struct {
	Completed map[string]Entry `json:"completed"`
	LastRun   *time.Time       `json:"lastRun"`
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{Completed: make(map[string]Entry)}
}

// Store is the ledger's backing storage. Implementations load the whole
// ledger and save it whole; a missing or unreadable ledger loads as empty
// rather than failing, so a damaged ledger degrades to redoing work instead
// of crashing.
type Store interface {
	Load() (Ledger, error)
	Save(Ledger) error
	Reset() error
}

// Tracker couples a ledger with its store. The ledger is saved after every
// mutation; durability is preferred over batching at this scale.
type Tracker struct {
	store  Store
	ledger Ledger
}

// New loads the ledger from store and returns a tracker over it.
func New(store Store) (*Tracker, error) {
	ledger, err := store.Load()
	if err != nil {
		return nil, err
	}
	if ledger.Completed == nil {
		ledger.Completed = make(map[string]Entry)
	}
	return &Tracker{store: store, ledger: ledger}, nil
}

// Snapshot returns the current ledger state.
func (t *Tracker) Snapshot() Ledger {
	return t.ledger
}

// Completed returns the commits recorded as done for date, 0 if none.
func (t *Tracker) Completed(date string) int {
	return t.ledger.Completed[date].Commits
}

// MarkCompleted upserts the entry for date with the commits actually made
// and persists the ledger. Callers must pass the achieved count, not the
// requested one, so the ledger never claims more than really happened.
func (t *Tracker) MarkCompleted(date string, commits int) error {
	now := time.Now().UTC()
	t.ledger.Completed[date] = Entry{Commits: commits, CompletedAt: now}
	t.ledger.LastRun = &now
	return t.store.Save(t.ledger)
}

// Reset discards the ledger entirely, in memory and in the store.
func (t *Tracker) Reset() error {
	t.ledger = NewLedger()
	return t.store.Reset()
}

// PendingUnit is a plan unit annotated with how much of it remains.
type PendingUnit struct {
	plan.Unit
	PendingCommits int
	DoneCommits    int
}

// Pending diffs a plan against a ledger snapshot, keeping only units whose
// required commits are not fully recorded. Partially completed days stay
// pending for their shortfall.
func Pending(p plan.Plan, ledger Ledger) []PendingUnit {
	var out []PendingUnit
	for _, u := range p.Units {
		done := ledger.Completed[u.Date].Commits
		remaining := u.Commits - done
		if remaining <= 0 {
			continue
		}
		out = append(out, PendingUnit{
			Unit:           u,
			PendingCommits: remaining,
			DoneCommits:    done,
		})
	}
	return out
}
