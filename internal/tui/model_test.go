package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-sh/inkwell/internal/plan"
	"github.com/inkwell-sh/inkwell/internal/tracker"
)

// memStore is an in-memory tracker.Store for tests.
type memStore struct {
	ledger  tracker.Ledger
	loadErr error
}

func (m *memStore) Load() (tracker.Ledger, error) {
	if m.loadErr != nil {
		return tracker.NewLedger(), m.loadErr
	}
	return m.ledger, nil
}
func (m *memStore) Save(l tracker.Ledger) error { m.ledger = l; return nil }
func (m *memStore) Reset() error                { m.ledger = tracker.NewLedger(); return nil }

func testPlan() plan.Plan {
	return plan.Plan{
		Text: "HI",
		Year: 2026,
		Units: []plan.Unit{
			{Date: "2026-01-05", Commits: 20, Char: "H", Row: 1, Col: 1},
			{Date: "2026-01-06", Commits: 20, Char: "H", Row: 2, Col: 1},
		},
	}
}

func TestNewModelComputesPending(t *testing.T) {
	t.Parallel()

	m := NewModel(testPlan(), &memStore{ledger: tracker.NewLedger()})
	if len(m.Pending) != 2 {
		t.Errorf("pending = %d, want 2", len(m.Pending))
	}
}

func TestModelRefreshOnLedgerChange(t *testing.T) {
	t.Parallel()

	store := &memStore{ledger: tracker.NewLedger()}
	m := NewModel(testPlan(), store)

	now := time.Now()
	store.ledger.Completed = map[string]tracker.Entry{
		"2026-01-05": {Commits: 20, CompletedAt: now},
	}

	updated, _ := m.Update(MsgLedgerChanged{})
	got := updated.(Model)
	if len(got.Pending) != 1 {
		t.Errorf("pending after change = %d, want 1", len(got.Pending))
	}
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	m := NewModel(testPlan(), &memStore{ledger: tracker.NewLedger()})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("got %T, want tea.QuitMsg", msg)
	}
}

func TestModelViewShowsProgress(t *testing.T) {
	t.Parallel()

	m := NewModel(testPlan(), &memStore{ledger: tracker.NewLedger()})
	view := m.View()
	if !strings.Contains(view, "0/2 day(s) done") {
		t.Errorf("view missing progress line:\n%s", view)
	}
	if !strings.Contains(view, `"HI"`) {
		t.Errorf("view missing plan title:\n%s", view)
	}
}

func TestModelViewLedgerError(t *testing.T) {
	t.Parallel()

	m := NewModel(testPlan(), &memStore{loadErr: errors.New("locked")})
	if !strings.Contains(m.View(), "ledger unreadable") {
		t.Error("view should surface a ledger load error")
	}
}

func TestModelViewEmptyPlan(t *testing.T) {
	t.Parallel()

	m := NewModel(plan.Plan{Text: "", Year: 2026}, &memStore{ledger: tracker.NewLedger()})
	if !strings.Contains(m.View(), "empty plan") {
		t.Error("view should state the plan is empty")
	}
}
