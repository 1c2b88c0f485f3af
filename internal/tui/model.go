// Package tui is the live status view: the heatmap preview next to the
// tracker's progress, refreshing whenever the ledger file changes.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-sh/inkwell/internal/plan"
	"github.com/inkwell-sh/inkwell/internal/tracker"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Faint(true)
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// KeyMap holds the key bindings for the status view.
type KeyMap struct {
	Quit    key.Binding
	Refresh key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// MsgLedgerChanged signals that the ledger file was modified on disk.
type MsgLedgerChanged struct{}

// Model is the status view state. The plan is fixed for the session; only
// the ledger is reloaded.
type Model struct {
	Plan    plan.Plan
	Stats   plan.Stats
	Grid    [][]int
	Keys    KeyMap
	Store   tracker.Store
	Pending []tracker.PendingUnit

	refreshedAt time.Time
	width       int
	loadErr     error
}

// NewModel builds the status view for a plan over a ledger store.
func NewModel(p plan.Plan, store tracker.Store) Model {
	m := Model{
		Plan:  p,
		Stats: plan.Summarize(p),
		Grid:  plan.BuildGrid(p),
		Keys:  DefaultKeyMap(),
		Store: store,
	}
	m.refresh()
	return m
}

// refresh reloads the ledger and recomputes the pending set.
func (m *Model) refresh() {
	ledger, err := m.Store.Load()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.Pending = tracker.Pending(m.Plan, ledger)
	m.refreshedAt = time.Now()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Refresh):
			m.refresh()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case MsgLedgerChanged:
		m.refresh()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("inkwell — %q in %d", m.Plan.Text, m.Plan.Year)))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteByte('\n')
	b.WriteString(m.renderProgress())
	b.WriteByte('\n')
	b.WriteString(subtleStyle.Render(fmt.Sprintf("refreshed %s · q quit · r refresh",
		m.refreshedAt.Format("15:04:05"))))
	b.WriteByte('\n')
	return b.String()
}

// renderGrid draws the 7×53 preview with pending glyph cells dimmed and
// completed ones bright.
func (m Model) renderGrid() string {
	pendingByDate := make(map[string]bool, len(m.Pending))
	for _, u := range m.Pending {
		pendingByDate[u.Date] = true
	}
	cellDone := make(map[[2]int]bool)
	for _, u := range m.Plan.Units {
		if u.Row < 0 || u.Col < 0 {
			continue
		}
		if !pendingByDate[u.Date] {
			cellDone[[2]int{u.Row, u.Col}] = true
		}
	}

	var b strings.Builder
	for r, row := range m.Grid {
		for c, commits := range row {
			switch {
			case commits == 0:
				b.WriteString(subtleStyle.Render("··"))
			case cellDone[[2]int{r, c}]:
				b.WriteString(doneStyle.Render("██"))
			default:
				b.WriteString(filledStyle.Render("▒▒"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderProgress summarizes completion over the whole plan, background
// filler included.
func (m Model) renderProgress() string {
	if m.loadErr != nil {
		return fmt.Sprintf("ledger unreadable: %v", m.loadErr)
	}
	total := len(m.Plan.Units)
	done := total - len(m.Pending)
	if total == 0 {
		return subtleStyle.Render("empty plan — nothing to do")
	}
	if len(m.Pending) == 0 {
		return doneStyle.Render(fmt.Sprintf("complete — all %d day(s) executed", total))
	}
	remaining := 0
	for _, u := range m.Pending {
		remaining += u.PendingCommits
	}
	return fmt.Sprintf("%d/%d day(s) done · %d commit(s) remaining", done, total, remaining)
}

// NewProgram wires the model and the ledger watcher into a BubbleTea
// program. The watcher goroutine forwards change events until the program
// exits.
func NewProgram(p plan.Plan, store tracker.Store, ledgerPath string) (*tea.Program, *Watcher, error) {
	w, err := NewWatcher(ledgerPath)
	if err != nil {
		return nil, nil, err
	}
	if err := w.Start(); err != nil {
		return nil, nil, err
	}

	prog := tea.NewProgram(NewModel(p, store), tea.WithAltScreen())
	go func() {
		for range w.Changes {
			prog.Send(MsgLedgerChanged{})
		}
	}()
	return prog, w, nil
}
