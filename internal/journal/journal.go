// Package journal provides a JSONL event stream recording what a run did:
// when it started, each unit executed with its actual commit count, and how
// the run ended. The journal is append-only, so interrupted runs leave an
// auditable trail that lines up with the tracker's ledger.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds.
const (
	KindRunStart = "run_start"
	KindUnitDone = "unit_done"
	KindRunDone  = "run_done"
)

// Event is a single journal record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Date      string    `json:"date,omitempty"`
	Char      string    `json:"char,omitempty"`
	Requested int       `json:"requested,omitempty"`
	Made      int       `json:"made,omitempty"`
	Err       string    `json:"err,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter appends JSONL events to a file. It is safe for concurrent use.
// A nil *Emitter is a valid no-op emitter, so callers never need to branch
// on whether journaling is enabled.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// NewEmitter opens (or creates) the journal file at path for appending.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	return &Emitter{file: f, enc: json.NewEncoder(f)}, nil
}

// Emit writes one event with the current timestamp filled in.
func (e *Emitter) Emit(ev Event) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	ev.Timestamp = time.Now().UTC()
	// An unwritable journal should never abort a run; the ledger is the
	// source of truth, the journal is the narrative.
	_ = e.enc.Encode(ev)
}

// RunStart records the beginning of a run over pending units.
func (e *Emitter) RunStart(text string, year, pending int) {
	e.Emit(Event{Kind: KindRunStart, Data: map[string]any{
		"text":    text,
		"year":    year,
		"pending": pending,
	}})
}

// UnitDone records one executed unit with the count actually achieved.
func (e *Emitter) UnitDone(date, char string, requested, made int, err error) {
	ev := Event{Kind: KindUnitDone, Date: date, Char: char, Requested: requested, Made: made}
	if err != nil {
		ev.Err = err.Error()
	}
	e.Emit(ev)
}

// RunDone records the end of a run.
func (e *Emitter) RunDone(executed int, err error) {
	ev := Event{Kind: KindRunDone, Data: map[string]any{"executed": executed}}
	if err != nil {
		ev.Err = err.Error()
	}
	e.Emit(ev)
}

// Close flushes and closes the journal file.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	return e.file.Close()
}
