package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("bad journal line %q: %v", scanner.Text(), err)
		}
		events = append(events, ev)
	}
	return events
}

func TestEmitterWritesJSONL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.jsonl")
	e, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	e.RunStart("HI", 2026, 28)
	e.UnitDone("2026-01-05", "H", 20, 20, nil)
	e.UnitDone("2026-01-06", "", 5, 2, errors.New("boom"))
	e.RunDone(2, nil)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	events := readEvents(t, path)
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[0].Kind != KindRunStart || events[3].Kind != KindRunDone {
		t.Errorf("kinds = %s .. %s", events[0].Kind, events[3].Kind)
	}
	if events[1].Date != "2026-01-05" || events[1].Made != 20 {
		t.Errorf("unit event = %+v", events[1])
	}
	if events[2].Err != "boom" || events[2].Made != 2 {
		t.Errorf("failed unit event = %+v", events[2])
	}
	for i, ev := range events {
		if ev.Timestamp.IsZero() {
			t.Errorf("event %d has zero timestamp", i)
		}
	}
}

func TestEmitterAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.jsonl")
	for i := 0; i < 2; i++ {
		e, err := NewEmitter(path)
		if err != nil {
			t.Fatalf("NewEmitter: %v", err)
		}
		e.RunStart("HI", 2026, 1)
		e.Close()
	}
	if got := len(readEvents(t, path)); got != 2 {
		t.Errorf("got %d events after two sessions, want 2", got)
	}
}

func TestNilEmitterIsNoop(t *testing.T) {
	t.Parallel()

	var e *Emitter
	e.RunStart("HI", 2026, 1)
	e.UnitDone("2026-01-05", "H", 1, 1, nil)
	e.RunDone(1, nil)
	if err := e.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
