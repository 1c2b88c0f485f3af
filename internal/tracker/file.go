package tracker

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileStore persists the ledger as a single JSON file, rewritten whole on
// every save.
type FileStore struct {
	Path string
}

// Load reads the ledger file. A missing or malformed file yields an empty
// ledger: the worst outcome of a damaged ledger is redoing finished days,
// which the executor tolerates.
func (s *FileStore) Load() (Ledger, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return NewLedger(), nil
	}
	var ledger Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return NewLedger(), nil
	}
	if ledger.Completed == nil {
		ledger.Completed = make(map[string]Entry)
	}
	return ledger, nil
}

// Save writes the ledger atomically (write temp + rename).
func (s *FileStore) Save(ledger Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("tracker: marshaling ledger: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("tracker: writing temp ledger: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("tracker: renaming ledger: %w", err)
	}
	return nil
}

// Reset removes the ledger file. A missing file is already reset.
func (s *FileStore) Reset() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tracker: removing ledger: %w", err)
	}
	return nil
}
