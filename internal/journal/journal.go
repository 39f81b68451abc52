// Package journal appends a JSONL record of every catalog mutation made by
// menu-utils, so edits to a shared menu file can be audited after the fact.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Event kinds.
const (
	KindProcessedAdded = "processed_added"
)

// Event is one journal line.
type Event struct {
	Timestamp   time.Time `json:"ts"`
	Kind        string    `json:"kind"`
	Path        string    `json:"path"`
	Item        string    `json:"item"`
	Ingredient  string    `json:"ingredient"`
	CreatedItem bool      `json:"created_item,omitempty"`
	Forced      bool      `json:"forced,omitempty"`
}

// Journal writes events to a JSONL file. A nil *Journal is a valid no-op
// journal.
type Journal struct {
	file *os.File
	enc  *json.Encoder
	now  func() time.Time
}

// Open creates or appends to the journal file at path.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	return &Journal{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// Record stamps evt with the current time when unset and appends it.
// Calling Record on a nil Journal is a no-op.
func (j *Journal) Record(evt Event) error {
	if j == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = j.now().UTC()
	}
	if err := j.enc.Encode(evt); err != nil {
		return fmt.Errorf("journal: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file. Calling Close on a nil Journal is a no-op.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	if err := j.file.Close(); err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}
