package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/MrSnakeDoc/ideahub/internal/store"
)

// Persister stores the post snapshot as a JSON file, written atomically so
// a crash mid-write never leaves a corrupt snapshot behind. Used for
// standalone runs where no Redis is available.
type Persister struct {
	path string
}

// NewPersister creates a file-backed snapshot persister.
func NewPersister(path string) *Persister {
	return &Persister{path: path}
}

// Save writes the snapshot via an atomic rename.
func (p *Persister) Save(_ context.Context, snap *store.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := atomic.WriteFile(p.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return nil
}

// Load reads the last stored snapshot. Returns (nil, nil) when the file
// does not exist yet.
func (p *Persister) Load(_ context.Context) (*store.Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snap, nil
}
