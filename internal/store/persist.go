package store

import (
	"context"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
)

// Snapshot is the persisted unit: the full collection plus the selection.
// Serialized as JSON; time.Time fields round-trip at RFC3339-nano fidelity.
type Snapshot struct {
	Posts      []*domain.Post `json:"posts"`
	SelectedID string         `json:"selectedPost,omitempty"`
}

// Persister is the external key-value collaborator holding the snapshot
// under a single fixed key.
//
// Save is best-effort from the store's perspective: failures are logged and
// swallowed, never surfaced to the user. Load returns (nil, nil) when no
// snapshot has been stored yet.
type Persister interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}
