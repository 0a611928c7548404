package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/ideahub/internal/store"
)

// Persister stores the post snapshot in Redis under a single fixed key.
// Snapshots carry no TTL: the last written state survives restarts.
type Persister struct {
	client *redis.Client
}

// NewPersister creates a Redis-backed snapshot persister.
func NewPersister(client *redis.Client) *Persister {
	return &Persister{client: client}
}

// Save serializes the snapshot and overwrites the stored one.
func (p *Persister) Save(ctx context.Context, snap *store.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := p.client.Set(ctx, SnapshotKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Load retrieves the last stored snapshot. Returns (nil, nil) when no
// snapshot exists yet.
func (p *Persister) Load(ctx context.Context) (*store.Snapshot, error) {
	data, err := p.client.Get(ctx, SnapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snap, nil
}
