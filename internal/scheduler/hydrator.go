package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/ideahub/internal/logger"
	"github.com/MrSnakeDoc/ideahub/internal/seed"
	"github.com/MrSnakeDoc/ideahub/internal/store"
)

// Hydrator loads the persisted snapshot into the store on startup,
// falling back to seed posts when nothing has been persisted yet.
type Hydrator struct {
	persister store.Persister
	store     *store.Store
	seedFile  string
	logger    logger.Logger
}

// NewHydrator creates a startup hydrator. seedFile may be empty, in which
// case the built-in default seed set is used.
func NewHydrator(persister store.Persister, s *store.Store, seedFile string, log logger.Logger) *Hydrator {
	return &Hydrator{
		persister: persister,
		store:     s,
		seedFile:  seedFile,
		logger:    log,
	}
}

// Hydrate restores the last snapshot, or seeds the store when none exists.
// A failing load is treated like a missing snapshot: the store still comes
// up, with seed content.
func (h *Hydrator) Hydrate(ctx context.Context) error {
	snap, err := h.persister.Load(ctx)
	if err != nil {
		h.logger.Warn("failed to load snapshot, falling back to seed posts",
			logger.Error(err))
		snap = nil
	}

	if snap != nil && len(snap.Posts) > 0 {
		h.store.Hydrate(snap)
		h.logger.Info("hydrated store from snapshot",
			logger.Int("posts", len(snap.Posts)))
		return nil
	}

	return h.seed(ctx)
}

func (h *Hydrator) seed(ctx context.Context) error {
	file := seed.Default()
	if h.seedFile != "" {
		loaded, err := seed.NewLoader(h.seedFile).Load()
		if err != nil {
			h.logger.Warn("failed to load seed file, using built-in seed",
				logger.String("file", h.seedFile),
				logger.Error(err))
		} else {
			file = loaded
		}
	}

	posts, err := seed.NewMapper().MapPosts(file)
	if err != nil {
		return err
	}

	h.store.Hydrate(&store.Snapshot{Posts: posts})
	h.store.Flush(ctx)

	h.logger.Info("seeded store with example posts",
		logger.Int("posts", len(posts)))
	return nil
}
