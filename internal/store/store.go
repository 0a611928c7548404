package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
)

// Store is the single source of truth for the post collection and the
// currently selected post. All mutations flow through it and it is the
// only writer of persisted state.
//
// Posts are kept most-recent-first at the storage level; display ordering
// is the query layer's concern. The selection is held as an id and resolved
// by lookup at read time, never as an aliasing pointer.
//
// A post is never edited in place once a pointer to it has been handed out:
// mutations clone the entry, patch the clone and swap it into the slice.
// Readers can therefore use the pointers from All/Get/Selected without
// holding any lock.
type Store struct {
	mu         sync.RWMutex
	posts      []*domain.Post
	selectedID string

	persister Persister
	logger    logger.Logger

	// now and newID are injectable for tests.
	now   func() time.Time
	newID func() string
}

// Draft carries the caller-provided fields for a new post.
type Draft struct {
	Title       string
	Content     string
	Tags        []string
	IsPublished bool
	IsDraft     bool
	Excerpt     string
	Pinned      bool
}

// Patch is a partial field set for Update. Nil pointers leave the
// corresponding field untouched; a nil Tags slice leaves tags untouched.
type Patch struct {
	Title       *string
	Content     *string
	Tags        []string
	Excerpt     *string
	IsPublished *bool
	IsDraft     *bool
	Pinned      *bool
}

// New creates an empty store backed by the given persister.
func New(persister Persister, log logger.Logger) *Store {
	return &Store{
		persister: persister,
		logger:    log,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// WithClock overrides the store's clock. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Hydrate replaces the collection and selection from a loaded snapshot.
// Called once on startup; does not persist.
func (s *Store) Hydrate(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = snap.Posts
	s.selectedID = snap.SelectedID
	if s.selectedID != "" && s.findLocked(s.selectedID) == nil {
		// Stale selection in the snapshot resolves to none.
		s.selectedID = ""
	}
}

// Flush persists the current state immediately. Used after seeding and on
// shutdown; regular mutations persist on their own.
func (s *Store) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persistLocked(ctx)
}

// Add creates a new post from the draft, prepends it to the collection and
// selects it. No validation: empty title and content are accepted; defaults
// are the caller's policy.
func (s *Store) Add(ctx context.Context, d Draft) *domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	post := &domain.Post{
		ID:          s.newID(),
		Title:       d.Title,
		Content:     d.Content,
		Tags:        domain.DedupeTags(d.Tags),
		Excerpt:     d.Excerpt,
		IsPublished: d.IsPublished,
		IsDraft:     d.IsDraft,
		Pinned:      d.Pinned,
		CreatedAt:   now,
		UpdatedAt:   now,
		ReadTime:    domain.EstimateReadTime(d.Content),
	}

	s.posts = append([]*domain.Post{post}, s.posts...)
	s.selectedID = post.ID
	s.persistLocked(ctx)

	return post
}

// Update applies a partial patch to the post with the given id. ReadTime is
// recomputed iff Content is part of the patch; UpdatedAt is always refreshed.
// Returns the updated post and false when the id is unknown (no-op); the
// caller decides whether that is worth reporting.
func (s *Store) Update(ctx context.Context, id string, p Patch) (*domain.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil, false
	}

	post := clonePost(s.posts[i])
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
		post.ReadTime = domain.EstimateReadTime(*p.Content)
	}
	if p.Tags != nil {
		post.Tags = domain.DedupeTags(p.Tags)
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.IsPublished != nil {
		post.IsPublished = *p.IsPublished
	}
	if p.IsDraft != nil {
		post.IsDraft = *p.IsDraft
	}
	if p.Pinned != nil {
		post.Pinned = *p.Pinned
	}
	post.UpdatedAt = s.now()

	s.posts[i] = post
	s.persistLocked(ctx)
	return post, true
}

// Delete removes the post with the given id. Clears the selection iff the
// deleted post was selected. Idempotent: unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, post := range s.posts {
		if post.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// Publish makes the post visible in the public listing and clears its
// draft flag. Returns false on unknown id.
func (s *Store) Publish(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	post := clonePost(s.posts[i])
	post.IsPublished = true
	post.IsDraft = false
	post.UpdatedAt = s.now()

	s.posts[i] = post
	s.persistLocked(ctx)
	return true
}

// Unpublish hides the post from the public listing. The draft flag is left
// untouched. Returns false on unknown id.
func (s *Store) Unpublish(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	post := clonePost(s.posts[i])
	post.IsPublished = false
	post.UpdatedAt = s.now()

	s.posts[i] = post
	s.persistLocked(ctx)
	return true
}

// Select points the selection at the given post. An unknown id resolves to
// a cleared selection, not an error. Returns the selected post or nil.
func (s *Store) Select(ctx context.Context, id string) *domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(id)
	if post == nil {
		s.selectedID = ""
	} else {
		s.selectedID = post.ID
	}
	s.persistLocked(ctx)
	return post
}

// Deselect clears the selection.
func (s *Store) Deselect(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = ""
	s.persistLocked(ctx)
}

// Selected resolves the current selection by lookup, or nil when none.
func (s *Store) Selected() *domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return nil
	}
	return s.findLocked(s.selectedID)
}

// Get retrieves a post by id.
func (s *Store) Get(id string) (*domain.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post := s.findLocked(id)
	return post, post != nil
}

// All returns the collection in storage order (most-recent-first).
func (s *Store) All() []*domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Count returns the number of posts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.posts)
}

func (s *Store) findLocked(id string) *domain.Post {
	for _, post := range s.posts {
		if post.ID == id {
			return post
		}
	}
	return nil
}

func (s *Store) indexLocked(id string) int {
	for i, post := range s.posts {
		if post.ID == id {
			return i
		}
	}
	return -1
}

// clonePost copies a post, tags included, so a mutation never touches a
// struct a reader may already hold.
func clonePost(p *domain.Post) *domain.Post {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	return &c
}

// persistLocked snapshots the collection and selection to the persister.
// Best effort: a failing save is logged and swallowed, never surfaced.
func (s *Store) persistLocked(ctx context.Context) {
	if s.persister == nil {
		return
	}

	snap := &Snapshot{
		Posts:      make([]*domain.Post, len(s.posts)),
		SelectedID: s.selectedID,
	}
	copy(snap.Posts, s.posts)

	if err := s.persister.Save(ctx, snap); err != nil {
		s.logger.Warn("failed to persist snapshot",
			logger.Int("posts", len(snap.Posts)),
			logger.Error(err))
	}
}
