package editor

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
	"github.com/MrSnakeDoc/ideahub/internal/scheduler"
	"github.com/MrSnakeDoc/ideahub/internal/store"
)

// FallbackTitle is used when a post is committed with a blank title.
const FallbackTitle = "Untitled"

// Draft holds the staged editor fields between commits.
type Draft struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	IsDraft bool     `json:"isDraft"`
}

// Editor is the single staging area between the user and the store: edits
// accumulate in it via Stage, and flow into the store on Save, Publish, or
// when the autosave debouncer fires after a quiet period. Whether a commit
// creates or updates is routed by the store's selection.
type Editor struct {
	mu       sync.Mutex
	store    *store.Store
	autosave *scheduler.Debouncer
	logger   logger.Logger

	draft Draft
	dirty bool
}

// New creates an editor with its own autosave debouncer.
func New(s *store.Store, quiet time.Duration, log logger.Logger) *Editor {
	e := &Editor{
		store:  s,
		logger: log,
	}
	e.autosave = scheduler.NewDebouncer(quiet, e.autoSave, log)
	return e
}

// Open loads the post with the given id into the editor and selects it.
// Returns false on unknown id, leaving the editor untouched.
func (e *Editor) Open(ctx context.Context, id string) bool {
	post := e.store.Select(ctx, id)
	if post == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft = Draft{
		Title:   post.Title,
		Content: post.Content,
		Tags:    append([]string(nil), post.Tags...),
		IsDraft: post.IsDraft,
	}
	e.dirty = false
	e.autosave.Cancel()
	return true
}

// Close clears the staging area and the store selection. A pending
// autosave for a staged draft fires first so the edit is not lost.
func (e *Editor) Close(ctx context.Context) {
	e.autosave.Flush()

	e.mu.Lock()
	e.draft = Draft{IsDraft: true}
	e.dirty = false
	e.mu.Unlock()

	e.store.Deselect(ctx)
}

// Stage replaces the staged fields. While the draft flag is set and there
// is content worth saving, every call re-arms the autosave timer; the save
// fires after the quiet period unless another edit re-arms it first.
func (e *Editor) Stage(d Draft) {
	e.mu.Lock()
	e.draft = d
	e.dirty = true
	armable := d.IsDraft && (d.Title != "" || d.Content != "")
	e.mu.Unlock()

	if armable {
		e.autosave.Arm()
	} else {
		e.autosave.Cancel()
	}
}

// Staged returns a copy of the staged fields.
func (e *Editor) Staged() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft
	d.Tags = append([]string(nil), e.draft.Tags...)
	return d
}

// Save commits the staged fields manually. Returns the affected post, or
// nil when there was nothing to save (blank title and content).
func (e *Editor) Save(ctx context.Context) *domain.Post {
	e.autosave.Cancel()
	return e.commit(ctx, false)
}

// Publish commits the staged fields with the draft flag cleared, then
// publishes the post. Returns nil when there is nothing to publish.
func (e *Editor) Publish(ctx context.Context) *domain.Post {
	e.autosave.Cancel()

	e.mu.Lock()
	e.draft.IsDraft = false
	e.mu.Unlock()

	post := e.commit(ctx, false)
	if post == nil {
		return nil
	}

	e.store.Publish(ctx, post.ID)
	published, _ := e.store.Get(post.ID)
	return published
}

// Shutdown flushes a pending autosave. Called once on graceful stop.
func (e *Editor) Shutdown() {
	e.autosave.Flush()
}

// autoSave is the debouncer callback: commit staged changes if the draft
// flag is still set and nothing committed them in the meantime.
func (e *Editor) autoSave() {
	e.mu.Lock()
	stale := !e.dirty || !e.draft.IsDraft
	e.mu.Unlock()

	if stale {
		return
	}
	e.commit(context.Background(), true)
}

// commit routes the staged fields into the store: selected post present
// means update, none means create. Empty commits are a no-op.
func (e *Editor) commit(ctx context.Context, auto bool) *domain.Post {
	e.mu.Lock()
	d := e.draft
	d.Tags = append([]string(nil), e.draft.Tags...)
	e.dirty = false
	e.mu.Unlock()

	if d.Title == "" && d.Content == "" {
		return nil
	}

	if selected := e.store.Selected(); selected != nil {
		post, ok := e.store.Update(ctx, selected.ID, store.Patch{
			Title:   &d.Title,
			Content: &d.Content,
			Tags:    d.Tags,
			IsDraft: &d.IsDraft,
		})
		if !ok {
			return nil
		}
		e.logger.Debug("editor committed update",
			logger.String("post_id", post.ID),
			logger.Bool("autosave", auto))
		return post
	}

	title := d.Title
	if title == "" {
		title = FallbackTitle
	}

	post := e.store.Add(ctx, store.Draft{
		Title:   title,
		Content: d.Content,
		Tags:    d.Tags,
		IsDraft: d.IsDraft,
		Excerpt: domain.Excerpt(d.Content),
	})
	e.logger.Debug("editor committed new post",
		logger.String("post_id", post.ID),
		logger.Bool("autosave", auto))
	return post
}
