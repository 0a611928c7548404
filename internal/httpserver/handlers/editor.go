package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideahub/internal/editor"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
)

// GetStaged reports the editor's staged draft fields.
func GetStaged(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Editor.Staged())
	}
}

// Stage replaces the staged draft. While the draft flag is set, each call
// re-arms the autosave timer.
func Stage(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft editor.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		d.Editor.Stage(draft)
		w.WriteHeader(http.StatusAccepted)
	}
}

// SaveDraft commits the staged draft. An empty draft is accepted as a
// no-op, matching the editor's save button.
func SaveDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post := d.Editor.Save(r.Context())
		if post == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		d.Logger.Info("editor saved post", logger.String("post_id", post.ID))
		writeJSON(w, http.StatusOK, viewOf(post))
	}
}

// PublishDraft commits the staged draft and publishes it. An empty draft
// cannot be published.
func PublishDraft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post := d.Editor.Publish(r.Context())
		if post == nil {
			writeError(w, http.StatusBadRequest, "add some content before publishing")
			return
		}

		d.Logger.Info("editor published post", logger.String("post_id", post.ID))
		writeJSON(w, http.StatusOK, viewOf(post))
	}
}

// OpenPost loads a post into the editor for editing.
func OpenPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Editor.Open(r.Context(), id) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeJSON(w, http.StatusOK, d.Editor.Staged())
	}
}

// ClosePost leaves the editor: pending autosave flushes, staging and
// selection are cleared.
func ClosePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Editor.Close(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
