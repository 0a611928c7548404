package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
	"github.com/MrSnakeDoc/ideahub/internal/store"
)

type listResponse struct {
	Posts []postView `json:"posts"`
	Total int        `json:"total"`
}

// queryFromRequest maps the listing query parameters onto a domain query.
func queryFromRequest(r *http.Request) domain.Query {
	params := r.URL.Query()
	return domain.Query{
		Search: strings.TrimSpace(params.Get("q")),
		Status: domain.StatusFilter(params.Get("status")),
		Tag:    params.Get("tag"),
		Sort:   domain.SortOrder(params.Get("sort")),
	}
}

// ListPosts serves the dashboard listing: the full collection run through
// the search/filter/sort pipeline.
func ListPosts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := domain.Apply(d.Store.All(), queryFromRequest(r))
		writeJSON(w, http.StatusOK, listResponse{Posts: viewsOf(posts), Total: len(posts)})
	}
}

// ListTags serves the dashboard tag facet (union across all posts).
func ListTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"tags": domain.TagFacet(d.Store.All()),
		})
	}
}

type createRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Excerpt     string   `json:"excerpt"`
	IsPublished bool     `json:"isPublished"`
	IsDraft     bool     `json:"isDraft"`
	Pinned      bool     `json:"pinned"`
}

// CreatePost adds a new post. Blank titles are normalized to "Untitled"
// here: fallback policy belongs to the caller, not the store.
func CreatePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		title := strings.TrimSpace(req.Title)
		if title == "" {
			title = "Untitled"
		}

		post := d.Store.Add(r.Context(), store.Draft{
			Title:       title,
			Content:     req.Content,
			Tags:        req.Tags,
			Excerpt:     req.Excerpt,
			IsPublished: req.IsPublished,
			IsDraft:     req.IsDraft,
			Pinned:      req.Pinned,
		})

		d.Logger.Info("post created",
			logger.String("post_id", post.ID),
			logger.Bool("published", post.IsPublished))
		writeJSON(w, http.StatusCreated, viewOf(post))
	}
}

// GetPost serves a single post by id.
func GetPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		post, ok := d.Store.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeJSON(w, http.StatusOK, viewOf(post))
	}
}

type patchRequest struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Tags        []string `json:"tags"`
	Excerpt     *string  `json:"excerpt"`
	IsPublished *bool    `json:"isPublished"`
	IsDraft     *bool    `json:"isDraft"`
	Pinned      *bool    `json:"pinned"`
}

// UpdatePost applies a partial patch; absent fields stay untouched.
func UpdatePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req patchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post, ok := d.Store.Update(r.Context(), id, store.Patch{
			Title:       req.Title,
			Content:     req.Content,
			Tags:        req.Tags,
			Excerpt:     req.Excerpt,
			IsPublished: req.IsPublished,
			IsDraft:     req.IsDraft,
			Pinned:      req.Pinned,
		})
		if !ok {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}

		d.Logger.Info("post updated", logger.String("post_id", id))
		writeJSON(w, http.StatusOK, viewOf(post))
	}
}

// DeletePost removes a post. Idempotent: deleting an unknown id still
// answers 204.
func DeletePost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if d.Store.Delete(r.Context(), id) {
			d.Logger.Info("post deleted", logger.String("post_id", id))
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PublishPost makes a post publicly visible and clears its draft flag.
func PublishPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Store.Publish(r.Context(), id) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}

		post, _ := d.Store.Get(id)
		d.Logger.Info("post published", logger.String("post_id", id))
		writeJSON(w, http.StatusOK, viewOf(post))
	}
}

// UnpublishPost hides a post from the public listing, draft flag untouched.
func UnpublishPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Store.Unpublish(r.Context(), id) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}

		post, _ := d.Store.Get(id)
		d.Logger.Info("post unpublished", logger.String("post_id", id))
		writeJSON(w, http.StatusOK, viewOf(post))
	}
}

type selectionResponse struct {
	Selected *postView `json:"selected"`
}

type selectRequest struct {
	ID string `json:"id"`
}

// GetSelection reports the currently selected post, or null.
func GetSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, selectionView(d.Store.Selected()))
	}
}

// SetSelection points the selection at a post. An unknown id resolves to a
// cleared selection, mirrored back as null rather than an error.
func SetSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		post := d.Store.Select(r.Context(), req.ID)
		writeJSON(w, http.StatusOK, selectionView(post))
	}
}

// ClearSelection deselects.
func ClearSelection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.Deselect(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func selectionView(p *domain.Post) selectionResponse {
	if p == nil {
		return selectionResponse{}
	}
	v := viewOf(p)
	return selectionResponse{Selected: &v}
}
