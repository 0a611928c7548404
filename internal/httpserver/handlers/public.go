package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
)

// PublicList serves the read-only public listing: the same filter/sort
// pipeline as the dashboard, but the candidate set is pre-restricted to
// published posts.
func PublicList(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates := domain.Published(d.Store.All())

		q := queryFromRequest(r)
		// The status facet makes no sense on an already published-only
		// surface; the rest of the pipeline applies unchanged.
		q.Status = domain.StatusAll

		posts := domain.Apply(candidates, q)
		writeJSON(w, http.StatusOK, listResponse{Posts: viewsOf(posts), Total: len(posts)})
	}
}

// PublicTags serves the tag facet over published posts only.
func PublicTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"tags": domain.TagFacet(domain.Published(d.Store.All())),
		})
	}
}

// PublicPost serves a single published post. Visibility is re-checked at
// request time: stale links to missing or since-unpublished posts redirect
// back to the public listing instead of leaking private content.
func PublicPost(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		post, ok := d.Store.Get(id)
		if !ok || !post.IsPublished {
			d.Logger.Debug("public lookup missed, redirecting to listing",
				logger.String("post_id", id),
				logger.Bool("exists", ok))
			http.Redirect(w, r, d.PublicListingPath, http.StatusFound)
			return
		}

		writeJSON(w, http.StatusOK, viewOf(post))
	}
}
