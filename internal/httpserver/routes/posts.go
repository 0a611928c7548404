package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/handlers"
)

func init() { Register(registerPosts) }

// registerPosts wires the private dashboard surface: CRUD, publish toggle,
// tag facet and selection.
func registerPosts(r chi.Router, d deps.Deps) {
	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", handlers.ListPosts(d))
		r.Post("/", handlers.CreatePost(d))
		r.Get("/{id}", handlers.GetPost(d))
		r.Patch("/{id}", handlers.UpdatePost(d))
		r.Delete("/{id}", handlers.DeletePost(d))
		r.Post("/{id}/publish", handlers.PublishPost(d))
		r.Post("/{id}/unpublish", handlers.UnpublishPost(d))
	})

	r.Get("/api/tags", handlers.ListTags(d))

	r.Route("/api/selection", func(r chi.Router) {
		r.Get("/", handlers.GetSelection(d))
		r.Put("/", handlers.SetSelection(d))
		r.Delete("/", handlers.ClearSelection(d))
	})
}
