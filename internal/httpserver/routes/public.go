package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/handlers"
)

func init() { Register(registerPublic) }

// registerPublic wires the read-only public surface, restricted to
// published posts.
func registerPublic(r chi.Router, d deps.Deps) {
	r.Route("/public", func(r chi.Router) {
		r.Get("/posts", handlers.PublicList(d))
		r.Get("/posts/{id}", handlers.PublicPost(d))
		r.Get("/tags", handlers.PublicTags(d))
	})
}
