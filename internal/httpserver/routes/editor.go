package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/handlers"
)

func init() { Register(registerEditor) }

func registerEditor(r chi.Router, d deps.Deps) {
	r.Route("/api/editor", func(r chi.Router) {
		r.Get("/", handlers.GetStaged(d))
		r.Post("/stage", handlers.Stage(d))
		r.Post("/save", handlers.SaveDraft(d))
		r.Post("/publish", handlers.PublishDraft(d))
		r.Post("/open/{id}", handlers.OpenPost(d))
		r.Post("/close", handlers.ClosePost(d))
	})
}
