package api

import (
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/easybox/pkg/board"
)

// NewRouter creates the chi router serving b.
func NewRouter(b *board.Board, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	h := NewBoardHandler(b)

	r.Get("/health", h.Health)
	r.Post("/events", h.Dispatch)

	r.Route("/boxes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Remove)
		r.Put("/{id}/transform", h.SetTransform)
	})

	return r
}
