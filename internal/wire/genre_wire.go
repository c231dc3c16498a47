package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/api/genres", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", genreHandler.List) // GET /api/genres

		// ==================== ADMIN ROUTES ====================
		// Admin rights are checked in the service layer.
		r.Post("/", genreHandler.Create)         // POST /api/genres
		r.Delete("/{slug}", genreHandler.Delete) // DELETE /api/genres/{slug}

		// Genres have no detail view and no update.
		r.Get("/{slug}", adaptor.NotAllowed)
		r.Put("/{slug}", adaptor.NotAllowed)
		r.Patch("/{slug}", adaptor.NotAllowed)
	})
}
