package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	r.Route("/api/categories", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", categoryHandler.List) // GET /api/categories

		// ==================== ADMIN ROUTES ====================
		// Admin rights are checked in the service layer.
		r.Post("/", categoryHandler.Create)        // POST /api/categories
		r.Delete("/{slug}", categoryHandler.Delete) // DELETE /api/categories/{slug}

		// Categories have no detail view and no update.
		r.Get("/{slug}", adaptor.NotAllowed)
		r.Put("/{slug}", adaptor.NotAllowed)
		r.Patch("/{slug}", adaptor.NotAllowed)
	})
}
