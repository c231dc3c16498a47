package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTitle(r chi.Router, titleHandler *adaptor.TitleHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/titles", titleHandler.List)         // GET /api/titles
	r.Get("/api/titles/{titleID}", titleHandler.Get) // GET /api/titles/{titleID}

	// ==================== ADMIN ROUTES ====================
	// Admin rights are checked in the service layer.
	r.Post("/api/titles", titleHandler.Create)            // POST /api/titles
	r.Patch("/api/titles/{titleID}", titleHandler.Update)  // PATCH /api/titles/{titleID}
	r.Delete("/api/titles/{titleID}", titleHandler.Delete) // DELETE /api/titles/{titleID}
}
