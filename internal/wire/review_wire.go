package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/titles/{titleID}/reviews", reviewHandler.List)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.Get)

	// ==================== AUTHENTICATED ROUTES ====================
	// Author, moderator and admin rules live in the service layer.
	r.Post("/api/titles/{titleID}/reviews", reviewHandler.Create)
	r.Patch("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.Update)
	r.Delete("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.Delete)
}
