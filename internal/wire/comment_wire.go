package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.List)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.Get)

	// ==================== AUTHENTICATED ROUTES ====================
	// Author, moderator and admin rules live in the service layer.
	r.Post("/api/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.Create)
	r.Patch("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.Update)
	r.Delete("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.Delete)
}
