package wire

import (
	"review-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/signup - Register and receive a confirmation code
	r.Post("/api/auth/signup", authHandler.Signup)

	// POST /api/auth/token - Exchange a confirmation code for an access token
	r.Post("/api/auth/token", authHandler.Token)
}
