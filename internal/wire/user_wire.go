package wire

import (
	"review-hub/internal/adaptor"
	"review-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, log *zap.Logger) {
	// ==================== AUTHENTICATED ROUTES ====================
	// Role checks happen in the service layer. The "me" alias rides the
	// {username} parameter; deleting "me" answers 405 from the service.
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))

		r.Get("/", userHandler.List)                // GET /api/users (admin)
		r.Post("/", userHandler.Create)             // POST /api/users (admin)
		r.Get("/{username}", userHandler.Get)       // GET /api/users/{username}
		r.Patch("/{username}", userHandler.Update)  // PATCH /api/users/{username}
		r.Delete("/{username}", userHandler.Delete) // DELETE /api/users/{username}
	})
}
