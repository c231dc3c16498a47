package wire

import (
	"net/http"

	"review-hub/internal/adaptor"
	"review-hub/internal/data/repository"
	"review-hub/internal/usecase"
	"review-hub/pkg/mailer"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. Authenticate only parses credentials when they
	// are presented; per-route auth requirements live in the wire files.
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())
	r.Use(middleware.Authenticate(config.JWT.Secret, logger))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, logger)
	wireCategory(r, handler.Category)
	wireGenre(r, handler.Genre)
	wireTitle(r, handler.Title)
	wireReview(r, handler.Review)
	wireComment(r, handler.Comment)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
