package adaptor

import (
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// List handles GET /api/genres
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	pagination := parsePagination(r)

	result, err := h.service.ListGenres(r.Context(), search, pagination)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved", result)
}

// Create handles POST /api/genres
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Genre created", result)
}

// Delete handles DELETE /api/genres/{slug}
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteGenre(r.Context(), slug); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
