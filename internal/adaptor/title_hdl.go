package adaptor

import (
	"net/http"

	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// List handles GET /api/titles
func (h *TitleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.TitleFilter{
		Name:         query.Get("name"),
		Year:         utils.ParseInt(query.Get("year"), 0),
		CategorySlug: query.Get("category"),
		GenreSlug:    query.Get("genre"),
	}
	pagination := parsePagination(r)

	result, err := h.service.ListTitles(r.Context(), filter, pagination)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Titles retrieved", result)
}

// Get handles GET /api/titles/{titleID}
func (h *TitleHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	result, err := h.service.GetTitle(r.Context(), titleID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Title retrieved", result)
}

// Create handles POST /api/titles
func (h *TitleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TitleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateTitle(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Title created", result)
}

// Update handles PATCH /api/titles/{titleID}
func (h *TitleHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	var req request.UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateTitle(r.Context(), titleID, &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Title updated", result)
}

// Delete handles DELETE /api/titles/{titleID}
func (h *TitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	if err := h.service.DeleteTitle(r.Context(), titleID); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
