package adaptor

import (
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	pagination := parsePagination(r)

	result, err := h.service.ListCategories(r.Context(), search, pagination)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", result)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Category created", result)
}

// Delete handles DELETE /api/categories/{slug}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteCategory(r.Context(), slug); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
