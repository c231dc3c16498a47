package adaptor

import (
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// List handles GET /api/titles/{titleID}/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	pagination := parsePagination(r)

	result, err := h.service.ListReviews(r.Context(), titleID, pagination)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", result)
}

// Get handles GET /api/titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	result, err := h.service.GetReview(r.Context(), titleID, reviewID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Review retrieved", result)
}

// Create handles POST /api/titles/{titleID}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")

	var req request.CreateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateReview(r.Context(), titleID, &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Review created", result)
}

// Update handles PATCH /api/titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	var req request.UpdateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateReview(r.Context(), titleID, reviewID, &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Review updated", result)
}

// Delete handles DELETE /api/titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	if err := h.service.DeleteReview(r.Context(), titleID, reviewID); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
