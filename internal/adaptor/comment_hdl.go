package adaptor

import (
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// List handles GET /api/titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	pagination := parsePagination(r)

	result, err := h.service.ListComments(r.Context(), titleID, reviewID, pagination)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved", result)
}

// Get handles GET /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	result, err := h.service.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Comment retrieved", result)
}

// Create handles POST /api/titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	var req request.CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateComment(r.Context(), titleID, reviewID, &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Comment created", result)
}

// Update handles PATCH /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	var req request.UpdateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateComment(r.Context(), titleID, reviewID, commentID, &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Comment updated", result)
}

// Delete handles DELETE /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	if err := h.service.DeleteComment(r.Context(), titleID, reviewID, commentID); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseNoContent(w)
}
