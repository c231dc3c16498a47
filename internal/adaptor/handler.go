// Package adaptor translates HTTP requests into service calls and
// service errors back into status codes.
package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/apperrors"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// decodeJSON rejects bodies that are not valid JSON before the service
// sees them.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return nil
}

// parsePagination reads page and per_page query params with defaults.
func parsePagination(r *http.Request) *request.PaginatedRequest {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), 10)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	return &request.PaginatedRequest{
		Page:    page,
		PerPage: perPage,
	}
}

// respondServiceError maps service sentinel errors onto status codes.
// Anything unmapped is a 500 with the detail kept out of the response.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, apperrors.ErrUnauthenticated):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, apperrors.ErrInvalidToken):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, apperrors.ErrMethodNotAllowed):
		utils.ResponseMethodNotAllowed(w, err.Error())
	default:
		log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// NotAllowed is wired onto routes that exist in the URL space but do not
// support the method, so they answer 405 instead of chi's default 404.
func NotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Method not allowed")
}
