package adaptor

import (
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Confirmation code sent", result)
}

// Token handles POST /api/auth/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Token issued", result)
}
