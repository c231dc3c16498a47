package usecase

import (
	"context"
	"fmt"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"
	"review-hub/internal/metrics"
	"review-hub/pkg/apperrors"
	"review-hub/pkg/mailer"
	"review-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	mailer mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mailer: mail,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Signup registers an unconfirmed account and emails its confirmation code.
// The email send is synchronous: a delivery failure fails the whole operation.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: username already taken", apperrors.ErrValidation)
	}

	existingUser, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrValidation)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      entity.RoleUser,
		Confirmed: false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create account: %w", err)
	}

	code, err := s.issueConfirmationCode(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to issue confirmation code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue confirmation code: %w", err)
	}

	if err := s.mailer.SendConfirmationCode(ctx, user.Email, code); err != nil {
		metrics.EmailSendErrorsTotal.Inc()
		s.log.Error("Failed to send confirmation code",
			zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("send confirmation code: %w", err)
	}

	metrics.SignupsTotal.Inc()

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.SignupResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// IssueToken exchanges a valid confirmation code for a signed access token.
// The code is consumed on success and the account flips to confirmed.
func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Token request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for token exchange",
			zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, req.Username)
	}

	code, err := s.repo.ConfirmationCode.FindLatestValid(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to look up confirmation code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("look up confirmation code: %w", err)
	}
	if code == nil || !utils.CheckCodeHash(req.ConfirmationCode, code.CodeHash) {
		s.log.Warn("Invalid confirmation code",
			zap.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid confirmation code", apperrors.ErrInvalidToken)
	}

	if err := s.repo.ConfirmationCode.MarkUsed(ctx, code.ID); err != nil {
		s.log.Error("Failed to consume confirmation code",
			zap.Error(err), zap.String("code_id", code.ID.String()))
		return nil, fmt.Errorf("consume confirmation code: %w", err)
	}

	if !user.Confirmed {
		user.Confirmed = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to mark user confirmed",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("mark user confirmed: %w", err)
		}
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.CreateAccessToken(
		s.config.JWT.Secret, expiry, user.ID, user.Username, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign access token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	metrics.TokensIssuedTotal.Inc()

	s.log.Info("Access token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authService) issueConfirmationCode(ctx context.Context, userID uuid.UUID) (string, error) {
	code := utils.GenerateConfirmationCode()

	hash, err := utils.HashCode(code)
	if err != nil {
		return "", fmt.Errorf("hash confirmation code: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(s.config.Code.ExpiryHours) * time.Hour)
	record := &entity.ConfirmationCode{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		CodeHash:  hash,
		ExpiresAt: expiresAt,
		Used:      false,
	}

	if err := s.repo.ConfirmationCode.Create(ctx, record); err != nil {
		return "", err
	}

	return code, nil
}
