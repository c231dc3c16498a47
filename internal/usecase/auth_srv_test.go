package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/apperrors"
	"review-hub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:  utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
		Code: utils.CodeConfig{ExpiryHours: 24},
	}
}

func noUser(ctx context.Context, _ string) (*entity.User, error) { return nil, nil }

func TestAuthService_Signup(t *testing.T) {
	t.Run("Should register a user and send the confirmation code", func(t *testing.T) {
		var createdUser *entity.User
		var createdCode *entity.ConfirmationCode

		users := &fakeUserRepo{
			FindByUsernameFn: noUser,
			FindByEmailFn:    noUser,
			CreateFn: func(ctx context.Context, user *entity.User) error {
				createdUser = user
				return nil
			},
		}
		codes := &fakeCodeRepo{
			CreateFn: func(ctx context.Context, code *entity.ConfirmationCode) error {
				createdCode = code
				return nil
			},
		}
		mail := &fakeMailer{}

		repo := &repository.Repository{User: users, ConfirmationCode: codes}
		svc := usecase.NewAuthService(repo, mail, testConfig(), zap.NewNop())

		resp, err := svc.Signup(context.Background(), &request.SignupRequest{
			Username: "reader",
			Email:    "reader@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "reader", resp.Username)
		assert.Equal(t, "reader@example.com", resp.Email)

		require.NotNil(t, createdUser)
		assert.Equal(t, entity.RoleUser, createdUser.Role)
		assert.False(t, createdUser.Confirmed)

		require.NotNil(t, createdCode)
		assert.Equal(t, createdUser.ID, createdCode.UserID)
		assert.False(t, createdCode.Used)
		assert.True(t, createdCode.ExpiresAt.After(time.Now()))

		// The stored value is a hash of the emailed code, not the code.
		require.Len(t, mail.Sent, 1)
		assert.NotEqual(t, mail.Sent[0], createdCode.CodeHash)
		assert.True(t, utils.CheckCodeHash(mail.Sent[0], createdCode.CodeHash))
	})

	t.Run("Should reject a taken username without sending mail", func(t *testing.T) {
		users := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{Username: username}, nil
			},
		}
		mail := &fakeMailer{}

		repo := &repository.Repository{User: users}
		svc := usecase.NewAuthService(repo, mail, testConfig(), zap.NewNop())

		_, err := svc.Signup(context.Background(), &request.SignupRequest{
			Username: "reader",
			Email:    "reader@example.com",
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Empty(t, mail.Sent)
	})

	t.Run("Should reject a registered email", func(t *testing.T) {
		users := &fakeUserRepo{
			FindByUsernameFn: noUser,
			FindByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{Email: email}, nil
			},
		}

		repo := &repository.Repository{User: users}
		svc := usecase.NewAuthService(repo, &fakeMailer{}, testConfig(), zap.NewNop())

		_, err := svc.Signup(context.Background(), &request.SignupRequest{
			Username: "reader",
			Email:    "reader@example.com",
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Should reject an invalid payload", func(t *testing.T) {
		svc := usecase.NewAuthService(&repository.Repository{}, &fakeMailer{}, testConfig(), zap.NewNop())

		_, err := svc.Signup(context.Background(), &request.SignupRequest{
			Username: "ab",
			Email:    "not-an-email",
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Should propagate a mail delivery failure", func(t *testing.T) {
		users := &fakeUserRepo{
			FindByUsernameFn: noUser,
			FindByEmailFn:    noUser,
			CreateFn:         func(ctx context.Context, user *entity.User) error { return nil },
		}
		codes := &fakeCodeRepo{
			CreateFn: func(ctx context.Context, code *entity.ConfirmationCode) error { return nil },
		}
		mail := &fakeMailer{
			SendFn: func(ctx context.Context, to, code string) error {
				return errors.New("smtp unreachable")
			},
		}

		repo := &repository.Repository{User: users, ConfirmationCode: codes}
		svc := usecase.NewAuthService(repo, mail, testConfig(), zap.NewNop())

		_, err := svc.Signup(context.Background(), &request.SignupRequest{
			Username: "reader",
			Email:    "reader@example.com",
		})

		assert.Error(t, err)
		assert.Empty(t, mail.Sent)
	})
}

func TestAuthService_IssueToken(t *testing.T) {
	newConfirmedExchange := func(t *testing.T, plaintext string) (*repository.Repository, *entity.User, *entity.ConfirmationCode, *bool, *bool) {
		t.Helper()

		hash, err := utils.HashCode(plaintext)
		require.NoError(t, err)

		user := &entity.User{
			Base:     entity.Base{ID: uuid.New()},
			Username: "reader",
			Email:    "reader@example.com",
			Role:     entity.RoleUser,
		}
		code := &entity.ConfirmationCode{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			UserID:     user.ID,
			CodeHash:   hash,
			ExpiresAt:  time.Now().Add(time.Hour),
		}

		markedUsed := false
		confirmed := false

		users := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
				if username == user.Username {
					return user, nil
				}
				return nil, nil
			},
			UpdateFn: func(ctx context.Context, u *entity.User) error {
				confirmed = u.Confirmed
				return nil
			},
		}
		codes := &fakeCodeRepo{
			FindLatestValidFn: func(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error) {
				return code, nil
			},
			MarkUsedFn: func(ctx context.Context, id uuid.UUID) error {
				markedUsed = true
				return nil
			},
		}

		return &repository.Repository{User: users, ConfirmationCode: codes}, user, code, &markedUsed, &confirmed
	}

	t.Run("Should exchange a valid code for an access token", func(t *testing.T) {
		repo, user, _, markedUsed, confirmed := newConfirmedExchange(t, "the-code")
		svc := usecase.NewAuthService(repo, &fakeMailer{}, testConfig(), zap.NewNop())

		resp, err := svc.IssueToken(context.Background(), &request.TokenRequest{
			Username:         "reader",
			ConfirmationCode: "the-code",
		})

		require.NoError(t, err)
		assert.True(t, *markedUsed)
		assert.True(t, *confirmed)

		claims, err := utils.ParseAccessToken("test-secret", resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "reader", claims.Username)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("Should return not found for an unknown username", func(t *testing.T) {
		users := &fakeUserRepo{FindByUsernameFn: noUser}
		repo := &repository.Repository{User: users}
		svc := usecase.NewAuthService(repo, &fakeMailer{}, testConfig(), zap.NewNop())

		_, err := svc.IssueToken(context.Background(), &request.TokenRequest{
			Username:         "ghost",
			ConfirmationCode: "whatever",
		})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Should reject a wrong code", func(t *testing.T) {
		repo, _, _, markedUsed, _ := newConfirmedExchange(t, "the-code")
		svc := usecase.NewAuthService(repo, &fakeMailer{}, testConfig(), zap.NewNop())

		_, err := svc.IssueToken(context.Background(), &request.TokenRequest{
			Username:         "reader",
			ConfirmationCode: "wrong-code",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.False(t, *markedUsed)
	})

	t.Run("Should reject when no valid code is on file", func(t *testing.T) {
		users := &fakeUserRepo{
			FindByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: uuid.New()}, Username: username}, nil
			},
		}
		codes := &fakeCodeRepo{
			FindLatestValidFn: func(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error) {
				return nil, nil
			},
		}

		repo := &repository.Repository{User: users, ConfirmationCode: codes}
		svc := usecase.NewAuthService(repo, &fakeMailer{}, testConfig(), zap.NewNop())

		_, err := svc.IssueToken(context.Background(), &request.TokenRequest{
			Username:         "reader",
			ConfirmationCode: "expired",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
