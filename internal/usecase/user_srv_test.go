package usecase_test

import (
	"context"
	"testing"

	"review-hub/internal/data/entity"
	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func userRepoWith(users ...*entity.User) *fakeUserRepo {
	byName := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &fakeUserRepo{
		FindByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return byName[username], nil
		},
		FindByEmailFn: noUser,
		UpdateFn:      func(ctx context.Context, user *entity.User) error { return nil },
		DeleteFn:      func(ctx context.Context, id uuid.UUID) error { return nil },
	}
}

func TestUserService_GetUser(t *testing.T) {
	alice := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "alice", Role: entity.RoleUser}
	admin := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "boss", Role: entity.RoleAdmin}

	t.Run("Should resolve the me alias to the caller", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice, admin), zap.NewNop())

		resp, err := svc.GetUser(authedCtx(alice.ID, "alice", "user"), "me")

		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("Should forbid a plain user reading someone else", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice, admin), zap.NewNop())

		_, err := svc.GetUser(authedCtx(alice.ID, "alice", "user"), "boss")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Should let an admin read anyone", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice, admin), zap.NewNop())

		resp, err := svc.GetUser(authedCtx(admin.ID, "boss", "admin"), "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("Should return not found for an unknown username", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice, admin), zap.NewNop())

		_, err := svc.GetUser(authedCtx(admin.ID, "boss", "admin"), "ghost")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Should require authentication for the me alias", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice, admin), zap.NewNop())

		_, err := svc.GetUser(context.Background(), "me")

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("Should ignore a role change from a non-admin on their own profile", func(t *testing.T) {
		alice := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "alice", Role: entity.RoleUser}
		var saved *entity.User

		repo := userRepoWith(alice)
		repo.UpdateFn = func(ctx context.Context, user *entity.User) error {
			saved = user
			return nil
		}
		svc := usecase.NewUserService(repo, zap.NewNop())

		role := "admin"
		bio := "just me"
		resp, err := svc.UpdateUser(authedCtx(alice.ID, "alice", "user"), "me",
			&request.UpdateUserRequest{Role: &role, Bio: &bio})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, entity.RoleUser, saved.Role)
		assert.Equal(t, entity.RoleUser, resp.Role)
		require.NotNil(t, saved.Bio)
		assert.Equal(t, "just me", *saved.Bio)
	})

	t.Run("Should let an admin promote a user", func(t *testing.T) {
		alice := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "alice", Role: entity.RoleUser}
		adminID := uuid.New()

		svc := usecase.NewUserService(userRepoWith(alice), zap.NewNop())

		role := "moderator"
		resp, err := svc.UpdateUser(authedCtx(adminID, "boss", "admin"), "alice",
			&request.UpdateUserRequest{Role: &role})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleModerator, resp.Role)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	alice := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "alice", Role: entity.RoleUser}

	t.Run("Should answer method not allowed for the me alias", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice), zap.NewNop())

		err := svc.DeleteUser(authedCtx(alice.ID, "alice", "user"), "me")

		assert.ErrorIs(t, err, apperrors.ErrMethodNotAllowed)
	})

	t.Run("Should forbid a non-admin deleting others", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice), zap.NewNop())

		err := svc.DeleteUser(authedCtx(uuid.New(), "stranger", "user"), "alice")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Should let an admin delete a user", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(alice), zap.NewNop())

		err := svc.DeleteUser(authedCtx(uuid.New(), "boss", "admin"), "alice")

		assert.NoError(t, err)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("Should forbid non-admin callers", func(t *testing.T) {
		svc := usecase.NewUserService(userRepoWith(), zap.NewNop())

		_, err := svc.CreateUser(authedCtx(uuid.New(), "alice", "user"),
			&request.CreateUserRequest{Username: "new", Email: "new@example.com"})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Should create a user with the requested role", func(t *testing.T) {
		var created *entity.User
		repo := userRepoWith()
		repo.CreateFn = func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		}
		svc := usecase.NewUserService(repo, zap.NewNop())

		resp, err := svc.CreateUser(authedCtx(uuid.New(), "boss", "admin"),
			&request.CreateUserRequest{Username: "newmod", Email: "mod@example.com", Role: "moderator"})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, entity.RoleModerator, created.Role)
		assert.Equal(t, "newmod", resp.Username)
	})
}
