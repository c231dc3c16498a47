package repository_test

import (
	"context"
	"testing"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.CategoryRepository) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mockPool, repository.NewCategoryRepository(mockPool, zap.NewNop())
}

func TestCategoryRepository_Create(t *testing.T) {
	t.Run("Should create category successfully", func(t *testing.T) {
		mockPool, repo := newCategoryRepo(t)
		defer mockPool.Close()

		category := &entity.Category{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:       "Movies",
			Slug:       "movies",
		}

		mockPool.ExpectExec("INSERT INTO categories").
			WithArgs(category.ID, category.Name, category.Slug, category.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), category)
		assert.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should map a duplicate slug to a validation error", func(t *testing.T) {
		mockPool, repo := newCategoryRepo(t)
		defer mockPool.Close()

		category := &entity.Category{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:       "Movies",
			Slug:       "movies",
		}

		mockPool.ExpectExec("INSERT INTO categories").
			WithArgs(category.ID, category.Name, category.Slug, category.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(context.Background(), category)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestCategoryRepository_FindBySlug(t *testing.T) {
	t.Run("Should return nil without error when slug is unknown", func(t *testing.T) {
		mockPool, repo := newCategoryRepo(t)
		defer mockPool.Close()

		mockPool.ExpectQuery("SELECT (.+) FROM categories").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		category, err := repo.FindBySlug(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, category)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestCategoryRepository_DeleteBySlug(t *testing.T) {
	t.Run("Should delete an existing category", func(t *testing.T) {
		mockPool, repo := newCategoryRepo(t)
		defer mockPool.Close()

		mockPool.ExpectExec("DELETE FROM categories").
			WithArgs("movies").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.DeleteBySlug(context.Background(), "movies")
		assert.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should return not found for an unknown slug", func(t *testing.T) {
		mockPool, repo := newCategoryRepo(t)
		defer mockPool.Close()

		mockPool.ExpectExec("DELETE FROM categories").
			WithArgs("ghost").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteBySlug(context.Background(), "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
