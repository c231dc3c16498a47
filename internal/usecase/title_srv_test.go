package usecase_test

import (
	"context"
	"testing"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTitleService_CreateTitle(t *testing.T) {
	movies := &entity.Category{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Movies",
		Slug:       "movies",
	}
	scifi := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Science Fiction",
		Slug:       "sci-fi",
	}

	categories := &fakeCategoryRepo{
		FindBySlugFn: func(ctx context.Context, slug string) (*entity.Category, error) {
			if slug == movies.Slug {
				return movies, nil
			}
			return nil, nil
		},
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
			return movies, nil
		},
	}
	genres := &fakeGenreRepo{
		FindBySlugsFn: func(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
			var found []*entity.Genre
			for _, s := range slugs {
				if s == scifi.Slug {
					found = append(found, scifi)
				}
			}
			return found, nil
		},
	}

	t.Run("Should create a title with category and genres", func(t *testing.T) {
		var created *entity.Title
		var links []*entity.TitleGenre

		titles := &fakeTitleRepo{
			CreateFn: func(ctx context.Context, title *entity.Title) error {
				created = title
				return nil
			},
		}
		titleGenres := &fakeTitleGenreRepo{
			CreateBatchFn: func(ctx context.Context, tg []*entity.TitleGenre) error {
				links = tg
				return nil
			},
		}

		repo := &repository.Repository{
			Title:      titles,
			Category:   categories,
			Genre:      genres,
			TitleGenre: titleGenres,
		}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		resp, err := svc.CreateTitle(authedCtx(uuid.New(), "boss", "admin"), &request.TitleRequest{
			Name:     "Dune",
			Year:     2021,
			Category: "movies",
			Genres:   []string{"sci-fi"},
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, movies.ID, created.CategoryID)
		require.Len(t, links, 1)
		assert.Equal(t, scifi.ID, links[0].GenreID)
		assert.Equal(t, "movies", resp.Category.Slug)
		require.Len(t, resp.Genres, 1)
		assert.Equal(t, "sci-fi", resp.Genres[0].Slug)
		assert.Nil(t, resp.Rating)
	})

	t.Run("Should forbid non-admin writers", func(t *testing.T) {
		repo := &repository.Repository{Category: categories, Genre: genres}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		_, err := svc.CreateTitle(authedCtx(uuid.New(), "reader", "user"), &request.TitleRequest{
			Name:     "Dune",
			Year:     2021,
			Category: "movies",
		})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Should reject an unknown category slug", func(t *testing.T) {
		repo := &repository.Repository{Category: categories, Genre: genres}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		_, err := svc.CreateTitle(authedCtx(uuid.New(), "boss", "admin"), &request.TitleRequest{
			Name:     "Dune",
			Year:     2021,
			Category: "ghost",
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Should reject an unknown genre slug", func(t *testing.T) {
		repo := &repository.Repository{Category: categories, Genre: genres}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		_, err := svc.CreateTitle(authedCtx(uuid.New(), "boss", "admin"), &request.TitleRequest{
			Name:     "Dune",
			Year:     2021,
			Category: "movies",
			Genres:   []string{"sci-fi", "ghost"},
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Should reject a year in the future", func(t *testing.T) {
		repo := &repository.Repository{Category: categories, Genre: genres}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		_, err := svc.CreateTitle(authedCtx(uuid.New(), "boss", "admin"), &request.TitleRequest{
			Name:     "Dune Part Ten",
			Year:     time.Now().Year() + 1,
			Category: "movies",
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestTitleService_GetTitle(t *testing.T) {
	t.Run("Should return not found for a malformed id", func(t *testing.T) {
		repo := &repository.Repository{Title: titleRepoWith(nil)}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		_, err := svc.GetTitle(context.Background(), "42")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Should carry the derived rating through", func(t *testing.T) {
		rating := 8.5
		title := &entity.Title{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			Name:         "Dune",
			Year:         2021,
			CategoryID:   uuid.New(),
			Rating:       &rating,
		}

		categories := &fakeCategoryRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
				return &entity.Category{BaseSimple: entity.BaseSimple{ID: id}, Name: "Movies", Slug: "movies"}, nil
			},
		}
		genres := &fakeGenreRepo{
			FindByTitleIDFn: func(ctx context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
				return nil, nil
			},
		}

		repo := &repository.Repository{Title: titleRepoWith(title), Category: categories, Genre: genres}
		svc := usecase.NewTitleService(repo, zap.NewNop())

		resp, err := svc.GetTitle(context.Background(), title.ID.String())

		require.NoError(t, err)
		require.NotNil(t, resp.Rating)
		assert.Equal(t, 8.5, *resp.Rating)
		assert.Empty(t, resp.Genres)
	})
}
