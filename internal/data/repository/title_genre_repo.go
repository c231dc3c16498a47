package repository

import (
	"context"
	"fmt"

	"review-hub/internal/data/entity"
	"review-hub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleGenreRepository interface {
	CreateBatch(ctx context.Context, titleGenres []*entity.TitleGenre) error
	DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error
}

type titleGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleGenreRepository(db database.PgxIface, log *zap.Logger) TitleGenreRepository {
	return &titleGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "title_genre")),
	}
}

func (r *titleGenreRepository) CreateBatch(ctx context.Context, titleGenres []*entity.TitleGenre) error {
	if len(titleGenres) == 0 {
		return nil
	}

	query := `
		INSERT INTO title_genres (id, title_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, tg := range titleGenres {
		_, err := r.db.Exec(ctx, query,
			tg.ID,
			tg.TitleID,
			tg.GenreID,
			tg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create title-genre link",
				zap.Error(err),
				zap.String("title_id", tg.TitleID.String()),
				zap.String("genre_id", tg.GenreID.String()),
			)
			return fmt.Errorf("create title-genre link for title %s: %w", tg.TitleID.String(), err)
		}
	}

	return nil
}

func (r *titleGenreRepository) DeleteByTitleID(ctx context.Context, titleID uuid.UUID) error {
	query := `DELETE FROM title_genres WHERE title_id = $1`

	_, err := r.db.Exec(ctx, query, titleID)
	if err != nil {
		r.log.Error("Failed to delete title-genre links",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("delete title-genre links for title %s: %w", titleID.String(), err)
	}

	return nil
}
