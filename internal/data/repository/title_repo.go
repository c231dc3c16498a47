package repository

import (
	"context"
	"fmt"

	"review-hub/internal/data/entity"
	"review-hub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TitleFilter narrows title listings. Zero values mean "no filter".
type TitleFilter struct {
	Name         string
	Year         int
	CategorySlug string
	GenreSlug    string
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error)
	FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	CountAll(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

func (r *titleRepository) Create(ctx context.Context, title *entity.Title) error {
	query := `
		INSERT INTO titles (id, name, year, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.CreatedAt,
		title.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	return nil
}

// FindByID returns the title with its derived average review score.
func (r *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	query := `
		SELECT t.id, t.name, t.year, t.description, t.category_id,
		       t.created_at, t.updated_at, AVG(r.score) AS rating
		FROM titles t
		LEFT JOIN reviews r ON r.title_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`

	var title entity.Title
	err := r.db.QueryRow(ctx, query, id).Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.CreatedAt,
		&title.UpdatedAt,
		&title.Rating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return nil, fmt.Errorf("find title by ID %s: %w", id.String(), err)
	}

	return &title, nil
}

// FindAll lists titles with derived ratings, newest first, filtered by
// name substring, year, category slug and genre slug.
func (r *titleRepository) FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	query := `
		SELECT t.id, t.name, t.year, t.description, t.category_id,
		       t.created_at, t.updated_at, AVG(rv.score) AS rating
		FROM titles t
		LEFT JOIN reviews rv ON rv.title_id = t.id
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ($1 = '' OR t.name ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR t.year = $2)
		  AND ($3 = '' OR c.slug = $3)
		  AND ($4 = '' OR EXISTS (
		        SELECT 1 FROM title_genres tg
		        INNER JOIN genres g ON g.id = tg.genre_id
		        WHERE tg.title_id = t.id AND g.slug = $4))
		GROUP BY t.id
		ORDER BY t.created_at DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query,
		filter.Name, filter.Year, filter.CategorySlug, filter.GenreSlug,
		limit, offset,
	)
	if err != nil {
		r.log.Error("Failed to get titles",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		var title entity.Title
		err := rows.Scan(
			&title.ID,
			&title.Name,
			&title.Year,
			&title.Description,
			&title.CategoryID,
			&title.CreatedAt,
			&title.UpdatedAt,
			&title.Rating,
		)
		if err != nil {
			r.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, &title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles rows: %w", err)
	}

	return titles, nil
}

func (r *titleRepository) CountAll(ctx context.Context, filter TitleFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM titles t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ($1 = '' OR t.name ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR t.year = $2)
		  AND ($3 = '' OR c.slug = $3)
		  AND ($4 = '' OR EXISTS (
		        SELECT 1 FROM title_genres tg
		        INNER JOIN genres g ON g.id = tg.genre_id
		        WHERE tg.title_id = t.id AND g.slug = $4))
	`

	var count int64
	err := r.db.QueryRow(ctx, query,
		filter.Name, filter.Year, filter.CategorySlug, filter.GenreSlug,
	).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting titles", zap.Error(err))
		return 0, fmt.Errorf("count all titles: %w", err)
	}

	return count, nil
}

func (r *titleRepository) Update(ctx context.Context, title *entity.Title) error {
	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update title",
			zap.Error(err),
			zap.String("title_id", title.ID.String()),
		)
		return fmt.Errorf("update title %s: %w", title.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", title.ID.String())
	}

	return nil
}

// Delete removes the title; its reviews and their comments go with it
// through ON DELETE CASCADE.
func (r *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete title",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return fmt.Errorf("delete title %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", id.String())
	}

	r.log.Info("Title deleted", zap.String("title_id", id.String()))
	return nil
}
