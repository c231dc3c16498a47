package repository

import (
	"errors"

	"review-hub/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	ConfirmationCode ConfirmationCodeRepository
	Category         CategoryRepository
	Genre            GenreRepository
	Title            TitleRepository
	TitleGenre       TitleGenreRepository
	Review           ReviewRepository
	Comment          CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		ConfirmationCode: NewConfirmationCodeRepository(db, log),
		Category:         NewCategoryRepository(db, log),
		Genre:            NewGenreRepository(db, log),
		Title:            NewTitleRepository(db, log),
		TitleGenre:       NewTitleGenreRepository(db, log),
		Review:           NewReviewRepository(db, log),
		Comment:          NewCommentRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
