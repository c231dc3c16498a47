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

type ConfirmationCodeRepository interface {
	Create(ctx context.Context, code *entity.ConfirmationCode) error
	FindLatestValid(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type confirmationCodeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConfirmationCodeRepository(db database.PgxIface, log *zap.Logger) ConfirmationCodeRepository {
	return &confirmationCodeRepository{
		db:  db,
		log: log.With(zap.String("repository", "confirmation_code")),
	}
}

func (r *confirmationCodeRepository) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	query := `
		INSERT INTO confirmation_codes (id, user_id, code_hash, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.UserID,
		code.CodeHash,
		code.ExpiresAt,
		code.Used,
		code.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create confirmation code",
			zap.Error(err),
			zap.String("user_id", code.UserID.String()),
		)
		return fmt.Errorf("create confirmation code for user %s: %w", code.UserID.String(), err)
	}

	return nil
}

// FindLatestValid returns the newest unexpired, unused code for the user.
func (r *confirmationCodeRepository) FindLatestValid(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error) {
	query := `
		SELECT id, user_id, code_hash, expires_at, used, created_at
		FROM confirmation_codes
		WHERE user_id = $1 AND used = FALSE AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code entity.ConfirmationCode
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&code.ID,
		&code.UserID,
		&code.CodeHash,
		&code.ExpiresAt,
		&code.Used,
		&code.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find confirmation code",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find confirmation code for user %s: %w", userID.String(), err)
	}

	return &code, nil
}

func (r *confirmationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE confirmation_codes SET used = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark confirmation code used",
			zap.Error(err),
			zap.String("code_id", id.String()),
		)
		return fmt.Errorf("mark confirmation code %s used: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("confirmation code %s not found", id.String())
	}

	return nil
}
