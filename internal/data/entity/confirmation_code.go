package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationCode is single-use: consumed on a successful token exchange.
// Only the bcrypt hash of the code is stored.
type ConfirmationCode struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
}
