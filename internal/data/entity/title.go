package entity

import (
	"github.com/google/uuid"
)

type Title struct {
	BaseNoDelete
	Name        string    `db:"name"`
	Year        int       `db:"year"`
	Description *string   `db:"description"`
	CategoryID  uuid.UUID `db:"category_id"`

	// Rating is derived from review scores, not a column.
	// Nil when the title has no reviews.
	Rating *float64 `db:"-"`
}
