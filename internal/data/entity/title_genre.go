package entity

import (
	"github.com/google/uuid"
)

type TitleGenre struct {
	BaseSimple
	TitleID uuid.UUID `db:"title_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
