package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	TitleID  uuid.UUID `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Score    int       `db:"score"` // 1-10
	Text     string    `db:"text"`
}
