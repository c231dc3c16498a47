package response

import (
	"time"

	"review-hub/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	TitleID   string    `json:"title_id"`
	Author    string    `json:"author"`
	Score     int       `json:"score"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, author string) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		TitleID:   review.TitleID.String(),
		Author:    author,
		Score:     review.Score,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}
