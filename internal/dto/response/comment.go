package response

import (
	"time"

	"review-hub/internal/data/entity"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"review_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func CommentToResponse(comment *entity.Comment, author string) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		ReviewID:  comment.ReviewID.String(),
		Author:    author,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
