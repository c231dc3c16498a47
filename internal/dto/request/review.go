package request

// Author and title are taken from the request context and URL path, never
// from the body.
type CreateReviewRequest struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required,min=1,max=10"`
}

type UpdateReviewRequest struct {
	Text  *string `json:"text,omitempty"`
	Score *int    `json:"score,omitempty" validate:"omitempty,min=1,max=10"`
}
