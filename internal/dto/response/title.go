package response

import (
	"time"

	"review-hub/internal/data/entity"
)

type TitleResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *float64         `json:"rating"`
	Description *string          `json:"description,omitempty"`
	Category    CategoryResponse `json:"category"`
	Genres      []GenreResponse  `json:"genre"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Helper converter
func TitleToResponse(title *entity.Title, category *entity.Category, genres []*entity.Genre) TitleResponse {
	genreResponses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = GenreToResponse(genre)
	}

	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Rating:      title.Rating,
		Description: title.Description,
		Genres:      genreResponses,
		CreatedAt:   title.CreatedAt,
	}

	if category != nil {
		resp.Category = CategoryToResponse(category)
	}

	return resp
}
