package response

import "review-hub/internal/data/entity"

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Helper converter
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		Name: genre.Name,
		Slug: genre.Slug,
	}
}
