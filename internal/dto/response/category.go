package response

import "review-hub/internal/data/entity"

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Helper converter
func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
	}
}
