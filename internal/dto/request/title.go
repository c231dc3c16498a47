package request

// TitleRequest is the write shape: category and genres are given by slug,
// the read shape nests the full objects.
type TitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required,min=1"`
	Description *string  `json:"description,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Genres      []string `json:"genre,omitempty"`
}

type UpdateTitleRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=256"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Genres      []string `json:"genre,omitempty"`
}
