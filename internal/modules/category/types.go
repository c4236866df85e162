package category

import "errors"

type CreateCategoryDTO struct {
	Name  string  `json:"name" binding:"required,max=64"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type UpdateCategoryDTO struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=64"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

var (
	errNameTaken = errors.New("category name already exists")
	errInUse     = errors.New("category is referenced by existing articles")
)
