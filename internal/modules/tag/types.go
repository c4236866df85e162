package tag

import "errors"

type CreateTagDTO struct {
	Name  string  `json:"name" binding:"required,max=64"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type UpdateTagDTO struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=64"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

var errNameTaken = errors.New("tag name already exists")
