package article

import "errors"

type CreateArticleDTO struct {
	Title        string  `json:"title"    binding:"required,max=255"`
	Subtitle     *string `json:"subtitle"`
	Slug         *string `json:"slug"     binding:"omitempty,max=255"`
	Summary      *string `json:"summary"`
	Content      string  `json:"content"  binding:"required"`
	Status       *string `json:"status"   binding:"omitempty,oneof=draft published"`
	Pinned       *bool   `json:"pinned"`
	CategoryID   *uint   `json:"categoryId"`
	CoverMediaID *uint   `json:"coverMediaId"`
}

type UpdateArticleDTO struct {
	Title        *string `json:"title"    binding:"omitempty,min=1,max=255"`
	Subtitle     *string `json:"subtitle"`
	Slug         *string `json:"slug"     binding:"omitempty,min=1,max=255"`
	Summary      *string `json:"summary"`
	Content      *string `json:"content"  binding:"omitempty,min=1"`
	Status       *string `json:"status"   binding:"omitempty,oneof=draft published"`
	Pinned       *bool   `json:"pinned"`
	CategoryID   *uint   `json:"categoryId"`
	CoverMediaID *uint   `json:"coverMediaId"`
}

// ListQuery holds the optional list filters; absent filters are omitted from
// the predicate entirely.
type ListQuery struct {
	Search     *string `form:"search"`
	Status     *string `form:"status"     binding:"omitempty,oneof=draft published"`
	CategoryID *uint   `form:"categoryId" binding:"omitempty,min=1"`
}

// SetTagsDTO carries the full replacement tag set. The pointer distinguishes
// a missing field from an explicitly empty set, which is valid and clears
// all tags.
type SetTagsDTO struct {
	TagIDs *[]uint `json:"tagIds" binding:"required"`
}

type AddMediaDTO struct {
	MediaID uint    `json:"mediaId" binding:"required"`
	Purpose *string `json:"purpose"`
}

var errSlugTaken = errors.New("slug already in use")
