package media

import "errors"

type UpdateMediaDTO struct {
	Filename *string `json:"filename" binding:"omitempty,min=1,max=255"`
}

type ListQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=image video audio file"`
	Search string `form:"search"`
}

var (
	errInUse         = errors.New("media is referenced by existing articles")
	errNoFile        = errors.New("request is missing an upload file")
	errNoStorage     = errors.New("object storage is not configured")
	errUploadTooBig  = errors.New("upload exceeds the size limit")
	errEmptyFilename = errors.New("upload has an empty filename")
)
