package models

import "time"

// MediaModel is an uploaded media object stored in an S3-compatible bucket.
// A media row may not be deleted while any article association references it.
type MediaModel struct {
	ID        uint      `json:"id"        gorm:"primaryKey"`
	Type      string    `json:"type"      gorm:"not null"` // "image" | "video" | "audio" | "file"
	ObjectKey string    `json:"objectKey" gorm:"uniqueIndex;not null"`
	URL       string    `json:"url"       gorm:"not null"`
	Filename  string    `json:"filename"  gorm:"not null"`
	MimeType  *string   `json:"mimeType"`
	Size      *int64    `json:"size"`
	Width     *int      `json:"width"`
	Height    *int      `json:"height"`
	Duration  *int      `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

func (MediaModel) TableName() string { return "media" }
