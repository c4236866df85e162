// Package models declares the GORM persistence models.
package models

import "time"

// Base is the shared model for content entities with numeric ids.
type Base struct {
	ID        uint      `json:"id"        gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
