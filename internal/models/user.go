package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownerSlot is a fixed sentinel; its unique index guarantees at most one
// administrator row even if two registrations race past the count check.
const ownerSlot = 1

// UserModel is the single administrator credential.
type UserModel struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"        gorm:"not null"`
	OwnerSlot int       `json:"-"        gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.OwnerSlot = ownerSlot
	return nil
}
