package auth

import "errors"

type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=128"`
}

var (
	errAdminExists = errors.New("administrator already registered")
	// errInvalidCredentials covers both unknown username and wrong password
	// so the two cases are indistinguishable to the caller.
	errInvalidCredentials = errors.New("invalid username or password")
	errPasswordSameAsOld  = errors.New("new password equals the old one")
)
