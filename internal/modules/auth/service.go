package auth

import (
	"errors"
	"time"

	"github.com/inklet/core/internal/models"
	"github.com/inklet/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service handles the administrator credential lifecycle.
type Service struct {
	db   *gorm.DB
	cost int
}

func NewService(db *gorm.DB, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{db: db, cost: bcryptCost}
}

// Register creates the one administrator credential. The count check is the
// fast path; the unique index on the owner slot column is the backstop that
// closes the check-then-act race.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.cost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{Username: dto.Username, Password: string(hash)}
	if err := s.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errAdminExists
		}
		return nil, err
	}
	return &u, nil
}

// Login verifies the credential and issues a session token. Unknown username
// and wrong password return the same error.
func (s *Service) Login(username, password string, ttl time.Duration) (string, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", errInvalidCredentials
	}
	return jwt.Sign(u.ID, jwt.RoleAdmin, ttl)
}

// ChangePassword rotates the credential after proving the old password.
func (s *Service) ChangePassword(id, oldPwd, newPwd string) error {
	var u models.UserModel
	if err := s.db.Select("id, password").First(&u, "id = ?", id).Error; err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPwd)); err != nil {
		return errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPwd)); err == nil {
		return errPasswordSameAsOld
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPwd), s.cost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Update("password", string(hash)).Error
}

// IsRegistered reports whether the administrator credential exists.
func (s *Service) IsRegistered() (bool, error) {
	var count int64
	err := s.db.Model(&models.UserModel{}).Count(&count).Error
	return count > 0, err
}
