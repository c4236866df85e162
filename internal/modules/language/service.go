package language

import (
	"errors"

	"github.com/inklet/core/internal/models"
	"gorm.io/gorm"
)

type CreateLanguageDTO struct {
	Lang      string `json:"lang" binding:"required,max=16"`
	Locale    string `json:"locale" binding:"required,max=32"`
	IsDefault bool   `json:"isDefault"`
}

var errLanguageExists = errors.New("language already exists")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.LanguageModel, error) {
	var langs []models.LanguageModel
	if err := s.db.Order("lang ASC").Find(&langs).Error; err != nil {
		return nil, err
	}
	return langs, nil
}

func (s *Service) Create(dto *CreateLanguageDTO) (*models.LanguageModel, error) {
	var count int64
	if err := s.db.Model(&models.LanguageModel{}).
		Where("lang = ? OR locale = ?", dto.Lang, dto.Locale).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errLanguageExists
	}

	l := models.LanguageModel{Lang: dto.Lang, Locale: dto.Locale, IsDefault: dto.IsDefault}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A single default at a time.
		if dto.IsDefault {
			if err := tx.Model(&models.LanguageModel{}).
				Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&l).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errLanguageExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) Delete(id uint) (*models.LanguageModel, error) {
	var l models.LanguageModel
	if err := s.db.First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Delete(&models.LanguageModel{}, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}
