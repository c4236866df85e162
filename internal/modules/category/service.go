package category

import (
	"errors"
	"time"

	"github.com/inklet/core/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CategoryWithCount carries the live-article usage count alongside the row.
type CategoryWithCount struct {
	models.CategoryModel
	ArticleCount int64 `json:"articleCount"`
}

func (s *Service) List() ([]CategoryWithCount, error) {
	var categories []models.CategoryModel
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	// One grouped query instead of a count per category.
	type pair struct {
		CategoryID uint
		N          int64
	}
	var pairs []pair
	if err := s.db.Model(&models.ArticleModel{}).
		Select("category_id, COUNT(*) AS n").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&pairs).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(pairs))
	for _, p := range pairs {
		counts[p.CategoryID] = p.N
	}

	out := make([]CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryWithCount{CategoryModel: c, ArticleCount: counts[c.ID]})
	}
	return out, nil
}

func (s *Service) GetByID(id uint) (*models.CategoryModel, error) {
	var c models.CategoryModel
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errNameTaken
	}

	c := models.CategoryModel{Name: dto.Name, Color: dto.Color}
	if err := s.db.Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errNameTaken
		}
		return nil, err
	}
	return &c, nil
}

func (s *Service) Update(id uint, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	c, err := s.GetByID(id)
	if err != nil || c == nil {
		return c, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if dto.Name != nil && *dto.Name != c.Name {
		var count int64
		if err := s.db.Model(&models.CategoryModel{}).
			Where("name = ? AND id <> ?", *dto.Name, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errNameTaken
		}
		updates["name"] = *dto.Name
	}
	if dto.Color != nil {
		updates["color"] = *dto.Color
	}

	if err := s.db.Model(c).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete refuses while any live article still references the category.
func (s *Service) Delete(id uint) (*models.CategoryModel, error) {
	c, err := s.GetByID(id)
	if err != nil || c == nil {
		return c, err
	}

	var inUse int64
	if err := s.db.Model(&models.ArticleModel{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
		return nil, err
	}
	if inUse > 0 {
		return nil, errInUse
	}

	if err := s.db.Delete(&models.CategoryModel{}, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}
