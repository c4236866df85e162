package tag

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

// TagWithCount carries how many articles currently use the tag.
type TagWithCount struct {
	models.TagModel
	UsageCount int64 `json:"usageCount"`
}

func (s *Service) List() ([]TagWithCount, error) {
	var tags []models.TagModel
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}

	type pair struct {
		TagID uint
		N     int64
	}
	var pairs []pair
	if err := s.db.Table("article_tags").
		Select("tag_id, COUNT(*) AS n").
		Group("tag_id").
		Scan(&pairs).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(pairs))
	for _, p := range pairs {
		counts[p.TagID] = p.N
	}

	out := make([]TagWithCount, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagWithCount{TagModel: t, UsageCount: counts[t.ID]})
	}
	return out, nil
}

func (s *Service) GetByID(id uint) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) Create(dto *CreateTagDTO) (*models.TagModel, error) {
	var count int64
	if err := s.db.Model(&models.TagModel{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errNameTaken
	}

	t := models.TagModel{Name: dto.Name, Color: dto.Color}
	if err := s.db.Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errNameTaken
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) Update(id uint, dto *UpdateTagDTO) (*models.TagModel, error) {
	t, err := s.GetByID(id)
	if err != nil || t == nil {
		return t, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if dto.Name != nil && *dto.Name != t.Name {
		var count int64
		if err := s.db.Model(&models.TagModel{}).
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

	if err := s.db.Model(t).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the tag and its article associations in one transaction.
func (s *Service) Delete(id uint) (*models.TagModel, error) {
	t, err := s.GetByID(id)
	if err != nil || t == nil {
		return t, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.ArticleTagModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TagModel{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
