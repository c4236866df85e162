package article

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inklet/core/internal/models"
	"github.com/inklet/core/internal/pkg/pagination"
	"github.com/inklet/core/internal/pkg/response"
	"github.com/inklet/core/internal/pkg/slug"
	"gorm.io/gorm"
)

// Service handles article business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns one page of non-deleted articles matching the filters,
// pinned first, newest first. Categories and tags are resolved in two
// batched queries for the whole page.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.ArticleModel, response.Pagination, error) {
	tx := s.db.Model(&models.ArticleModel{}).
		Preload("Category").
		Preload("Tags").
		Order("pinned DESC, created_at DESC")

	if lq.Search != nil && *lq.Search != "" {
		like := "%" + *lq.Search + "%"
		tx = tx.Where("title LIKE ? OR subtitle LIKE ? OR content LIKE ?", like, like, like)
	}
	if lq.Status != nil {
		tx = tx.Where("status = ?", *lq.Status)
	}
	if lq.CategoryID != nil {
		tx = tx.Where("category_id = ?", *lq.CategoryID)
	}

	var articles []models.ArticleModel
	pag, err := pagination.Paginate(tx, q, &articles)
	return articles, pag, err
}

// GetByID fetches a non-deleted article with its category and tags.
func (s *Service) GetByID(id uint) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Preload("Category").Preload("Tags").First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByIDIncludeDeleted fetches an article regardless of soft deletion.
func (s *Service) GetByIDIncludeDeleted(id uint) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Unscoped().First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new article, deriving the slug from the title when none
// is supplied.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	slugValue := ""
	if dto.Slug != nil {
		slugValue = *dto.Slug
	}
	if slugValue == "" {
		slugValue = slug.From(dto.Title)
	}
	if slugValue == "" {
		slugValue = "article-" + uuid.New().String()[:8]
	}

	var count int64
	if err := s.db.Model(&models.ArticleModel{}).Where("slug = ?", slugValue).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errSlugTaken
	}

	a := models.ArticleModel{
		Title:        dto.Title,
		Subtitle:     dto.Subtitle,
		Slug:         slugValue,
		Summary:      dto.Summary,
		Content:      dto.Content,
		Status:       models.StatusDraft,
		CategoryID:   dto.CategoryID,
		CoverMediaID: dto.CoverMediaID,
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}
	if dto.Pinned != nil {
		a.Pinned = *dto.Pinned
	}

	if err := s.db.Create(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errSlugTaken
		}
		return nil, err
	}
	return s.GetByID(a.ID)
}

// Update patches the provided fields of a non-deleted article. Soft-deleted
// rows are treated as not found.
func (s *Service) Update(id uint, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	existing, err := s.GetByID(id)
	if err != nil || existing == nil {
		return existing, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Slug != nil && *dto.Slug != existing.Slug {
		var count int64
		if err := s.db.Model(&models.ArticleModel{}).Where("slug = ? AND id <> ?", *dto.Slug, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errSlugTaken
		}
		updates["slug"] = *dto.Slug
	}
	if dto.Summary != nil {
		updates["summary"] = *dto.Summary
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.Pinned != nil {
		updates["pinned"] = *dto.Pinned
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.CoverMediaID != nil {
		updates["cover_media_id"] = *dto.CoverMediaID
	}

	// UpdatedAt refreshes even when only associations changed upstream.
	updates["updated_at"] = time.Now()

	if err := s.db.Model(&models.ArticleModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errSlugTaken
		}
		return nil, err
	}
	return s.GetByID(id)
}

// Delete stamps deletedAt on the article and returns the soft-deleted row.
// Unlike every other operation it bypasses the soft-delete filter, so
// deleting an already-deleted article still succeeds at the storage layer.
func (s *Service) Delete(id uint) (*models.ArticleModel, error) {
	a, err := s.GetByIDIncludeDeleted(id)
	if err != nil || a == nil {
		return a, err
	}

	now := time.Now()
	if err := s.db.Unscoped().Model(&models.ArticleModel{}).Where("id = ?", id).
		Update("deleted_at", now).Error; err != nil {
		return nil, err
	}
	a.DeletedAt = gorm.DeletedAt{Time: now, Valid: true}
	return a, nil
}

// Tags returns the tags associated with an article.
func (s *Service) Tags(articleID uint) ([]models.TagModel, error) {
	var tags []models.TagModel
	err := s.db.Model(&models.TagModel{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Find(&tags).Error
	return tags, err
}

// SetTags replaces the article's tag set wholesale inside one transaction,
// so readers never observe the empty window between delete and insert. An
// empty set is valid and clears all tags.
func (s *Service) SetTags(articleID uint, tagIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTagModel{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&models.TagModel{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(uniqueIDs(tagIDs)) {
			return fmt.Errorf("one or more tags do not exist")
		}

		rows := make([]models.ArticleTagModel, 0, len(tagIDs))
		for _, tagID := range uniqueIDs(tagIDs) {
			rows = append(rows, models.ArticleTagModel{ArticleID: articleID, TagID: tagID})
		}
		return tx.Create(&rows).Error
	})
}

// MediaItem is a media object joined with its association purpose.
type MediaItem struct {
	models.MediaModel
	Purpose *string `json:"purpose"`
}

// Media returns the media objects associated with an article.
func (s *Service) Media(articleID uint) ([]MediaItem, error) {
	var items []MediaItem
	err := s.db.Model(&models.MediaModel{}).
		Select("media.*, article_media.purpose").
		Joins("JOIN article_media ON article_media.media_id = media.id").
		Where("article_media.article_id = ?", articleID).
		Find(&items).Error
	return items, err
}

// AddMedia links a media object to an article.
func (s *Service) AddMedia(articleID, mediaID uint, purpose *string) (*models.ArticleMediaModel, error) {
	var mediaCount int64
	if err := s.db.Model(&models.MediaModel{}).Where("id = ?", mediaID).Count(&mediaCount).Error; err != nil {
		return nil, err
	}
	if mediaCount == 0 {
		return nil, nil
	}

	row := models.ArticleMediaModel{ArticleID: articleID, MediaID: mediaID, Purpose: purpose}
	if err := s.db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("media already linked to article")
		}
		return nil, err
	}
	return &row, nil
}

// RemoveMedia unlinks a media object from an article. Returns false when no
// association existed.
func (s *Service) RemoveMedia(articleID, mediaID uint) (bool, error) {
	res := s.db.Where("article_id = ? AND media_id = ?", articleID, mediaID).
		Delete(&models.ArticleMediaModel{})
	return res.RowsAffected > 0, res.Error
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
