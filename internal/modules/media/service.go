package media

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/inklet/core/internal/models"
	"github.com/inklet/core/internal/pkg/pagination"
	"github.com/inklet/core/internal/pkg/response"
	"github.com/inklet/core/internal/pkg/storage"
	"gorm.io/gorm"
)

// MaxUploadSize caps a single upload at 50 MiB.
const MaxUploadSize = 50 << 20

type Service struct {
	db    *gorm.DB
	store *storage.Client
}

func NewService(db *gorm.DB, store *storage.Client) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.MediaModel, response.Pagination, error) {
	query := s.db.Model(&models.MediaModel{}).Order("created_at DESC")
	if lq.Type != "" {
		query = query.Where("type = ?", lq.Type)
	}
	if lq.Search != "" {
		query = query.Where("filename LIKE ?", "%"+lq.Search+"%")
	}

	var items []models.MediaModel
	pag, err := pagination.Paginate(query, q, &items)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, pag, nil
}

func (s *Service) GetByID(id uint) (*models.MediaModel, error) {
	var m models.MediaModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Upload streams the file into object storage and records the row.
func (s *Service) Upload(ctx context.Context, fh *multipart.FileHeader) (*models.MediaModel, error) {
	if s.store == nil {
		return nil, errNoStorage
	}
	if fh.Size > MaxUploadSize {
		return nil, errUploadTooBig
	}
	filename := filepath.Base(fh.Filename)
	if filename == "" || filename == "." {
		return nil, errEmptyFilename
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := "uploads/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	url, err := s.store.Put(ctx, key, f, contentType)
	if err != nil {
		return nil, err
	}

	size := fh.Size
	m := models.MediaModel{
		Type:      typeFromMime(contentType),
		ObjectKey: key,
		URL:       url,
		Filename:  filename,
		MimeType:  &contentType,
		Size:      &size,
	}
	if err := s.db.Create(&m).Error; err != nil {
		// Orphaned objects are cleaned up lazily; a failed row insert
		// should not leave the upload behind.
		_ = s.store.Delete(ctx, key)
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(id uint, dto *UpdateMediaDTO) (*models.MediaModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	if dto.Filename != nil {
		if err := s.db.Model(m).Update("filename", *dto.Filename).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Delete refuses while any article still links the media, then removes the
// row and the stored object.
func (s *Service) Delete(ctx context.Context, id uint) (*models.MediaModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}

	var inUse int64
	if err := s.db.Model(&models.ArticleMediaModel{}).Where("media_id = ?", id).Count(&inUse).Error; err != nil {
		return nil, err
	}
	if inUse > 0 {
		return nil, errInUse
	}

	if err := s.db.Delete(&models.MediaModel{}, id).Error; err != nil {
		return nil, err
	}
	if s.store != nil && m.ObjectKey != "" {
		if err := s.store.Delete(ctx, m.ObjectKey); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func typeFromMime(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio"
	default:
		return "file"
	}
}
