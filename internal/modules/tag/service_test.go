package tag_test

import (
	"testing"

	"github.com/inklet/core/internal/models"
	"github.com/inklet/core/internal/modules/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*tag.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TagModel{}, &models.ArticleModel{}, &models.ArticleTagModel{}))
	return tag.NewService(db), db
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(&tag.CreateTagDTO{Name: "go"})
	require.NoError(t, err)

	_, err = svc.Create(&tag.CreateTagDTO{Name: "go"})
	assert.Error(t, err)
}

func TestListReportsUsage(t *testing.T) {
	svc, db := newTestService(t)

	goTag, err := svc.Create(&tag.CreateTagDTO{Name: "go"})
	require.NoError(t, err)
	_, err = svc.Create(&tag.CreateTagDTO{Name: "web"})
	require.NoError(t, err)

	a := models.ArticleModel{Title: "a", Slug: "a", Content: "x"}
	b := models.ArticleModel{Title: "b", Slug: "b", Content: "x"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&models.ArticleTagModel{ArticleID: a.ID, TagID: goTag.ID}).Error)
	require.NoError(t, db.Create(&models.ArticleTagModel{ArticleID: b.ID, TagID: goTag.ID}).Error)

	out, err := svc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)

	byName := map[string]int64{}
	for _, item := range out {
		byName[item.Name] = item.UsageCount
	}
	assert.Equal(t, int64(2), byName["go"])
	assert.Equal(t, int64(0), byName["web"])
}

func TestDeleteCascadesAssociations(t *testing.T) {
	svc, db := newTestService(t)

	goTag, err := svc.Create(&tag.CreateTagDTO{Name: "go"})
	require.NoError(t, err)

	a := models.ArticleModel{Title: "a", Slug: "a", Content: "x"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&models.ArticleTagModel{ArticleID: a.ID, TagID: goTag.ID}).Error)

	got, err := svc.Delete(goTag.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	var assocCount int64
	require.NoError(t, db.Model(&models.ArticleTagModel{}).Count(&assocCount).Error)
	assert.Zero(t, assocCount)

	gone, err := svc.GetByID(goTag.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
