package media_test

import (
	"context"
	"testing"

	"github.com/inklet/core/internal/models"
	"github.com/inklet/core/internal/modules/media"
	"github.com/inklet/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*media.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MediaModel{}, &models.ArticleMediaModel{}))
	// No object store configured; deletes only touch the database.
	return media.NewService(db, nil), db
}

func seedMedia(t *testing.T, db *gorm.DB, key, typ, filename string) *models.MediaModel {
	t.Helper()
	m := models.MediaModel{Type: typ, ObjectKey: key, URL: "https://cdn/" + key, Filename: filename}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func TestListFilters(t *testing.T) {
	svc, db := newTestService(t)
	seedMedia(t, db, "uploads/a.png", "image", "diagram.png")
	seedMedia(t, db, "uploads/b.mp4", "video", "demo.mp4")

	items, pag, err := svc.List(pagination.Query{Page: 1, PageSize: 10}, media.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), pag.Total)

	items, _, err = svc.List(pagination.Query{Page: 1, PageSize: 10}, media.ListQuery{Type: "image"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "diagram.png", items[0].Filename)

	items, _, err = svc.List(pagination.Query{Page: 1, PageSize: 10}, media.ListQuery{Search: "demo"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "demo.mp4", items[0].Filename)
}

func TestDeleteBlockedWhileLinked(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMedia(t, db, "uploads/a.png", "image", "a.png")

	require.NoError(t, db.Create(&models.ArticleMediaModel{ArticleID: 1, MediaID: m.ID}).Error)

	_, err := svc.Delete(context.Background(), m.ID)
	require.Error(t, err)

	require.NoError(t, db.Delete(&models.ArticleMediaModel{ArticleID: 1, MediaID: m.ID}).Error)
	got, err := svc.Delete(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	gone, err := svc.GetByID(m.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUpdateRename(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMedia(t, db, "uploads/a.png", "image", "a.png")

	name := "renamed.png"
	got, err := svc.Update(m.ID, &media.UpdateMediaDTO{Filename: &name})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "renamed.png", got.Filename)

	missing, err := svc.Update(999, &media.UpdateMediaDTO{Filename: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
