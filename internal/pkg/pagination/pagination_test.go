package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ctxWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
		wantErr  bool
	}{
		{"defaults", "", 1, 10, false},
		{"explicit", "page=3&pageSize=25", 3, 25, false},
		{"max_size", "pageSize=100", 1, 100, false},
		{"zero_page", "page=0", 0, 0, true},
		{"negative_page", "page=-1", 0, 0, true},
		{"zero_size", "pageSize=0", 0, 0, true},
		{"oversized", "pageSize=101", 0, 0, true},
		{"non_numeric_page", "page=abc", 0, 0, true},
		{"float_size", "pageSize=2.5", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := pagination.FromContext(ctxWithQuery(t, tt.query))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantSize, q.PageSize)
		})
	}
}

type row struct {
	ID uint `gorm:"primaryKey"`
	N  int
}

func TestPaginate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))

	for i := 1; i <= 23; i++ {
		require.NoError(t, db.Create(&row{N: i}).Error)
	}

	var page []row
	pag, err := pagination.Paginate(db.Model(&row{}).Order("n ASC"), pagination.Query{Page: 3, PageSize: 10}, &page)
	require.NoError(t, err)

	assert.Equal(t, int64(23), pag.Total)
	assert.Equal(t, 3, pag.TotalPages)
	assert.Len(t, page, 3)
	assert.Equal(t, 21, page[0].N)

	// A page past the end is empty but keeps the same totals.
	var empty []row
	pag, err = pagination.Paginate(db.Model(&row{}), pagination.Query{Page: 9, PageSize: 10}, &empty)
	require.NoError(t, err)
	assert.Equal(t, int64(23), pag.Total)
	assert.Empty(t, empty)
}
