// Package pagination parses and applies page/pageSize query parameters.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query holds validated pagination parameters.
type Query struct {
	Page     int
	PageSize int
}

// FromContext extracts pagination params from the request. Out-of-range
// values are rejected, not clamped.
func FromContext(c *gin.Context) (Query, error) {
	page, err := parseParam(c, "page", DefaultPage)
	if err != nil {
		return Query{}, err
	}
	size, err := parseParam(c, "pageSize", DefaultPageSize)
	if err != nil {
		return Query{}, err
	}

	if page < 1 {
		return Query{}, fmt.Errorf("page must be a positive integer")
	}
	if size < 1 {
		return Query{}, fmt.Errorf("pageSize must be a positive integer")
	}
	if size > MaxPageSize {
		return Query{}, fmt.Errorf("pageSize must not exceed %d", MaxPageSize)
	}
	return Query{Page: page, PageSize: size}, nil
}

// Paginate counts the full matching set, then applies limit/offset to fetch
// one page. The count shares the query's predicate, not its result set.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (q.Page - 1) * q.PageSize
	if err := db.Offset(offset).Limit(q.PageSize).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))

	return response.Pagination{
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func parseParam(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
