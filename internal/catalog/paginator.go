// internal/catalog/paginator.go
package catalog

import (
	"math"

	"github.com/openmall/catalog-backend/internal/models"
)

// Pagination is derived metadata for the current view. Only Page and
// PageSize are caller-authored; Total and TotalPages are recomputed
// from the filtered set on every query.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices the ordered sequence to the 1-based page, clamped to
// the sequence bounds. An out-of-range page yields an empty slice, never
// an error.
func Paginate(records []models.Product, page, pageSize int) ([]models.Product, Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(records)
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageRecords := make([]models.Product, end-start)
	copy(pageRecords, records[start:end])

	return pageRecords, Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
