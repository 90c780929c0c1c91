// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/catalog"
	"github.com/openmall/catalog-backend/internal/models"
)

// GetFilterPatch translates query parameters into a filter patch.
// Absent parameters stay nil so the facade keeps its sticky values;
// present-but-empty parameters clear the corresponding constraint.
// Price bounds of zero clear the bound too, which is what the
// storefront sends for "no bound".
func GetFilterPatch(c *gin.Context, maxPageSize int) *catalog.FilterPatch {
	patch := &catalog.FilterPatch{}

	if v, ok := c.GetQuery("search"); ok {
		patch.Search = &v
	}
	if v, ok := c.GetQuery("category"); ok {
		patch.CategoryID = &v
	}
	if v, ok := c.GetQuery("supplier"); ok {
		if id, err := uuid.Parse(v); err == nil {
			patch.SupplierID = &id
		} else if v == "" {
			nilID := uuid.Nil
			patch.SupplierID = &nilID
		}
	}
	if v, ok := c.GetQuery("status"); ok {
		status := models.ProductStatus(v)
		patch.Status = &status
	}
	if v, ok := c.GetQuery("approval_status"); ok {
		approval := models.ApprovalStatus(v)
		patch.ApprovalStatus = &approval
	}
	if v, ok := c.GetQuery("price_min"); ok {
		patch.MinPrice = parseBound(v)
	}
	if v, ok := c.GetQuery("price_max"); ok {
		patch.MaxPrice = parseBound(v)
	}
	if v, ok := c.GetQuery("sort"); ok {
		key := catalog.SortKey(v)
		if key.Valid() {
			patch.SortBy = &key
		}
	}
	if v, ok := c.GetQuery("order"); ok {
		if v == string(catalog.SortAsc) || v == string(catalog.SortDesc) {
			order := catalog.SortOrder(v)
			patch.SortOrder = &order
		}
	}
	if v, ok := c.GetQuery("page"); ok {
		if page, err := strconv.Atoi(v); err == nil && page >= 1 {
			patch.Page = &page
		}
	}
	if v, ok := c.GetQuery("limit"); ok {
		if limit, err := strconv.Atoi(v); err == nil && limit >= 1 {
			if limit > maxPageSize {
				limit = maxPageSize
			}
			patch.PageSize = &limit
		}
	}

	return patch
}

// parseBound maps "", "0" and malformed values to a cleared bound.
func parseBound(raw string) *float64 {
	cleared := -1.0
	if raw == "" {
		return &cleared
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return &cleared
	}
	return &v
}

func SetPaginationHeaders(c *gin.Context, p catalog.Pagination) {
	c.Header("X-Total-Count", strconv.Itoa(p.Total))
	c.Header("X-Page", strconv.Itoa(p.Page))
	c.Header("X-Per-Page", strconv.Itoa(p.PageSize))
	c.Header("X-Total-Pages", strconv.Itoa(p.TotalPages))
}

func PaginatedResponse(c *gin.Context, records interface{}, p catalog.Pagination) {
	SetPaginationHeaders(c, p)
	SuccessResponseWithMeta(c, records, gin.H{
		"pagination": gin.H{
			"page":        p.Page,
			"page_size":   p.PageSize,
			"total":       p.Total,
			"total_pages": p.TotalPages,
		},
	})
}
