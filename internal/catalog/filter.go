// internal/catalog/filter.go
package catalog

import (
	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/models"
)

type SortKey string

const (
	SortByName    SortKey = "name"
	SortByPrice   SortKey = "price"
	SortBySales   SortKey = "sales"
	SortByRating  SortKey = "rating"
	SortByCreated SortKey = "created"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPrice, SortBySales, SortByRating, SortByCreated:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter is the resolved, sticky filter specification. Price bounds are
// pointers rather than zero sentinels so a legitimate zero bound stays
// distinguishable from "unconstrained".
type Filter struct {
	Search         string
	CategoryID     string
	SupplierID     *uuid.UUID
	Status         *models.ProductStatus
	ApprovalStatus *models.ApprovalStatus
	MinPrice       *float64
	MaxPrice       *float64
	SortBy         SortKey
	SortOrder      SortOrder
	Page           int
	PageSize       int
}

// FilterPatch is a partial filter update. Nil fields keep the previous
// sticky value; non-nil fields overwrite it, including overwriting with
// an empty/zero value to clear a constraint.
type FilterPatch struct {
	Search         *string
	CategoryID     *string
	SupplierID     *uuid.UUID
	Status         *models.ProductStatus
	ApprovalStatus *models.ApprovalStatus
	MinPrice       *float64
	MaxPrice       *float64
	SortBy         *SortKey
	SortOrder      *SortOrder
	Page           *int
	PageSize       *int
}

// DefaultFilter is the state ResetFilters restores: no constraints,
// newest first, first page.
func DefaultFilter(pageSize int) Filter {
	return Filter{
		SortBy:    SortByCreated,
		SortOrder: SortDesc,
		Page:      1,
		PageSize:  pageSize,
	}
}

// Merge applies the patch over f and returns the merged filter.
func (f Filter) Merge(patch *FilterPatch) Filter {
	if patch == nil {
		return f
	}
	if patch.Search != nil {
		f.Search = *patch.Search
	}
	if patch.CategoryID != nil {
		f.CategoryID = *patch.CategoryID
	}
	if patch.SupplierID != nil {
		if *patch.SupplierID == uuid.Nil {
			f.SupplierID = nil
		} else {
			id := *patch.SupplierID
			f.SupplierID = &id
		}
	}
	if patch.Status != nil {
		if *patch.Status == "" {
			f.Status = nil
		} else {
			s := *patch.Status
			f.Status = &s
		}
	}
	if patch.ApprovalStatus != nil {
		if *patch.ApprovalStatus == "" {
			f.ApprovalStatus = nil
		} else {
			s := *patch.ApprovalStatus
			f.ApprovalStatus = &s
		}
	}
	// A negative bound clears the constraint; zero remains a real bound.
	if patch.MinPrice != nil {
		if *patch.MinPrice < 0 {
			f.MinPrice = nil
		} else {
			v := *patch.MinPrice
			f.MinPrice = &v
		}
	}
	if patch.MaxPrice != nil {
		if *patch.MaxPrice < 0 {
			f.MaxPrice = nil
		} else {
			v := *patch.MaxPrice
			f.MaxPrice = &v
		}
	}
	if patch.SortBy != nil && patch.SortBy.Valid() {
		f.SortBy = *patch.SortBy
	}
	if patch.SortOrder != nil && (*patch.SortOrder == SortAsc || *patch.SortOrder == SortDesc) {
		f.SortOrder = *patch.SortOrder
	}
	if patch.Page != nil && *patch.Page >= 1 {
		f.Page = *patch.Page
	}
	if patch.PageSize != nil && *patch.PageSize >= 1 {
		f.PageSize = *patch.PageSize
	}
	return f
}
