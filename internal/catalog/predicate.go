// internal/catalog/predicate.go
package catalog

import (
	"strings"

	"github.com/openmall/catalog-backend/internal/models"
)

// Predicate reports whether a record satisfies every constraint of a
// filter specification.
type Predicate func(*models.Product) bool

// BuildPredicate compiles the filter into a single conjunctive
// predicate. Dimensions without a constraint are no-ops, so an empty
// filter admits everything.
func BuildPredicate(f Filter) Predicate {
	var checks []Predicate

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		checks = append(checks, func(p *models.Product) bool {
			if strings.Contains(strings.ToLower(p.Name), term) {
				return true
			}
			return p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), term)
		})
	}

	if f.CategoryID != "" {
		categoryID := f.CategoryID
		checks = append(checks, func(p *models.Product) bool {
			return p.HasCategory(categoryID)
		})
	}

	if f.SupplierID != nil {
		supplierID := *f.SupplierID
		checks = append(checks, func(p *models.Product) bool {
			return p.SupplierID == supplierID
		})
	}

	if f.Status != nil {
		status := *f.Status
		checks = append(checks, func(p *models.Product) bool {
			return p.Status == status
		})
	}

	if f.ApprovalStatus != nil {
		approval := *f.ApprovalStatus
		checks = append(checks, func(p *models.Product) bool {
			return p.ApprovalStatus == approval
		})
	}

	if f.MinPrice != nil {
		min := *f.MinPrice
		checks = append(checks, func(p *models.Product) bool {
			return p.BasePrice >= min
		})
	}

	if f.MaxPrice != nil {
		max := *f.MaxPrice
		checks = append(checks, func(p *models.Product) bool {
			return p.BasePrice <= max
		})
	}

	return func(p *models.Product) bool {
		for _, check := range checks {
			if !check(p) {
				return false
			}
		}
		return true
	}
}

// ApplyPredicate filters records in place order, returning the subset
// that matches.
func ApplyPredicate(records []models.Product, pred Predicate) []models.Product {
	matched := make([]models.Product, 0, len(records))
	for i := range records {
		if pred(&records[i]) {
			matched = append(matched, records[i])
		}
	}
	return matched
}
