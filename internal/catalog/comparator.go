// internal/catalog/comparator.go
package catalog

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/openmall/catalog-backend/internal/models"
)

// Comparator is a strict-weak "less" over two records. Equal-key pairs
// compare false both ways, which keeps sort.SliceStable from reordering
// them.
type Comparator func(a, b *models.Product) bool

// BuildComparator compiles a (sort key, sort order) pair into a
// comparator. Name comparison is locale-aware via the collator; the
// remaining keys are plain numeric or instant comparisons.
func BuildComparator(key SortKey, order SortOrder, collator *collate.Collator) Comparator {
	var cmp func(a, b *models.Product) int

	switch key {
	case SortByName:
		cmp = func(a, b *models.Product) int {
			return collator.CompareString(a.Name, b.Name)
		}
	case SortByPrice:
		cmp = func(a, b *models.Product) int {
			return compareFloat(a.BasePrice, b.BasePrice)
		}
	case SortBySales:
		cmp = func(a, b *models.Product) int {
			return compareInt64(a.SalesCount, b.SalesCount)
		}
	case SortByRating:
		cmp = func(a, b *models.Product) int {
			return compareFloat(a.Rating, b.Rating)
		}
	default: // SortByCreated
		cmp = func(a, b *models.Product) int {
			if a.CreatedAt.Before(b.CreatedAt) {
				return -1
			}
			if a.CreatedAt.After(b.CreatedAt) {
				return 1
			}
			return 0
		}
	}

	if order == SortDesc {
		return func(a, b *models.Product) bool { return cmp(a, b) > 0 }
	}
	return func(a, b *models.Product) bool { return cmp(a, b) < 0 }
}

// SortRecords orders records with the comparator, preserving the input
// order of equal-key records.
func SortRecords(records []models.Product, less Comparator) {
	sort.SliceStable(records, func(i, j int) bool {
		return less(&records[i], &records[j])
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
