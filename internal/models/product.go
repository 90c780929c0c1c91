// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is the core catalog entity. ID and SupplierID are immutable
// after creation; the counters at the bottom are owned by outside
// collaborators and survive partial updates untouched.
type Product struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	Name             string         `json:"name" gorm:"size:255;not null"`
	Brand            string         `json:"brand,omitempty" gorm:"size:100"`
	Model            string         `json:"model,omitempty" gorm:"size:100"`
	Description      string         `json:"description" gorm:"type:text"`
	ShortDescription string         `json:"short_description" gorm:"size:500"`
	BasePrice        float64        `json:"base_price" gorm:"type:decimal(12,2);not null"`
	Pricing          PriceTiers     `json:"pricing" gorm:"embedded"`
	StockQuantity    int            `json:"stock_quantity" gorm:"default:0"`
	MinOrderQuantity int            `json:"min_order_quantity" gorm:"default:1"`
	MaxOrderQuantity *int           `json:"max_order_quantity,omitempty"`
	Categories       pq.StringArray `json:"categories" gorm:"type:text[]"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	SupplierID       uuid.UUID      `json:"supplier_id" gorm:"type:uuid;not null;index"`
	Status           ProductStatus  `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	ApprovalStatus   ApprovalStatus `json:"approval_status" gorm:"type:varchar(20);default:'pending';index"`
	ApprovedAt       *time.Time     `json:"approved_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	// Read-mostly counters, maintained outside the catalog engine.
	ViewCount   int64   `json:"view_count" gorm:"default:0"`
	SalesCount  int64   `json:"sales_count" gorm:"default:0"`
	Rating      float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount int64   `json:"review_count" gorm:"default:0"`
}

// HasCategory reports whether the product is assigned to the category.
func (p *Product) HasCategory(categoryID string) bool {
	for _, c := range p.Categories {
		if c == categoryID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out as a read-only snapshot.
func (p *Product) Clone() Product {
	out := *p
	if p.Categories != nil {
		out.Categories = append(pq.StringArray(nil), p.Categories...)
	}
	if p.Images != nil {
		out.Images = append(pq.StringArray(nil), p.Images...)
	}
	if p.MaxOrderQuantity != nil {
		v := *p.MaxOrderQuantity
		out.MaxOrderQuantity = &v
	}
	if p.ApprovedAt != nil {
		t := *p.ApprovedAt
		out.ApprovedAt = &t
	}
	return out
}
