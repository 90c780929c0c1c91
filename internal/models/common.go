// internal/models/common.go
package models

// ProductStatus is the publication axis of the product lifecycle.
type ProductStatus string

const (
	ProductStatusDraft        ProductStatus = "draft"
	ProductStatusPending      ProductStatus = "pending"
	ProductStatusApproved     ProductStatus = "approved"
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Valid reports whether s is one of the recognized publication states.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusPending, ProductStatusApproved,
		ProductStatusActive, ProductStatusInactive, ProductStatusDiscontinued:
		return true
	}
	return false
}

// ApprovalStatus is the approval axis, independent of publication status
// except for the coupling applied by the lifecycle engine.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// PriceTiers is the fixed three-tier member price map. The business
// convention vip <= premium <= gold <= base price is set by callers and
// is not enforced by the engine.
type PriceTiers struct {
	Gold    float64 `json:"gold" gorm:"column:price_gold;type:decimal(12,2);default:0" validate:"min=0"`
	Premium float64 `json:"premium" gorm:"column:price_premium;type:decimal(12,2);default:0" validate:"min=0"`
	VIP     float64 `json:"vip" gorm:"column:price_vip;type:decimal(12,2);default:0" validate:"min=0"`
}
