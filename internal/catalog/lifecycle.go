// internal/catalog/lifecycle.go
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/models"
)

// Lifecycle validates and applies transitions across the two state
// axes. The approval axis stays permissive (last write wins, matching
// the behavior the dashboards rely on); the status axis only rejects
// changes to a discontinued record, which is terminal.
type Lifecycle struct {
	store *Store
	now   func() time.Time
}

func NewLifecycle(store *Store, now func() time.Time) *Lifecycle {
	if now == nil {
		now = time.Now
	}
	return &Lifecycle{store: store, now: now}
}

// SetStatus moves the record on the publication axis.
func (l *Lifecycle) SetStatus(id uuid.UUID, next models.ProductStatus) (models.Product, error) {
	if !next.Valid() {
		return models.Product{}, InvalidInputError("unknown product status: %q", next)
	}
	return l.store.Apply(id, func(p *models.Product) error {
		if p.Status == models.ProductStatusDiscontinued && next != models.ProductStatusDiscontinued {
			return InvalidTransitionError("product %s is discontinued", id)
		}
		p.Status = next
		return nil
	})
}

// SetApprovalStatus moves the record on the approval axis. Approval
// couples to the publication axis: the record becomes active and gets
// an approval timestamp in the same atomic update.
func (l *Lifecycle) SetApprovalStatus(id uuid.UUID, next models.ApprovalStatus) (models.Product, error) {
	if !next.Valid() {
		return models.Product{}, InvalidInputError("unknown approval status: %q", next)
	}
	return l.store.Apply(id, func(p *models.Product) error {
		p.ApprovalStatus = next
		if next == models.ApprovalStatusApproved {
			approvedAt := l.now()
			p.ApprovedAt = &approvedAt
			p.Status = models.ProductStatusActive
		}
		return nil
	})
}
