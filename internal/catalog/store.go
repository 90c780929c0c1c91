// internal/catalog/store.go
package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/models"
)

// Store is the single owner of the backing record collection. Lookups
// go through a uuid-keyed index; a separate order slice preserves the
// newest-first display convention. Callers only ever receive copies.
type Store struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*models.Product
	order []uuid.UUID
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		byID: make(map[uuid.UUID]*models.Product),
		now:  time.Now,
	}
}

// UpdatePatch carries partial-update fields. Nil pointers (and nil
// slices) leave the corresponding record field untouched. Status and
// approval status are deliberately absent: the lifecycle engine is the
// only code path allowed to change them.
type UpdatePatch struct {
	Name             *string
	Brand            *string
	Model            *string
	Description      *string
	ShortDescription *string
	BasePrice        *float64
	Pricing          *models.PriceTiers
	StockQuantity    *int
	MinOrderQuantity *int
	MaxOrderQuantity *int
	Categories       []string
	Images           []string
}

// Insert adds a new record at the front of the order. It fails with a
// collision error if the identifier is already present.
func (s *Store) Insert(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; exists {
		return models.Product{}, CollisionError(p.ID)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	stored := p.Clone()
	s.byID[p.ID] = &stored
	s.order = append([]uuid.UUID{p.ID}, s.order...)

	return stored.Clone(), nil
}

// Replace merges the patch over the existing record and stamps
// UpdatedAt. Counters and lifecycle fields pass through untouched.
func (s *Store) Replace(id uuid.UUID, patch UpdatePatch) (models.Product, error) {
	return s.Apply(id, func(p *models.Product) error {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Brand != nil {
			p.Brand = *patch.Brand
		}
		if patch.Model != nil {
			p.Model = *patch.Model
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.ShortDescription != nil {
			p.ShortDescription = *patch.ShortDescription
		}
		if patch.BasePrice != nil {
			p.BasePrice = *patch.BasePrice
		}
		if patch.Pricing != nil {
			p.Pricing = *patch.Pricing
		}
		if patch.StockQuantity != nil {
			p.StockQuantity = *patch.StockQuantity
		}
		if patch.MinOrderQuantity != nil {
			p.MinOrderQuantity = *patch.MinOrderQuantity
		}
		if patch.MaxOrderQuantity != nil {
			v := *patch.MaxOrderQuantity
			p.MaxOrderQuantity = &v
		}
		if patch.Categories != nil {
			p.Categories = append([]string(nil), patch.Categories...)
		}
		if patch.Images != nil {
			p.Images = append([]string(nil), patch.Images...)
		}
		return nil
	})
}

// Apply runs fn against the live record under the write lock and stamps
// UpdatedAt, so multi-field transitions commit atomically: no reader
// observes a half-applied record.
func (s *Store) Apply(id uuid.UUID, fn func(*models.Product) error) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.byID[id]
	if !exists {
		return models.Product{}, NotFoundError(id)
	}

	if err := fn(p); err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = s.now()

	return p.Clone(), nil
}

// Remove deletes the record and its order entry.
func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return NotFoundError(id)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a read-only snapshot of one record.
func (s *Store) Get(id uuid.UUID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.byID[id]
	if !exists {
		return models.Product{}, NotFoundError(id)
	}
	return p.Clone(), nil
}

// All returns a snapshot of every record in display order.
func (s *Store) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
