// internal/datasource/memory.go
package datasource

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/catalog"
	"github.com/openmall/catalog-backend/internal/models"
)

// MemorySource serves a fixed record set with simulated request
// latency, standing in for the remote catalog service during local
// development and tests.
type MemorySource struct {
	records []models.Product
	latency time.Duration
}

func NewMemorySource(records []models.Product, latency time.Duration) *MemorySource {
	return &MemorySource{records: records, latency: latency}
}

func (m *MemorySource) ListAll(ctx context.Context) ([]models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Product, len(m.records))
	for i := range m.records {
		out[i] = m.records[i].Clone()
	}
	return out, nil
}

func (m *MemorySource) FetchOne(ctx context.Context, id uuid.UUID) (models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return models.Product{}, err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			return m.records[i].Clone(), nil
		}
	}
	return models.Product{}, catalog.NotFoundError(id)
}

func (m *MemorySource) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fixtures returns the development seed set used when the server runs
// against the memory source.
func Fixtures() []models.Product {
	now := time.Now()
	supplierA := uuid.MustParse("6f1aa9a0-3b1c-4c52-9a36-8c6a3f0a1d01")
	supplierB := uuid.MustParse("6f1aa9a0-3b1c-4c52-9a36-8c6a3f0a1d02")

	fixture := func(offset time.Duration, p models.Product) models.Product {
		p.ID = uuid.New()
		p.CreatedAt = now.Add(-offset)
		p.UpdatedAt = p.CreatedAt
		return p
	}

	return []models.Product{
		fixture(72*time.Hour, models.Product{
			Name:             "Vitamin C 1000mg",
			Brand:            "NutriPlus",
			Description:      "High potency vitamin C tablets, 90 count.",
			ShortDescription: "Daily immune support",
			BasePrice:        18000,
			Pricing:          models.PriceTiers{Gold: 16000, Premium: 15000, VIP: 14000},
			StockQuantity:    240,
			MinOrderQuantity: 1,
			Categories:       []string{"supplements"},
			SupplierID:       supplierA,
			Status:           models.ProductStatusActive,
			ApprovalStatus:   models.ApprovalStatusApproved,
			SalesCount:       320,
			Rating:           4.6,
			ReviewCount:      85,
		}),
		fixture(48*time.Hour, models.Product{
			Name:             "Omega-3 Fish Oil",
			Brand:            "NutriPlus",
			Description:      "EPA/DHA softgels, 120 count.",
			ShortDescription: "Heart and brain health",
			BasePrice:        32000,
			Pricing:          models.PriceTiers{Gold: 29000, Premium: 27500, VIP: 26000},
			StockQuantity:    180,
			MinOrderQuantity: 1,
			Categories:       []string{"supplements"},
			SupplierID:       supplierA,
			Status:           models.ProductStatusActive,
			ApprovalStatus:   models.ApprovalStatusApproved,
			SalesCount:       210,
			Rating:           4.4,
			ReviewCount:      52,
		}),
		fixture(24*time.Hour, models.Product{
			Name:             "Digital Blood Pressure Monitor",
			Brand:            "MediCheck",
			Model:            "BP-220",
			Description:      "Upper-arm automatic blood pressure monitor with cuff.",
			ShortDescription: "Home health monitoring",
			BasePrice:        65000,
			Pricing:          models.PriceTiers{Gold: 59000, Premium: 56000, VIP: 53000},
			StockQuantity:    45,
			MinOrderQuantity: 1,
			Categories:       []string{"devices"},
			SupplierID:       supplierB,
			Status:           models.ProductStatusPending,
			ApprovalStatus:   models.ApprovalStatusPending,
		}),
		fixture(6*time.Hour, models.Product{
			Name:             "First Aid Kit 40pc",
			Brand:            "SafeCare",
			Description:      "Compact household first aid kit.",
			ShortDescription: "Household essentials",
			BasePrice:        15000,
			Pricing:          models.PriceTiers{Gold: 13500, Premium: 13000, VIP: 12500},
			StockQuantity:    0,
			MinOrderQuantity: 1,
			Categories:       []string{"first-aid", "devices"},
			SupplierID:       supplierB,
			Status:           models.ProductStatusDraft,
			ApprovalStatus:   models.ApprovalStatusPending,
		}),
	}
}
