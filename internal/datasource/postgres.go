// internal/datasource/postgres.go
package datasource

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmall/catalog-backend/internal/catalog"
	"github.com/openmall/catalog-backend/internal/models"
)

// PostgresSource reads the catalog from the products table. The engine
// owns the in-memory working set; this source only feeds it.
type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *PostgresSource) FetchOne(ctx context.Context, id uuid.UUID) (models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, catalog.NotFoundError(id)
		}
		return models.Product{}, fmt.Errorf("database error: %w", err)
	}
	return product, nil
}
