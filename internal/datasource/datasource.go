// internal/datasource/datasource.go
package datasource

import (
	"context"

	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/models"
)

// DataSource is the collaborator the catalog engine seeds itself from.
// It is swappable between the in-memory fixture source and the Postgres
// source without the engine noticing.
type DataSource interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	FetchOne(ctx context.Context, id uuid.UUID) (models.Product, error)
}
