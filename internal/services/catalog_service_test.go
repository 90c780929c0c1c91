// internal/services/catalog_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmall/catalog-backend/internal/catalog"
	"github.com/openmall/catalog-backend/internal/config"
	"github.com/openmall/catalog-backend/internal/datasource"
	"github.com/openmall/catalog-backend/internal/models"
)

var (
	testSupplierA = uuid.MustParse("7c3bb0b1-4c2d-4d63-8b47-9d7b4f1b2e01")
	testSupplierB = uuid.MustParse("7c3bb0b1-4c2d-4d63-8b47-9d7b4f1b2e02")
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Catalog: config.CatalogConfig{
			DataSource:      "memory",
			DefaultPageSize: 2,
			MaxPageSize:     100,
			SortLocale:      "en",
		},
	}
}

func seedRecords() []models.Product {
	now := time.Now()
	seed := func(name string, ageHours int, price float64, supplier uuid.UUID, status models.ProductStatus) models.Product {
		created := now.Add(-time.Duration(ageHours) * time.Hour)
		return models.Product{
			ID:               uuid.New(),
			Name:             name,
			BasePrice:        price,
			StockQuantity:    10,
			MinOrderQuantity: 1,
			SupplierID:       supplier,
			Status:           status,
			ApprovalStatus:   models.ApprovalStatusApproved,
			CreatedAt:        created,
			UpdatedAt:        created,
		}
	}

	return []models.Product{
		seed("Aspirin", 40, 5000, testSupplierA, models.ProductStatusActive),
		seed("Bandage", 30, 3000, testSupplierA, models.ProductStatusActive),
		seed("Cough Syrup", 20, 8000, testSupplierB, models.ProductStatusActive),
		seed("Thermometer", 10, 25000, testSupplierB, models.ProductStatusInactive),
	}
}

func newTestService(t *testing.T) *CatalogService {
	t.Helper()
	source := datasource.NewMemorySource(seedRecords(), 0)
	svc := NewCatalogService(source, testConfig())
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func recordNames(records []models.Product) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestLoadSeedsNewestFirstView(t *testing.T) {
	svc := newTestService(t)

	result := svc.Query(nil)

	assert.Equal(t, 4, result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.Equal(t, []string{"Thermometer", "Cough Syrup"}, recordNames(result.Records))
}

func TestLoadCancelledContextCommitsNothing(t *testing.T) {
	source := datasource.NewMemorySource(seedRecords(), 50*time.Millisecond)
	svc := NewCatalogService(source, testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	err := svc.Load(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, svc.Query(nil).Pagination.Total)
}

func TestQueryStickyFilterAccumulates(t *testing.T) {
	svc := newTestService(t)

	search := "a"
	svc.Query(&catalog.FilterPatch{Search: &search})

	// Later patches only touch what they name; the search term sticks.
	sortBy := catalog.SortByPrice
	sortOrder := catalog.SortAsc
	result := svc.Query(&catalog.FilterPatch{SortBy: &sortBy, SortOrder: &sortOrder})

	assert.Equal(t, "a", svc.Filter().Search)
	assert.Equal(t, []string{"Bandage", "Aspirin"}, recordNames(result.Records))
}

func TestQueryNilPatchRepeatsPreviousView(t *testing.T) {
	svc := newTestService(t)

	search := "e"
	first := svc.Query(&catalog.FilterPatch{Search: &search})
	again := svc.Query(nil)

	assert.Equal(t, first.Pagination, again.Pagination)
	assert.Equal(t, recordNames(first.Records), recordNames(again.Records))
}

func TestQueryPagination(t *testing.T) {
	svc := newTestService(t)

	page := 2
	result := svc.Query(&catalog.FilterPatch{Page: &page})

	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, []string{"Bandage", "Aspirin"}, recordNames(result.Records))

	page = 99
	result = svc.Query(&catalog.FilterPatch{Page: &page})
	assert.Empty(t, result.Records)
	assert.Equal(t, 4, result.Pagination.Total)
}

func TestQueryBySupplierResetsPage(t *testing.T) {
	svc := newTestService(t)

	page := 2
	svc.Query(&catalog.FilterPatch{Page: &page})

	result := svc.QueryBySupplier(testSupplierB)

	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 2, result.Pagination.Total)
	for _, r := range result.Records {
		assert.Equal(t, testSupplierB, r.SupplierID)
	}
}

func TestCreateAssignsIdentityAndInitialState(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(&CreateProductRequest{
		Name:       "Hand Sanitizer",
		BasePrice:  4500,
		SupplierID: testSupplierA,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, models.ProductStatusDraft, product.Status)
	assert.Equal(t, models.ApprovalStatusPending, product.ApprovalStatus)
	assert.Equal(t, 1, product.MinOrderQuantity)
	assert.False(t, product.CreatedAt.IsZero())

	// The view total reflects the insert immediately.
	assert.Equal(t, 5, svc.Pagination().Total)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreateProductRequest{Name: "x", SupplierID: testSupplierA})
	require.Error(t, err)
	assert.True(t, catalog.IsInvalidInput(err))

	_, err = svc.Create(&CreateProductRequest{Name: "No Supplier", BasePrice: 100})
	require.Error(t, err)
	assert.True(t, catalog.IsInvalidInput(err))
}

func TestCreateRejectsMaxOrderBelowMin(t *testing.T) {
	svc := newTestService(t)

	maxOrder := 2
	_, err := svc.Create(&CreateProductRequest{
		Name:             "Bulk Gauze",
		BasePrice:        100,
		SupplierID:       testSupplierA,
		MinOrderQuantity: 5,
		MaxOrderQuantity: &maxOrder,
	})
	require.Error(t, err)
	assert.True(t, catalog.IsInvalidInput(err))
	assert.Equal(t, 4, svc.Pagination().Total)
}

func TestUpdatePatchesAndRefreshesView(t *testing.T) {
	svc := newTestService(t)
	target := svc.Query(nil).Records[0]

	price := 26000.0
	updated, err := svc.Update(target.ID, &UpdateProductRequest{BasePrice: &price})
	require.NoError(t, err)

	assert.Equal(t, 26000.0, updated.BasePrice)
	assert.Equal(t, target.Name, updated.Name)
	assert.Equal(t, target.Status, updated.Status)
}

func TestUpdateNotFoundLeavesStateUnchanged(t *testing.T) {
	svc := newTestService(t)
	before := svc.Pagination()

	name := "ghost"
	_, err := svc.Update(uuid.New(), &UpdateProductRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, catalog.IsNotFound(err))

	assert.Equal(t, before, svc.Pagination())
	assert.NotEmpty(t, svc.LastError())
}

func TestRemoveShrinksTotal(t *testing.T) {
	svc := newTestService(t)
	target := svc.Query(nil).Records[0]

	require.NoError(t, svc.Remove(target.ID))
	assert.Equal(t, 3, svc.Pagination().Total)

	_, err := svc.Get(target.ID)
	assert.True(t, catalog.IsNotFound(err))
}

func TestSetStatusRefreshesFilteredView(t *testing.T) {
	svc := newTestService(t)

	active := models.ProductStatusActive
	result := svc.Query(&catalog.FilterPatch{Status: &active})
	require.Equal(t, 3, result.Pagination.Total)

	target := result.Records[0]
	require.NoError(t, svc.SetStatus(target.ID, models.ProductStatusInactive))

	// The sticky status filter now excludes the transitioned record.
	assert.Equal(t, 2, svc.Pagination().Total)
}

func TestSetStatusInvalidTransitionSurfacesError(t *testing.T) {
	svc := newTestService(t)
	target := svc.Query(nil).Records[0]

	require.NoError(t, svc.SetStatus(target.ID, models.ProductStatusDiscontinued))

	err := svc.SetStatus(target.ID, models.ProductStatusActive)
	require.Error(t, err)
	assert.True(t, catalog.IsInvalidTransition(err))
	assert.NotEmpty(t, svc.LastError())
}

func TestSetApprovalStatusActivates(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(&CreateProductRequest{
		Name:       "New Syrup",
		BasePrice:  9000,
		SupplierID: testSupplierB,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetApprovalStatus(product.ID, models.ApprovalStatusApproved))

	got, err := svc.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, got.ApprovalStatus)
	assert.Equal(t, models.ProductStatusActive, got.Status)
	assert.NotNil(t, got.ApprovedAt)
}

func TestRecordViewIncrementsCounter(t *testing.T) {
	svc := newTestService(t)
	target := svc.Query(nil).Records[0]

	svc.RecordView(target.ID)
	svc.RecordView(target.ID)

	got, err := svc.Get(target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.ViewCount+2, got.ViewCount)
}

func TestResetFiltersRestoresDefaults(t *testing.T) {
	svc := newTestService(t)

	search := "aspirin"
	sortBy := catalog.SortByPrice
	svc.Query(&catalog.FilterPatch{Search: &search, SortBy: &sortBy})

	result := svc.ResetFilters()

	f := svc.Filter()
	assert.Empty(t, f.Search)
	assert.Equal(t, catalog.SortByCreated, f.SortBy)
	assert.Equal(t, catalog.SortDesc, f.SortOrder)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 4, result.Pagination.Total)
}

func TestLastErrorLifecycle(t *testing.T) {
	svc := newTestService(t)
	assert.Empty(t, svc.LastError())

	_, err := svc.Get(uuid.New())
	require.Error(t, err)
	assert.NotEmpty(t, svc.LastError())

	// A successful operation leaves the slot alone.
	target := svc.Query(nil).Records[0]
	_, err = svc.Get(target.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, svc.LastError())

	svc.ClearError()
	assert.Empty(t, svc.LastError())
}

func TestPriceBandFilter(t *testing.T) {
	svc := newTestService(t)

	min := 3000.0
	max := 8000.0
	result := svc.Query(&catalog.FilterPatch{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, 3, result.Pagination.Total)

	// A negative bound clears the constraint.
	cleared := -1.0
	result = svc.Query(&catalog.FilterPatch{MinPrice: &cleared, MaxPrice: &cleared})
	assert.Equal(t, 4, result.Pagination.Total)
}
