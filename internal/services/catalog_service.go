// internal/services/catalog_service.go
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openmall/catalog-backend/internal/catalog"
	"github.com/openmall/catalog-backend/internal/config"
	"github.com/openmall/catalog-backend/internal/datasource"
	"github.com/openmall/catalog-backend/internal/models"
	"github.com/openmall/catalog-backend/internal/utils"
)

// CatalogService is the query facade over the record store: the single
// entry point for reads and the owner of the sticky filter state. Every
// mutation re-runs the query pipeline so pagination metadata always
// matches the latest data.
type CatalogService struct {
	mu        sync.Mutex
	store     *catalog.Store
	lifecycle *catalog.Lifecycle
	source    datasource.DataSource
	collator  *collate.Collator

	defaultPageSize int
	filter          catalog.Filter
	pagination      catalog.Pagination
	lastErr         string

	log *logrus.Entry
}

type QueryResult struct {
	Records    []models.Product   `json:"records"`
	Pagination catalog.Pagination `json:"pagination"`
}

type CreateProductRequest struct {
	Name             string            `json:"name" validate:"required,min=2,max=255"`
	Brand            string            `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model            string            `json:"model,omitempty" validate:"omitempty,max=100"`
	Description      string            `json:"description,omitempty"`
	ShortDescription string            `json:"short_description,omitempty" validate:"omitempty,max=500"`
	BasePrice        float64           `json:"base_price" validate:"min=0"`
	Pricing          models.PriceTiers `json:"pricing"`
	StockQuantity    int               `json:"stock_quantity" validate:"min=0"`
	MinOrderQuantity int               `json:"min_order_quantity" validate:"omitempty,min=1"`
	MaxOrderQuantity *int              `json:"max_order_quantity,omitempty"`
	Categories       []string          `json:"categories,omitempty"`
	Images           []string          `json:"images,omitempty"`
	SupplierID       uuid.UUID         `json:"supplier_id" validate:"required"`
}

type UpdateProductRequest struct {
	Name             *string            `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Brand            *string            `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model            *string            `json:"model,omitempty" validate:"omitempty,max=100"`
	Description      *string            `json:"description,omitempty"`
	ShortDescription *string            `json:"short_description,omitempty" validate:"omitempty,max=500"`
	BasePrice        *float64           `json:"base_price,omitempty" validate:"omitempty,min=0"`
	Pricing          *models.PriceTiers `json:"pricing,omitempty"`
	StockQuantity    *int               `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	MinOrderQuantity *int               `json:"min_order_quantity,omitempty" validate:"omitempty,min=1"`
	MaxOrderQuantity *int               `json:"max_order_quantity,omitempty"`
	Categories       []string           `json:"categories,omitempty"`
	Images           []string           `json:"images,omitempty"`
}

func NewCatalogService(source datasource.DataSource, cfg *config.Config) *CatalogService {
	store := catalog.NewStore()
	pageSize := cfg.Catalog.DefaultPageSize

	return &CatalogService{
		store:           store,
		lifecycle:       catalog.NewLifecycle(store, nil),
		source:          source,
		collator:        collate.New(language.Make(cfg.Catalog.SortLocale)),
		defaultPageSize: pageSize,
		filter:          catalog.DefaultFilter(pageSize),
		log:             logrus.WithField("component", "catalog"),
	}
}

// Load seeds the record store from the data source. Nothing is
// committed if the context is cancelled mid-flight.
func (s *CatalogService) Load(ctx context.Context) error {
	records, err := s.source.ListAll(ctx)
	if err != nil {
		s.recordError(err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	store := catalog.NewStore()
	for i := len(records) - 1; i >= 0; i-- {
		if _, err := store.Insert(records[i]); err != nil {
			s.recordError(err)
			return err
		}
	}

	s.mu.Lock()
	s.store = store
	s.lifecycle = catalog.NewLifecycle(store, nil)
	s.requeryLocked()
	s.mu.Unlock()

	s.log.WithField("count", len(records)).Info("Catalog loaded")
	return nil
}

// Query merges the patch over the sticky filter, runs the pipeline and
// persists the merged filter plus the fresh pagination metadata. A bare
// Query(nil) repeats the previous view.
func (s *CatalogService) Query(patch *catalog.FilterPatch) QueryResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = s.filter.Merge(patch)
	return s.requeryLocked()
}

// QueryBySupplier narrows the sticky filter to one supplier's records,
// starting back at the first page.
func (s *CatalogService) QueryBySupplier(supplierID uuid.UUID) QueryResult {
	page := 1
	return s.Query(&catalog.FilterPatch{
		SupplierID: &supplierID,
		Page:       &page,
	})
}

// Get returns a read-only snapshot of one record.
func (s *CatalogService) Get(id uuid.UUID) (models.Product, error) {
	p, err := s.store.Get(id)
	if err != nil {
		s.recordError(err)
		return models.Product{}, err
	}
	return p, nil
}

// Create assigns a fresh identifier and the initial lifecycle state
// (draft, approval pending), stores the record and refreshes the view.
func (s *CatalogService) Create(req *CreateProductRequest) (models.Product, error) {
	if err := s.validate(req); err != nil {
		return models.Product{}, err
	}
	if req.MaxOrderQuantity != nil && *req.MaxOrderQuantity < max(req.MinOrderQuantity, 1) {
		err := catalog.InvalidInputError("max order quantity must not be below min order quantity")
		s.recordError(err)
		return models.Product{}, err
	}

	minOrder := req.MinOrderQuantity
	if minOrder < 1 {
		minOrder = 1
	}

	now := time.Now()
	product := models.Product{
		ID:               uuid.New(),
		Name:             req.Name,
		Brand:            req.Brand,
		Model:            req.Model,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		BasePrice:        req.BasePrice,
		Pricing:          req.Pricing,
		StockQuantity:    req.StockQuantity,
		MinOrderQuantity: minOrder,
		MaxOrderQuantity: req.MaxOrderQuantity,
		Categories:       req.Categories,
		Images:           req.Images,
		SupplierID:       req.SupplierID,
		Status:           models.ProductStatusDraft,
		ApprovalStatus:   models.ApprovalStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	stored, err := s.store.Insert(product)
	if err != nil {
		s.recordError(err)
		return models.Product{}, err
	}

	s.refreshView()
	return stored, nil
}

// Update merges the patch over the existing record. Absent fields, the
// lifecycle fields and the read-mostly counters are left untouched.
func (s *CatalogService) Update(id uuid.UUID, req *UpdateProductRequest) (models.Product, error) {
	if err := s.validate(req); err != nil {
		return models.Product{}, err
	}

	updated, err := s.store.Replace(id, catalog.UpdatePatch{
		Name:             req.Name,
		Brand:            req.Brand,
		Model:            req.Model,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		BasePrice:        req.BasePrice,
		Pricing:          req.Pricing,
		StockQuantity:    req.StockQuantity,
		MinOrderQuantity: req.MinOrderQuantity,
		MaxOrderQuantity: req.MaxOrderQuantity,
		Categories:       req.Categories,
		Images:           req.Images,
	})
	if err != nil {
		s.recordError(err)
		return models.Product{}, err
	}

	s.refreshView()
	return updated, nil
}

// Remove deletes the record and refreshes the view so the total no
// longer counts it.
func (s *CatalogService) Remove(id uuid.UUID) error {
	if err := s.store.Remove(id); err != nil {
		s.recordError(err)
		return err
	}
	s.refreshView()
	return nil
}

// SetStatus transitions the publication axis.
func (s *CatalogService) SetStatus(id uuid.UUID, status models.ProductStatus) error {
	if _, err := s.lifecycle.SetStatus(id, status); err != nil {
		s.recordError(err)
		return err
	}
	s.refreshView()
	return nil
}

// SetApprovalStatus transitions the approval axis, with the coupled
// publication-state change applied atomically by the lifecycle engine.
func (s *CatalogService) SetApprovalStatus(id uuid.UUID, status models.ApprovalStatus) error {
	if _, err := s.lifecycle.SetApprovalStatus(id, status); err != nil {
		s.recordError(err)
		return err
	}
	s.refreshView()
	return nil
}

// RecordView bumps the view counter without disturbing UpdatedAt-based
// expectations of callers (the stamp still moves, matching every other
// mutation).
func (s *CatalogService) RecordView(id uuid.UUID) {
	_, err := s.store.Apply(id, func(p *models.Product) error {
		p.ViewCount++
		return nil
	})
	if err != nil {
		s.log.WithError(err).Debug("view count not recorded")
	}
}

// ResetFilters restores the default sticky filter and refreshes.
func (s *CatalogService) ResetFilters() QueryResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = catalog.DefaultFilter(s.defaultPageSize)
	return s.requeryLocked()
}

// Filter returns the current sticky filter specification.
func (s *CatalogService) Filter() catalog.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Pagination returns the metadata of the last computed view.
func (s *CatalogService) Pagination() catalog.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// LastError returns the most recent failure message, or "" when the
// slot is clear. Successful operations do not touch the slot.
func (s *CatalogService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *CatalogService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// requeryLocked runs predicate -> comparator -> paginator over the
// current store snapshot and commits the pagination metadata. Callers
// hold s.mu.
func (s *CatalogService) requeryLocked() QueryResult {
	records := s.store.All()
	records = catalog.ApplyPredicate(records, catalog.BuildPredicate(s.filter))
	catalog.SortRecords(records, catalog.BuildComparator(s.filter.SortBy, s.filter.SortOrder, s.collator))

	page, pagination := catalog.Paginate(records, s.filter.Page, s.filter.PageSize)
	s.pagination = pagination

	return QueryResult{Records: page, Pagination: pagination}
}

// refreshView re-runs the pipeline with the sticky filter after a
// mutation, so callers never observe stale totals.
func (s *CatalogService) refreshView() {
	s.mu.Lock()
	s.requeryLocked()
	s.mu.Unlock()
}

func (s *CatalogService) validate(req interface{}) error {
	if err := utils.ValidateStruct(req); err != nil {
		verr := catalog.InvalidInputError("validation failed: %v", err)
		s.recordError(verr)
		return verr
	}
	return nil
}

func (s *CatalogService) recordError(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	s.log.WithError(err).Warn("Catalog operation failed")
}
