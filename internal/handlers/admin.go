// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openmall/catalog-backend/internal/catalog"
	"github.com/openmall/catalog-backend/internal/i18n"
	"github.com/openmall/catalog-backend/internal/models"
	"github.com/openmall/catalog-backend/internal/services"
	"github.com/openmall/catalog-backend/internal/utils"
)

// AdminHandler exposes the approval queue. Authorization happens
// upstream; the engine trusts its caller.
type AdminHandler struct {
	catalogService *services.CatalogService
}

func NewAdminHandler(catalogService *services.CatalogService) *AdminHandler {
	return &AdminHandler{catalogService: catalogService}
}

// GET /admin/products/pending
func (h *AdminHandler) GetPendingProducts(c *gin.Context) {
	pending := models.ApprovalStatusPending
	page := 1

	result := h.catalogService.Query(&catalog.FilterPatch{
		ApprovalStatus: &pending,
		Page:           &page,
	})
	utils.PaginatedResponse(c, result.Records, result.Pagination)
}

// PUT /admin/products/:id/approve
func (h *AdminHandler) ApproveProduct(c *gin.Context) {
	h.setApproval(c, models.ApprovalStatusApproved, i18n.KeyProductApproved)
}

// PUT /admin/products/:id/reject
func (h *AdminHandler) RejectProduct(c *gin.Context) {
	h.setApproval(c, models.ApprovalStatusRejected, i18n.KeyProductRejected)
}

func (h *AdminHandler) setApproval(c *gin.Context, status models.ApprovalStatus, messageKey string) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.SetApprovalStatus(id, status); err != nil {
		if catalog.IsNotFound(err) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	product, err := h.catalogService.Get(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, messageKey),
		"product": product,
	})
}
