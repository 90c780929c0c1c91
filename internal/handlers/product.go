// internal/handlers/product.go
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

type ProductHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
	maxPageSize    int
}

func NewProductHandler(catalogService *services.CatalogService, storageService *services.StorageService, maxPageSize int) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		storageService: storageService,
		maxPageSize:    maxPageSize,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	patch := utils.GetFilterPatch(c, h.maxPageSize)
	result := h.catalogService.Query(patch)
	utils.PaginatedResponse(c, result.Records, result.Pagination)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.Get(id)
	if err != nil {
		if catalog.IsNotFound(err) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	go h.catalogService.RecordView(id)

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.Create(&req)
	if err != nil {
		if catalog.IsCollision(err) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductExists))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.Update(id, &req)
	if err != nil {
		if catalog.IsNotFound(err) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.Remove(id); err != nil {
		if catalog.IsNotFound(err) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// PUT /products/:id/status
func (h *ProductHandler) UpdateProductStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Status models.ProductStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "status"), err.Error())
		return
	}

	if err := h.catalogService.SetStatus(id, req.Status); err != nil {
		switch {
		case catalog.IsNotFound(err):
			utils.NotFoundResponse(c, "product")
		case catalog.IsInvalidTransition(err):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductDiscontinued))
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductStatusChanged),
	})
}

// GET /suppliers/:id/products
func (h *ProductHandler) GetSupplierProducts(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid supplier ID", nil)
		return
	}

	result := h.catalogService.QueryBySupplier(supplierID)
	utils.PaginatedResponse(c, result.Records, result.Pagination)
}

// POST /products/reset-filters
func (h *ProductHandler) ResetFilters(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	result := h.catalogService.ResetFilters()

	utils.SetPaginationHeaders(c, result.Pagination)
	utils.SuccessResponseWithMeta(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductFiltersCleared),
		"records": result.Records,
	}, gin.H{
		"pagination": result.Pagination,
	})
}

// POST /products/upload-images
func (h *ProductHandler) UploadProductImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	var uploadedImages []map[string]interface{}
	options := h.storageService.ProductImageOptions()

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			continue
		}

		if err := h.storageService.ValidateImage(file); err != nil {
			file.Close()
			continue
		}

		result, err := h.storageService.UploadFile(file, fileHeader, options)
		file.Close()

		if err != nil {
			continue
		}

		uploadedImages = append(uploadedImages, map[string]interface{}{
			"url":       result.URL,
			"key":       result.Key,
			"size":      result.Size,
			"mime_type": result.MimeType,
		})
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"images":  uploadedImages,
	})
}
