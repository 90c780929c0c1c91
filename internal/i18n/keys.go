// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Products
	KeyProductCreated        = "product.created"
	KeyProductUpdated        = "product.updated"
	KeyProductDeleted        = "product.deleted"
	KeyProductNotFound       = "product.not_found"
	KeyProductExists         = "product.exists"
	KeyProductStatusChanged  = "product.status_changed"
	KeyProductApproved       = "product.approved"
	KeyProductRejected       = "product.rejected"
	KeyProductDiscontinued   = "product.discontinued"
	KeyProductFiltersCleared = "product.filters_cleared"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
