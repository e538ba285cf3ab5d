// Package errors provides structured error handling for iconcat.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Catalog and file IO errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates catalog, file and disk I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Catalog / IO errors (200-299)
	ErrCodeCatalogNotFound   = "ERR_201_CATALOG_NOT_FOUND"
	ErrCodeCatalogPermission = "ERR_202_CATALOG_PERMISSION"
	ErrCodeCatalogMalformed  = "ERR_206_CATALOG_MALFORMED"

	// Validation errors (400-499)
	ErrCodeInvalidInput     = "ERR_401_INVALID_INPUT"
	ErrCodeInvalidChunkSize = "ERR_402_INVALID_CHUNK_SIZE"
	ErrCodeIconNotFound     = "ERR_403_ICON_NOT_FOUND"
	ErrCodeCatalogLoading   = "ERR_404_CATALOG_LOADING"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// "101" from "ERR_101_CONFIG_NOT_FOUND"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// A catalog that cannot be read or parsed ends the session.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeCatalogNotFound, ErrCodeCatalogPermission, ErrCodeCatalogMalformed:
		return SeverityFatal
	case ErrCodeCatalogLoading:
		return SeverityWarning
	default:
		return SeverityError
	}
}
