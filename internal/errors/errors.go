package errors

import (
	"errors"
	"fmt"
)

// CatalogError is the structured error type for iconcat.
// It carries enough context for logging and for user presentation.
type CatalogError struct {
	// Code is the unique error code (e.g., "ERR_206_CATALOG_MALFORMED").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Is matches another CatalogError by code, so errors.Is works against
// sentinel values built with New.
func (e *CatalogError) Is(target error) bool {
	if t, ok := target.(*CatalogError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *CatalogError) WithDetail(key, value string) *CatalogError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *CatalogError) WithSuggestion(suggestion string) *CatalogError {
	e.Suggestion = suggestion
	return e
}

// New creates a new CatalogError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *CatalogError {
	return &CatalogError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a CatalogError from an existing error.
func Wrap(code string, err error) *CatalogError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *CatalogError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// ParseError creates the error returned when a catalog document is malformed.
// A parse error always fails the whole load.
func ParseError(message string, cause error) *CatalogError {
	return New(ErrCodeCatalogMalformed, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *CatalogError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *CatalogError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity anywhere in its chain.
func IsFatal(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Severity == SeverityFatal
	}
	return false
}

// HasCode reports whether err, or any error it wraps, carries code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from the first CatalogError in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// GetCategory extracts the category from the first CatalogError in the chain.
func GetCategory(err error) Category {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return ""
}
