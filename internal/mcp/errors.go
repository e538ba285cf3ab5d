// Package mcp implements the Model Context Protocol (MCP) server for iconcat.
package mcp

import (
	"context"
	"errors"
	"fmt"

	icerrors "github.com/Aman-CERP/iconcat/internal/errors"
)

// Custom MCP error codes for iconcat.
const (
	// ErrCodeCatalogLoading indicates the catalog has not finished loading.
	ErrCodeCatalogLoading = -32001

	// ErrCodeCatalogUnavailable indicates the catalog failed to load.
	ErrCodeCatalogUnavailable = -32002

	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout = -32003

	// ErrCodeNotFound indicates an icon or asset does not exist.
	ErrCodeNotFound = -32004

	// ErrCodeFileTooLarge indicates an asset is too large to return.
	ErrCodeFileTooLarge = -32005

	// Standard JSON-RPC error codes.
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternalError  = -32603
)

// Sentinel errors for internal use.
var (
	// ErrToolNotFound indicates the requested tool does not exist.
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidParams indicates invalid parameters were provided.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrResourceNotFound indicates the requested resource does not exist.
	ErrResourceNotFound = errors.New("resource not found")
)

// MCPError represents an MCP protocol error with code and message.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// MapError converts internal errors to MCP errors.
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	var mcpErr *MCPError
	if errors.As(err, &mcpErr) {
		return mcpErr
	}

	var ce *icerrors.CatalogError
	if errors.As(err, &ce) {
		return mapCatalogError(ce)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &MCPError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out.",
		}
	case errors.Is(err, context.Canceled):
		return &MCPError{
			Code:    ErrCodeTimeout,
			Message: "Request was canceled.",
		}
	case errors.Is(err, ErrToolNotFound):
		return &MCPError{
			Code:    ErrCodeMethodNotFound,
			Message: "Tool not found.",
		}
	case errors.Is(err, ErrInvalidParams):
		return &MCPError{
			Code:    ErrCodeInvalidParams,
			Message: "Invalid parameters.",
		}
	case errors.Is(err, ErrResourceNotFound):
		return &MCPError{
			Code:    ErrCodeNotFound,
			Message: "Resource not found.",
		}
	default:
		return &MCPError{
			Code:    ErrCodeInternalError,
			Message: "Internal server error.",
		}
	}
}

// NewInvalidParamsError creates an error for invalid parameters with a custom message.
func NewInvalidParamsError(msg string) *MCPError {
	return &MCPError{
		Code:    ErrCodeInvalidParams,
		Message: msg,
	}
}

// NewMethodNotFoundError creates an error for unknown methods/tools.
func NewMethodNotFoundError(name string) *MCPError {
	return &MCPError{
		Code:    ErrCodeMethodNotFound,
		Message: fmt.Sprintf("Tool '%s' not found.", name),
	}
}

// NewResourceNotFoundError creates an error for unknown resources.
func NewResourceNotFoundError(uri string) *MCPError {
	return &MCPError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("Resource '%s' not found.", uri),
	}
}

// mapCatalogError converts a CatalogError to an MCPError.
func mapCatalogError(ce *icerrors.CatalogError) *MCPError {
	message := ce.Message
	if ce.Suggestion != "" {
		message = fmt.Sprintf("%s. %s", ce.Message, ce.Suggestion)
	}

	switch ce.Code {
	case icerrors.ErrCodeCatalogLoading:
		return &MCPError{Code: ErrCodeCatalogLoading, Message: message}
	case icerrors.ErrCodeIconNotFound:
		return &MCPError{Code: ErrCodeNotFound, Message: message}
	}

	switch ce.Category {
	case icerrors.CategoryIO, icerrors.CategoryConfig:
		return &MCPError{Code: ErrCodeCatalogUnavailable, Message: message}
	case icerrors.CategoryValidation:
		return &MCPError{Code: ErrCodeInvalidParams, Message: message}
	default:
		return &MCPError{Code: ErrCodeInternalError, Message: message}
	}
}
