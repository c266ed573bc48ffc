package httperrors

import (
	"fmt"

	"github.com/go-openapi/swag"

	"github/chapool/dapp-gateway/internal/types"
)

// HTTPError is an echo-compatible error carrying the public wire shape plus
// internal diagnostics that are never serialized.
type HTTPError struct {
	types.PublicHTTPError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

// NewHTTPError constructs a plain HTTP error with the given status code,
// machine-readable type and human-readable title.
func NewHTTPError(code int, errorType types.PublicHTTPErrorType, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:  swag.Int64(int64(code)),
			Title: swag.String(title),
			Type:  swag.String(string(errorType)),
		},
	}
}

// NewHTTPErrorWithDetail behaves like NewHTTPError, wrapping an internal
// error for logging.
func NewHTTPErrorWithDetail(code int, errorType types.PublicHTTPErrorType, title string, internal error) *HTTPError {
	e := NewHTTPError(code, errorType, title)
	e.Internal = internal
	return e
}

func (e *HTTPError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("HTTPError %d (%s): %s, internal: %v", swag.Int64Value(e.Code), swag.StringValue(e.Type), swag.StringValue(e.Title), e.Internal)
	}
	return fmt.Sprintf("HTTPError %d (%s): %s", swag.Int64Value(e.Code), swag.StringValue(e.Type), swag.StringValue(e.Title))
}

// HTTPValidationError extends HTTPError with per-field validation details.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

// NewHTTPValidationError constructs a validation error response.
func NewHTTPValidationError(code int, errorType types.PublicHTTPErrorType, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Title: swag.String(title),
				Type:  swag.String(string(errorType)),
			},
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d fields)", swag.Int64Value(e.Code), swag.StringValue(e.Type), swag.StringValue(e.Title), len(e.ValidationErrors))
}
