package types

// PublicHTTPErrorType discriminates machine-readable error categories that
// clients may act upon.
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"
)

// PublicHTTPError is the wire shape of all error responses.
type PublicHTTPError struct {
	// HTTP status code
	Code *int64 `json:"status"`
	// Short human-readable title of the error
	Title *string `json:"title"`
	// Machine-readable error type
	Type *string `json:"type"`
}

// PublicHTTPValidationError extends PublicHTTPError with per-field details.
type PublicHTTPValidationError struct {
	PublicHTTPError
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// HTTPValidationErrorDetail pinpoints a single invalid field.
type HTTPValidationErrorDetail struct {
	// Error describing field validation failure
	Error *string `json:"error"`
	// Indicates how the invalid field was provided
	In *string `json:"in"`
	// Key of field failing validation
	Key *string `json:"key"`
}
