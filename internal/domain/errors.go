package domain

import "errors"

// Sentinel errors for the search engine.
var (
	// ErrInvalidRequest indicates a malformed or out-of-range search request.
	// Always a client fault; surfaced with the offending field name.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStorageUnavailable indicates the business record store failed.
	// Surfaced to the caller as a retryable server fault; the engine does
	// not retry internally and never caches a failed search.
	ErrStorageUnavailable = errors.New("business store unavailable")
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds one or more field-scoped validation errors.
// It satisfies the error interface and unwraps to ErrInvalidRequest so
// callers can branch with errors.Is.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Field + ": " + v.Errors[0].Message
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) match.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// Add appends a validation error for the given field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any validation errors were recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the validation errors to a field-to-message map for API
// responses. The first error per field wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, exists := result[e.Field]; !exists {
			result[e.Field] = e.Message
		}
	}
	return result
}
