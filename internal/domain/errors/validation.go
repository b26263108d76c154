package errors

import "net/http"

// ValidationError carries per-field validation messages. The HTTP layer
// serializes Fields directly as the 400 response body.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: map[string][]string{field: {message}},
	}
}

// Add appends a message for a field and returns the error for chaining
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)

	return e
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	for field, messages := range e.Fields {
		if len(messages) > 0 {
			return field + ": " + messages[0]
		}
	}

	return "validation failed"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}
