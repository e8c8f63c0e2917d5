package errors

// ValidationException carries field-level messages for malformed input.
// Surfaced as a 400 with the field map in the response body.
type ValidationException struct {
	Fields map[string]string
}

func (e *ValidationException) Error() string {
	return "validation failed"
}

func NewValidation(fields map[string]string) *ValidationException {
	return &ValidationException{Fields: fields}
}
