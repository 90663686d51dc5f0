package apperrors

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrGatewaySimulation indicates that the mock gateway could not produce an outcome.
var ErrGatewaySimulation = errors.New("gateway simulation failed")

// ErrConfirmationMismatch indicates that a destructive admin action was not confirmed.
var ErrConfirmationMismatch = errors.New("confirmation token does not match")

// ValidationError carries per-field validation messages for a rejected submission.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

// NewValidationError creates an empty ValidationError with the given summary message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  make(map[string][]string),
	}
}

// Add records a message against a field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return e.Message + " (" + strings.Join(fields, ", ") + ")"
}

// Is makes errors.Is(err, ErrValidation) hold for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
