package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPermissionDenied is returned when a user attempts an owner-only
// action, such as deleting a workspace they do not own.
var ErrPermissionDenied = errors.New("permission denied")

// FieldError describes a single invalid form field, suitable for
// rendering inline next to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one or more field errors. It is detected
// before any mutation and reported synchronously to the caller.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a *ValidationError, or nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func invalid(fields ...FieldError) error {
	return &ValidationError{Fields: fields}
}
