package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("project not found")

// ValidationError names the first configuration field that failed validation.
type ValidationError struct {
	Field   string
	Value   string
	Missing bool
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("Missing required field: %s", e.Field)
	}
	return fmt.Sprintf("Invalid %s: %s", fieldLabel(e.Field), e.Value)
}

func fieldLabel(field string) string {
	if field == "project_type" {
		return "project type"
	}
	return field
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
