package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationMsg renders a readable message for a single field error.
func ValidationMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// ValidationErrorFields extracts per-field errors from a binding failure,
// or nil when err is not a validator error.
func ValidationErrorFields(err error) []map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]map[string]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, map[string]string{
			"field": fe.Field(),
			"error": ValidationMsg(fe),
		})
	}
	return out
}
