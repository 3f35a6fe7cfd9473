// Package validation runs struct-tag validation on use case requests and
// converts failures into typed validation errors.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "club-service/pkg/errors"
)

// Validator validates request structs.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Struct validates in and returns a *errors.ValidationError on failure.
func (v *Validator) Struct(in any) error {
	if err := v.validate.Struct(in); err != nil {
		return Format(err)
	}
	return nil
}

// Format converts validator.ValidationErrors into a ValidationError with a
// human-readable message. Other errors are returned unchanged.
func Format(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var (
		messages []string
		field    string
	)
	for _, e := range validationErrors {
		if field == "" {
			field = e.Field()
		}
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	if len(validationErrors) > 1 {
		field = ""
	}
	return apperrors.NewValidationError(field, strings.Join(messages, ", "))
}
