// Package validation provides HTTP request validation utilities using
// the validator/v10 library.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/medialogapp/medialog-server/internal/store"
)

// Validator wraps go-playground/validator with store error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our request types.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove options like omitempty, -
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct. Failures come back as a single
// store.ErrInvalidInput whose message joins the per-field problems;
// handlers surface them as the API's error message list.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// Messages extracts the per-field message list from a validation
// error produced by Validate, or nil for other errors.
func Messages(err error) []string {
	var ve *validationError
	if errors.As(err, &ve) {
		return ve.messages
	}
	return nil
}

// validationError carries the individual field messages alongside the
// store error used for status mapping.
type validationError struct {
	err      *store.Error
	messages []string
}

func (e *validationError) Error() string { return e.err.Error() }

// Unwrap exposes the store error so errors.As can map the HTTP status.
func (e *validationError) Unwrap() error { return e.err }

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s %s", e.Field(), friendlyMessage(e)))
	}
	sort.Strings(messages)

	return &validationError{
		err:      store.ErrInvalidInput.WithMessage("validation failed"),
		messages: messages,
	}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s elements", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}
