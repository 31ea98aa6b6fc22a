// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared, concurrency-safe validator instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their json names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// FieldError is one failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed constraint of a request.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}

	return strings.Join(msgs, "; ")
}

// validateStruct runs the tag constraints on v.
func validateStruct(v any) ValidationErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Field: e.Field(), Message: message(e)})
	}

	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s long", e.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", e.Param())
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}
