package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a payload field to the reason it was rejected. It is
// returned by services on bad input and rendered by the API layer as a
// 400 response body.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}

	return "invalid fields: " + strings.Join(parts, "; ")
}

var vld = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags and converts failures
// into FieldErrors keyed by the lower-cased field name.
func Struct(v any) error {
	err := vld.Struct(v)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("validate error: %w", err)
	}

	fe := make(FieldErrors, len(vErrs))
	for _, f := range vErrs {
		fe[strings.ToLower(f.Field())] = message(f)
	}

	return fe
}

func message(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", f.Param())
	default:
		return "invalid value"
	}
}
