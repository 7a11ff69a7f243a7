// Package validation holds the one request-schema validator shared by the HTTP handlers
// and the Go client, so both sides reject the same payloads with the same messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON name so clients can match errors to inputs.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("flexdate", func(fl validator.FieldLevel) bool {
			_, err := core.ParseDate(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return strongPassword(fl.Field().String())
		})

		// absent or null endDate is "empty" for omitempty
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			n, ok := field.Interface().(models.NullableDate)
			if !ok || !n.Set || n.Null {
				return nil
			}
			return n.Value
		}, models.NullableDate{})

		validate = v
	})
	return validate
}

// Struct validates a request DTO. It returns nil or an *apperrors.ValidationError.
func Struct(s any) error {
	out := &apperrors.ValidationError{}
	if n, ok := s.(interface{ NullFields() []string }); ok {
		for _, field := range n.NullFields() {
			out.Add(field, fieldLabel(field)+" cannot be null")
		}
	}

	if err := instance().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return apperrors.NewValidationError("body", err.Error())
		}
		for _, fe := range fieldErrs {
			out.Add(fe.Field(), message(fe))
		}
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

func fieldLabel(field string) string {
	return strings.ToUpper(field[:1]) + field[1:]
}

func message(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "email":
		return "Invalid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "flexdate":
		return label + " must be a valid date"
	case "eqfield":
		return "Passwords do not match"
	case "strongpassword":
		return "Password must contain an uppercase letter, a lowercase letter, a number and a special character"
	default:
		return label + " is invalid"
	}
}

func strongPassword(s string) bool {
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}
