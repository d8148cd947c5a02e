package validators

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dieselmedia/booking-api/internal/errs"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its `validate` tags. Failures are marked
// errs.ErrValidation with a field -> rule details map.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	details := map[string]any{}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			details[fe.Field()] = rule(fe)
		}
	} else {
		details["request"] = err.Error()
	}

	return errs.New("invalid request").
		WithHint("Please check the submitted fields").
		WithDetails(details).
		Mark(errs.ErrValidation)
}

// Field builds a single-field validation error.
func Field(field, message string) error {
	return errs.New("invalid " + field).
		WithHint(message).
		WithDetails(map[string]any{field: message}).
		Mark(errs.ErrValidation)
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
