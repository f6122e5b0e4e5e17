package usecase

import (
	"reflect"
	"strings"

	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks input against its struct tags and reports every rejected field
// by its JSON name in a single domain ValidationError.
func Validate(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		reason := fieldErr.Tag()
		if strings.HasPrefix(reason, "required") {
			reason = "required"
		}
		fields = append(fields, domainerrors.FieldError{
			Field:  fieldErr.Field(),
			Reason: reason,
		})
	}

	return domainerrors.NewValidationError(fields...)
}
