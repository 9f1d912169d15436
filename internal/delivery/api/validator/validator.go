// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New returns a Validator that reports field names by their json tags.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Validate checks the struct tags of i. Failures are ErrValidationFailed with
// one "field: rule" entry per violation in the details.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violation := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			violation += "=" + fe.Param()
		}
		violations = append(violations, violation)
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; ")))
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}
