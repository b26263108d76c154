// Package validator adapts go-playground/validator to echo's Validator
// interface, translating tag failures into field -> messages maps.
package validator

import (
	"strings"

	domainerrors "koor/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a single validator instance; it is safe for
// concurrent use.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by all handlers.
func New() *echoValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator. Failures come back as a
// domain ValidationError so the error handler can serialize the
// field -> messages body.
func (ev *echoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err
	}

	out := &domainerrors.ValidationError{}
	for _, fe := range fieldErrs {
		out.Add(fieldName(fe), message(fe))
	}

	return out
}

// fieldName reports the snake_case name clients sent, not the Go field name.
func fieldName(fe playground.FieldError) string {
	return toSnake(fe.Field())
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "oneof":
		return "Value must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	default:
		return "This value is invalid."
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
