package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("letterdigit", hasLetterAndDigit)
	return &echoValidator{v: v}
}

var (
	reLetter = regexp.MustCompile(`[a-zA-Z]`)
	reDigit  = regexp.MustCompile(`\d`)
)

// hasLetterAndDigit backs the custom "letterdigit" tag used on passwords.
func hasLetterAndDigit(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return reLetter.MatchString(s) && reDigit.MatchString(s)
}

// Validate satisfies the echo.Validator interface. Failures are returned as
// a domain.ValidationError so the boundary handler can render the individual
// field violations in the response envelope.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return &domain.ValidationError{Violations: msgs}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "please provide a valid email address"
	case "alphanum":
		return field + " can only contain letters and numbers"
	case "letterdigit":
		return field + " must contain at least one letter and one number"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
