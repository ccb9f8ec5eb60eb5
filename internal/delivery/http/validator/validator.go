// Package validator wires go-playground/validator into Echo and translates
// violations into the per-field error shape the API returns.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "monsoon/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages carries the form-facing message for each known field and tag
// pair, matching what the frontend renders next to its inputs.
var fieldMessages = map[string]string{
	"policyId.required":       "Please select a policy",
	"policyId.min":            "Please select a policy",
	"applicantName.required":  "Name must be at least 2 characters",
	"applicantName.min":       "Name must be at least 2 characters",
	"name.required":           "Name must be at least 2 characters",
	"name.min":                "Name must be at least 2 characters",
	"email.required":          "Please enter a valid email address",
	"email.email":             "Please enter a valid email address",
	"phoneNumber.required":    "Phone number must be at least 10 digits",
	"phoneNumber.min":         "Phone number must be at least 10 digits",
	"address.required":        "Please provide a complete address",
	"address.min":             "Please provide a complete address",
	"city.required":           "City is required",
	"city.min":                "City is required",
	"state.required":          "State is required",
	"state.min":               "State is required",
	"pincode.required":        "Please enter a valid pincode",
	"pincode.min":             "Please enter a valid pincode",
	"coverageAmount.required": "Coverage amount must be at least ₹1,000",
	"coverageAmount.min":      "Coverage amount must be at least ₹1,000",
	"propertyValue.min":       "Property value must be at least ₹1,000",
	"farmSize.min":            "Farm size must be at least 0.1 acres",
	"subject.required":        "Subject must be at least 5 characters",
	"subject.min":             "Subject must be at least 5 characters",
	"message.required":        "Message must be at least 10 characters",
	"message.min":             "Message must be at least 10 characters",
}

// EchoValidator adapts a validator.Validate instance to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server. Field names in error
// output follow the struct's json tags so clients see the wire-level names.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &EchoValidator{validate: validate}
}

// Validate implements echo.Validator. Violations come back as a
// ValidationError enumerating every offending field.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]domainerrors.FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, domainerrors.FieldError{
			Field:   violation.Field(),
			Message: messageFor(violation),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func messageFor(violation validator.FieldError) string {
	if msg, ok := fieldMessages[violation.Field()+"."+violation.Tag()]; ok {
		return msg
	}

	switch violation.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", violation.Field())
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", violation.Field(), violation.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", violation.Field(), violation.Param())
	default:
		return fmt.Sprintf("%s is invalid", violation.Field())
	}
}
