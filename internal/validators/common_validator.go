package validators

import (
	"errors"
	"fmt"
	"strings"

	"firstcab/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Validate runs struct validation and converts failures into a
// field-to-message map suitable for the validation error response.
func Validate(s interface{}) map[string]string {
	err := utils.ValidateStruct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[strings.ToLower(fieldError.Field())] = messageForTag(fieldError)
		}
		return fieldErrors
	}

	fieldErrors["request"] = err.Error()
	return fieldErrors
}

func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "strong_password":
		return "password must contain letters and digits and be at least 8 characters"
	case "trip_type":
		return "must be one-way or round-trip"
	case "object_id":
		return "must be a valid document ID"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldError.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldError.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldError.Tag())
	}
}
