package serverutils

import (
	"fmt"
	"strings"

	"studysnap-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags and folds all
// violations into a single BadRequest.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewBadRequest("Invalid request body")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describeFieldError(fe))
	}

	return apperrors.NewBadRequest("%s", strings.Join(messages, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "min":
		return fmt.Sprintf("field '%s' must have at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field '%s' must have at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag())
	}
}
