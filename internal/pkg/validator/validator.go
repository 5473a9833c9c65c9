package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rail-booking-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры запроса.
// Ошибки валидатора конвертируются в AppError с деталями по полям.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest
	}

	details := make(map[string]interface{}, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		details[field] = fieldMessage(fe)
	}

	return errors.ErrInvalidRequest.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Value must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Value must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Value must be greater than %s", fe.Param())
	case "latitude":
		return "Latitude must be between -90 and 90"
	case "longitude":
		return "Longitude must be between -180 and 180"
	default:
		return fmt.Sprintf("Failed validation: %s", fe.Tag())
	}
}
