// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("telegram_handle", validateTelegramHandle)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTelegramHandle(fl validator.FieldLevel) bool {
	handle := fl.Field().String()

	// Telegram usernames are 5-32 characters, letters, digits, underscores
	if len(handle) < 5 || len(handle) > 32 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", handle)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "telegram_handle":
		return "Telegram username must be 5-32 characters and contain only letters, numbers, and underscores"
	default:
		return e.Field() + " is invalid"
	}
}
