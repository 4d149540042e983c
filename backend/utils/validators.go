package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Формат кода секции: {batch 2-3 цифры}_{буква A-Z}, например 63_G
var sectionFormatRegex = regexp.MustCompile(`^\d{2,3}_[A-Z]$`)

// Внешние ссылки на материалы (Google Drive / YouTube)
var externalURLRegex = regexp.MustCompile(`^https://[^\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("sectioncode", func(fl validator.FieldLevel) bool {
		return ValidateSectionFormat(fl.Field().String())
	})
	_ = v.RegisterValidation("externalurl", func(fl validator.FieldLevel) bool {
		return ValidateExternalURL(fl.Field().String())
	})
	return v
}

// ValidateSectionFormat проверяет код секции вида 63_G
func ValidateSectionFormat(section string) bool {
	return sectionFormatRegex.MatchString(section)
}

// ValidateExternalURL проверяет ссылку на внешний ресурс
func ValidateExternalURL(url string) bool {
	return externalURLRegex.MatchString(url)
}

// ValidateStruct валидирует структуру запроса и возвращает ошибки по полям
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}
	for _, fe := range validationErrors {
		errors[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return errors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "sectioncode":
		return "Must be a section code like 63_G"
	case "externalurl":
		return "Must be a valid https URL"
	case "min":
		return "Value is below the allowed minimum"
	case "max":
		return "Value is above the allowed maximum"
	case "gte":
		return "Value must be at least " + fe.Param()
	case "lte":
		return "Value must be at most " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}
