package validator

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator обёртка над go-playground/validator для структур запросов usecase
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate проверяет структуру по тегам validate и возвращает ошибку с читаемым описанием полей
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := FormatErrors(err)
	if len(fields) == 0 {
		return err
	}

	messages := make([]string, 0, len(fields))
	for _, msg := range fields {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	return errors.New(strings.Join(messages, "; "))
}

// FormatErrors превращает ошибки валидации в map поле -> сообщение
func FormatErrors(err error) map[string]string {
	result := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return result
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			result[field] = field + " is required"
		case "gt":
			result[field] = field + " must be greater than " + e.Param()
		case "gte":
			result[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			result[field] = field + " must be less than or equal to " + e.Param()
		case "lt":
			result[field] = field + " must be less than " + e.Param()
		default:
			result[field] = field + " is invalid"
		}
	}

	return result
}
