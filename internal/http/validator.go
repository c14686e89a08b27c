package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zingozingo/reading-tracker/internal/httpx"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("isbn", validISBN)
	return v
}

// validISBN accepts an unhyphenated ISBN-10 or ISBN-13. ISBN-10 may end
// in the X check character.
func validISBN(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 && len(s) != 13 {
		return false
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == 'X' && len(s) == 10 && i == 9 {
			continue
		}
		return false
	}
	return true
}

// ValidateStruct runs the validate tags on a request body and translates
// failures into field-level details for the error envelope.
func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		param := fieldErr.Param()

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be %s or greater", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be %s or less", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "isbn":
			message = fmt.Sprintf("%s must be a valid ISBN-10 or ISBN-13", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, httpx.ErrorDetail{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}

	return details
}
