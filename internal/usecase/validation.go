package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct-tag validation and folds failures into a
// single coded domain error.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email")
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}

	return &DomainError{
		Code:    CodeValidation,
		Message: strings.Join(parts, ", "),
	}
}
