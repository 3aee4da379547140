package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "email":
				message = "Invalid email format"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
			case "alphanum":
				message = fieldError.Field() + " must contain only letters and numbers"
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "url":
				message = fieldError.Field() + " must be a valid URL"
			case "slug":
				message = fieldError.Field() + " must be a lowercase dash-separated slug"
			case "latitude":
				message = fieldError.Field() + " must be a valid latitude"
			case "longitude":
				message = fieldError.Field() + " must be a valid longitude"
			case "gt":
				message = fieldError.Field() + " must be greater than " + fieldError.Param()
			case "gte":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "lte":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

type Validator interface {
	Validate() error
}

func CreateValidationErrorResponse(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    400,
		Message: "Validation failed",
		Errors:  FormatValidationErrors(err),
	}
}
