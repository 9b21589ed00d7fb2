// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("evm_address", validateEVMAddress)
	validate.RegisterValidation("token_id", validateTokenID)
	validate.RegisterTagNameFunc(jsonFieldName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEVMAddress(fl validator.FieldLevel) bool {
	return IsEVMAddress(fl.Field().String())
}

func validateTokenID(fl validator.FieldLevel) bool {
	return IsCanonicalTokenID(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// MissingFields returns, in declaration order, the fields of a validation
// error that are absent: a failed "required", or an empty list failing "min".
func MissingFields(err error) []string {
	var missing []string
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			if e.Tag() == "required" || (e.Tag() == "min" && e.Kind() == reflect.Slice) {
				missing = append(missing, e.Field())
			}
		}
	}
	return missing
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must have at least " + e.Param() + " item(s)"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "evm_address":
		return e.Field() + " must be a 0x-prefixed hex address"
	case "token_id":
		return e.Field() + " must be a non-negative integer token id"
	default:
		return e.Field() + " is invalid"
	}
}
