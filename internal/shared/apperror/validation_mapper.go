package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldIssue(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// MapBindingError translates a gin binding failure into an AppError.
// Validator failures become a VALIDATION_ERROR with one detail per field;
// anything else (unparseable body, type mismatch) becomes MALFORMED_REQUEST.
func MapBindingError(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, FieldError{
				Field: e.Field(),
				Issue: fieldIssue(e),
			})
		}
		return ErrValidation.WithDetails(details)
	}

	var jsonErr *json.UnmarshalTypeError
	if errors.As(err, &jsonErr) && jsonErr.Field != "" {
		return ErrValidation.WithDetails([]FieldError{{
			Field: jsonErr.Field,
			Issue: fmt.Sprintf("%s must be of type %s", formatFieldName(jsonErr.Field), jsonErr.Type),
		}})
	}

	return Wrap(err, CodeMalformedRequest, "Malformed JSON request", ErrMalformedRequest.HTTPStatus)
}
