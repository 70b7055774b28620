package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/anjiri1684/workforce_tracker/models"
)

var validate = newValidator()

// newValidator builds the validator with field names taken from the json
// tags, so failures cite the payload's wire names (workerId, not WorkerID).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validator over a request payload and converts
// the failures into the structured per-field form, as a returned value
// rather than a panic or raw error string.
func validateStruct(payload any) *models.ValidationError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &models.ValidationError{Fields: []models.FieldError{
			{Field: "", Message: err.Error()},
		}}
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   jsonFieldName(fe),
			Message: tagMessage(fe),
		})
	}
	return &models.ValidationError{Fields: fields}
}

func fieldError(field, message string) *models.ValidationError {
	return &models.ValidationError{Fields: []models.FieldError{
		{Field: field, Message: message},
	}}
}

func jsonFieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return fe.StructNamespace()
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
