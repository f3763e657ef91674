package exceptions

import (
	"avalia-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email address",
	"min":       "is too short",
	"max":       "is too long",
	"oneof":     "must be one of: %s",
	"password":  "must be at least 8 characters with one uppercase letter and one special character",
	"user_role": "must be a known user role",
}

var validationTagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()

	message, ok := validationMessages[tag]
	if !ok {
		message = "is invalid"
	}
	if validationTagsWithParams[tag] {
		if tag == "oneof" {
			message = strings.Replace(message, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			message = strings.Replace(message, "%s", firstErr.Param(), 1)
		}
	}

	return fieldName + " " + message
}
