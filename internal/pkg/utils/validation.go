package utils

import (
	"regexp"

	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_role", validateUserRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch questionnaire_dto.Role(fl.Field().String()) {
	case questionnaire_dto.RolePatient,
		questionnaire_dto.RolePractitioner,
		questionnaire_dto.RoleAdmin,
		questionnaire_dto.RoleCollaborator:
		return true
	}
	return false
}
