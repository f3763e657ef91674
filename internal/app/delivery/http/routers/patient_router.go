package routers

import (
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	clinical := middlewares.RequireRoles(questionnaire_dto.RolePractitioner, questionnaire_dto.RoleAdmin)

	router.With(middlewares.Authentication).Get("/{patientID}", patientController.FindPatientByID)
	router.With(middlewares.Authentication, clinical).Get("/", patientController.FindPatients)
	router.With(middlewares.Authentication, clinical).Post("/", patientController.CreatePatient)
	router.With(middlewares.Authentication, clinical).Put("/{patientID}", patientController.UpdatePatient)
}
