package routers

import (
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, middlewares *middlewares.Middlewares, practitionerController *controllers.PractitionerController) {
	admins := middlewares.RequireRoles(questionnaire_dto.RoleAdmin)

	router.With(middlewares.Authentication).Get("/", practitionerController.FindPractitioners)
	router.With(middlewares.Authentication).Get("/{practitionerID}", practitionerController.FindPractitionerByID)
	router.With(middlewares.Authentication, admins).Post("/", practitionerController.CreatePractitioner)
	router.With(middlewares.Authentication, admins).Put("/{practitionerID}", practitionerController.UpdatePractitioner)
}
