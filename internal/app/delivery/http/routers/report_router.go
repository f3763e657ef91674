package routers

import (
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *controllers.ReportController) {
	clinical := middlewares.RequireRoles(questionnaire_dto.RolePractitioner, questionnaire_dto.RoleAdmin)

	router.With(middlewares.Authentication, clinical).Post("/batteries/{batteryID}", reportController.GenerateBatteryReport)
	router.With(middlewares.Authentication, clinical).Get("/batteries/{batteryID}", reportController.GetBatteryReportURL)
}
