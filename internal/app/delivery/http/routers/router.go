package routers

import (
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	questionnaireController *controllers.QuestionnaireController,
	patientController *controllers.PatientController,
	practitionerController *controllers.PractitionerController,
	batteryController *controllers.BatteryController,
	reportController *controllers.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/questionnaires", func(r chi.Router) {
			attachQuestionnaireRoutes(r, middlewares, questionnaireController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController)
		})

		r.Route("/practitioners", func(r chi.Router) {
			attachPractitionerRoutes(r, middlewares, practitionerController)
		})

		r.Route("/batteries", func(r chi.Router) {
			attachBatteryRoutes(r, middlewares, batteryController)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, middlewares, reportController)
		})
	})
}
