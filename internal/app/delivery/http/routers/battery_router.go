package routers

import (
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBatteryRoutes(router chi.Router, middlewares *middlewares.Middlewares, batteryController *controllers.BatteryController) {
	router.With(middlewares.Authentication).Post("/", batteryController.OpenBattery)
	router.With(middlewares.Authentication).Get("/{batteryID}", batteryController.GetBatteryState)
	router.With(middlewares.Authentication).Put("/{batteryID}/answers", batteryController.SubmitAnswers)
	router.With(middlewares.Authentication).Post("/{batteryID}/step", batteryController.StepBattery)
	router.With(middlewares.Authentication).Put("/{batteryID}/complete", batteryController.CompleteBattery)
}
