package routers

import (
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *controllers.QuestionnaireController) {
	editors := middlewares.RequireRoles(questionnaire_dto.RolePractitioner, questionnaire_dto.RoleAdmin)

	router.With(middlewares.Authentication).Get("/", questionnaireController.FindQuestionnaires)
	router.With(middlewares.Authentication).Get("/{questionnaireID}", questionnaireController.FindQuestionnaireByID)
	router.With(middlewares.Authentication, editors).Post("/", questionnaireController.CreateQuestionnaire)
	router.With(middlewares.Authentication, editors).Put("/{questionnaireID}", questionnaireController.UpdateQuestionnaire)
	router.With(middlewares.Authentication, editors).Delete("/{questionnaireID}", questionnaireController.DeleteQuestionnaireByID)
}
