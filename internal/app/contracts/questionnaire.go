package contracts

import (
	"context"

	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/questionnaire_dto"
)

type QuestionnaireRepository interface {
	Insert(ctx context.Context, questionnaire *questionnaire_dto.Questionnaire) (string, error)
	FindByID(ctx context.Context, questionnaireID string) (*questionnaire_dto.Questionnaire, error)
	FindAll(ctx context.Context) ([]questionnaire_dto.Questionnaire, error)
	Update(ctx context.Context, questionnaire *questionnaire_dto.Questionnaire) error
	DeleteByID(ctx context.Context, questionnaireID string) error
}

type QuestionnaireUsecase interface {
	CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*questionnaire_dto.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*questionnaire_dto.Questionnaire, error)
	FindQuestionnaires(ctx context.Context) ([]questionnaire_dto.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaireID string, request *requests.UpdateQuestionnaire) (*questionnaire_dto.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
}
