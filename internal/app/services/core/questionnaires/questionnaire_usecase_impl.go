package questionnaires

import (
	"context"

	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/google/uuid"
)

type questionnaireUsecase struct {
	QuestionnaireRepository contracts.QuestionnaireRepository
}

func NewQuestionnaireUsecase(questionnaireMongoRepository contracts.QuestionnaireRepository) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireMongoRepository,
	}
}

func (uc *questionnaireUsecase) CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*questionnaire_dto.Questionnaire, error) {
	questionnaire := &questionnaire_dto.Questionnaire{
		ID:          uuid.New().String(),
		Title:       request.Title,
		Description: request.Description,
		Sessions:    normalizeSessions(request.Sessions),
	}

	if _, err := uc.QuestionnaireRepository.Insert(ctx, questionnaire); err != nil {
		return nil, err
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*questionnaire_dto.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaires(ctx context.Context) ([]questionnaire_dto.Questionnaire, error) {
	return uc.QuestionnaireRepository.FindAll(ctx)
}

func (uc *questionnaireUsecase) UpdateQuestionnaire(ctx context.Context, questionnaireID string, request *requests.UpdateQuestionnaire) (*questionnaire_dto.Questionnaire, error) {
	existing, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	questionnaire := &questionnaire_dto.Questionnaire{
		ID:          questionnaireID,
		Title:       request.Title,
		Description: request.Description,
		Sessions:    normalizeSessions(request.Sessions),
	}
	if err := uc.QuestionnaireRepository.Update(ctx, questionnaire); err != nil {
		return nil, err
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	existing, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrQuestionnaireNotFound(nil)
	}
	return uc.QuestionnaireRepository.DeleteByID(ctx, questionnaireID)
}

// normalizeSessions assigns ids to sessions, questions and alternatives that
// arrive without one and stamps the back references the engine relies on.
func normalizeSessions(sessions []questionnaire_dto.Session) []questionnaire_dto.Session {
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = uuid.New().String()
		}
		for j := range sessions[i].Questions {
			question := &sessions[i].Questions[j]
			if question.ID == "" {
				question.ID = uuid.New().String()
			}
			question.SessionID = sessions[i].ID
			for k := range question.Alternatives {
				if question.Alternatives[k].ID == "" {
					question.Alternatives[k].ID = uuid.New().String()
				}
				question.Alternatives[k].QuestionID = question.ID
			}
		}
	}
	return sessions
}
