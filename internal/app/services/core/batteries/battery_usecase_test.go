package batteries

import (
	"context"
	"errors"
	"testing"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBatteryRepository struct {
	mock.Mock
}

func (m *MockBatteryRepository) Insert(ctx context.Context, battery *models.Battery) (string, error) {
	args := m.Called(ctx, battery)
	return args.String(0), args.Error(1)
}

func (m *MockBatteryRepository) FindByID(ctx context.Context, batteryID string) (*models.Battery, error) {
	args := m.Called(ctx, batteryID)
	if battery, ok := args.Get(0).(*models.Battery); ok {
		return battery, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBatteryRepository) Update(ctx context.Context, battery *models.Battery) error {
	args := m.Called(ctx, battery)
	return args.Error(0)
}

type MockQuestionnaireRepository struct {
	mock.Mock
}

func (m *MockQuestionnaireRepository) Insert(ctx context.Context, questionnaire *questionnaire_dto.Questionnaire) (string, error) {
	args := m.Called(ctx, questionnaire)
	return args.String(0), args.Error(1)
}

func (m *MockQuestionnaireRepository) FindByID(ctx context.Context, questionnaireID string) (*questionnaire_dto.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	if questionnaire, ok := args.Get(0).(*questionnaire_dto.Questionnaire); ok {
		return questionnaire, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionnaireRepository) FindAll(ctx context.Context) ([]questionnaire_dto.Questionnaire, error) {
	args := m.Called(ctx)
	return args.Get(0).([]questionnaire_dto.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireRepository) Update(ctx context.Context, questionnaire *questionnaire_dto.Questionnaire) error {
	args := m.Called(ctx, questionnaire)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) DeleteByID(ctx context.Context, questionnaireID string) error {
	args := m.Called(ctx, questionnaireID)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Insert(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if patient, ok := args.Get(0).(*models.Patient); ok {
		return patient, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBatteryCompleted(ctx context.Context, batteryID string) error {
	args := m.Called(ctx, batteryID)
	return args.Error(0)
}

// scoredQuestionnaire builds a questionnaire whose second session only shows
// when q1 was answered with the alternative worth one point.
func scoredQuestionnaire() *questionnaire_dto.Questionnaire {
	return &questionnaire_dto.Questionnaire{
		ID:    "quest-1",
		Title: "Triagem",
		Sessions: []questionnaire_dto.Session{
			{
				ID:       "s1",
				Title:    "Geral",
				Position: 1,
				Questions: []questionnaire_dto.Question{
					{
						ID:       "q1",
						Text:     "Sente dores?",
						Type:     questionnaire_dto.AnswerTypeSingleChoice,
						Position: 1,
						Alternatives: []questionnaire_dto.Alternative{
							{ID: "a", Text: "Sim", Value: 1, Position: 1},
							{ID: "b", Text: "Nao", Value: 0, Position: 2},
						},
					},
				},
			},
			{
				ID:       "s2",
				Title:    "Detalhes",
				Position: 2,
				Questions: []questionnaire_dto.Question{
					{
						ID:       "q2",
						Text:     "Descreva",
						Type:     questionnaire_dto.AnswerTypeFreeText,
						Position: 1,
					},
				},
				Rules: []questionnaire_dto.VisibilityRule{
					{
						Kind:        questionnaire_dto.RuleKindScoreRange,
						QuestionIDs: []string{"q1"},
						MinScore:    1,
						MaxScore:    1,
					},
				},
			},
		},
	}
}

func newTestUsecase(
	batteryRepo *MockBatteryRepository,
	questionnaireRepo *MockQuestionnaireRepository,
	patientRepo *MockPatientRepository,
	redisRepo *MockRedisRepository,
	publisher *MockEventPublisher,
) contracts.BatteryUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{BatteryCacheExpiredTimeInMinutes: 30},
	}
	return NewBatteryUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher, internalConfig, zap.NewNop())
}

func patientProfile() *questionnaire_dto.UserProfile {
	return &questionnaire_dto.UserProfile{Role: questionnaire_dto.RolePatient}
}

func TestOpenBattery(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)
	patientRepo.On("FindByID", mock.Anything, "pat-1").Return(&models.Patient{ID: "pat-1", FullName: "Maria"}, nil)
	batteryRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Battery")).Return("bat-1", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	state, err := uc.OpenBattery(context.Background(), patientProfile(), &requests.OpenBattery{
		QuestionnaireID: "quest-1",
		PatientID:       "pat-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BatteryStatusInProgress, state.Status)
	assert.Len(t, state.VisibleSessions, 1, "score rule session must stay hidden with no answers")
	assert.Equal(t, "s1", state.VisibleSessions[0].ID)
	assert.NotNil(t, state.Current)
	assert.Equal(t, "q1", state.Current.QuestionID)
	assert.True(t, state.IsFirst)
	assert.False(t, state.Complete)
	batteryRepo.AssertExpectations(t)
}

func TestSubmitAnswersRevealsScoredSession(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:                "bat-1",
		QuestionnaireID:   "quest-1",
		PatientID:         "pat-1",
		Status:            models.BatteryStatusInProgress,
		Answers:           questionnaire_dto.AnswerSet{},
		CurrentSessionID:  "s1",
		CurrentQuestionID: "q1",
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	batteryRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Battery")).Return(nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	state, err := uc.SubmitAnswers(context.Background(), "bat-1", patientProfile(), &requests.SubmitAnswers{
		Answers: questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")},
	})

	assert.NoError(t, err)
	assert.Len(t, state.VisibleSessions, 2, "answering q1 with one point must reveal s2")
	assert.False(t, state.Complete, "q2 is still unanswered")
}

func TestSubmitAnswersPurgesHiddenSessionAnswers(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:              "bat-1",
		QuestionnaireID: "quest-1",
		PatientID:       "pat-1",
		Status:          models.BatteryStatusInProgress,
		Answers: questionnaire_dto.AnswerSet{
			"q1": questionnaire_dto.ScalarAnswer("a"),
			"q2": questionnaire_dto.ScalarAnswer("melhorou"),
		},
		CurrentSessionID:  "s2",
		CurrentQuestionID: "q2",
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	batteryRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Battery")).Return(nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	state, err := uc.SubmitAnswers(context.Background(), "bat-1", patientProfile(), &requests.SubmitAnswers{
		Answers: questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("b")},
	})

	assert.NoError(t, err)
	assert.Len(t, state.VisibleSessions, 1, "zero score must hide s2 again")
	_, q2Kept := state.Answers["q2"]
	assert.False(t, q2Kept, "q2's answer belongs to a hidden session and must be purged")
	assert.NotNil(t, state.Current)
	assert.Equal(t, "q1", state.Current.QuestionID, "current position falls back into the visible set")
}

func TestSubmitAnswersClearsSkippedMarker(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:                "bat-1",
		QuestionnaireID:   "quest-1",
		PatientID:         "pat-1",
		Status:            models.BatteryStatusInProgress,
		Answers:           questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")},
		CurrentSessionID:  "s1",
		CurrentQuestionID: "q1",
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	batteryRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Battery")).Return(nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	state, err := uc.SubmitAnswers(context.Background(), "bat-1", patientProfile(), &requests.SubmitAnswers{
		Answers: questionnaire_dto.AnswerSet{"q1": questionnaire_dto.SkippedAnswer()},
	})

	assert.NoError(t, err)
	_, q1Kept := state.Answers["q1"]
	assert.False(t, q1Kept, "the explicit no-answer marker erases the stored answer")
	assert.Len(t, state.VisibleSessions, 1)
}

func TestSubmitAnswersRejectsCompletedBattery(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:              "bat-1",
		QuestionnaireID: "quest-1",
		Status:          models.BatteryStatusCompleted,
		Answers:         questionnaire_dto.AnswerSet{},
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	_, err := uc.SubmitAnswers(context.Background(), "bat-1", patientProfile(), &requests.SubmitAnswers{
		Answers: questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")},
	})

	var customErr *exceptions.CustomError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, 409, customErr.StatusCode)
	batteryRepo.AssertNotCalled(t, "Update")
}

func TestStepBatteryBoundary(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:                "bat-1",
		QuestionnaireID:   "quest-1",
		Status:            models.BatteryStatusInProgress,
		Answers:           questionnaire_dto.AnswerSet{},
		CurrentSessionID:  "s1",
		CurrentQuestionID: "q1",
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	step, err := uc.StepBattery(context.Background(), "bat-1", patientProfile(), &requests.StepBattery{
		Direction:         "prev",
		CurrentSessionID:  "s1",
		CurrentQuestionID: "q1",
	})

	assert.NoError(t, err)
	assert.True(t, step.Boundary)
	assert.Nil(t, step.Target)
	batteryRepo.AssertNotCalled(t, "Update")
}

func TestStepBatterySkipsHiddenSession(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:                "bat-1",
		QuestionnaireID:   "quest-1",
		Status:            models.BatteryStatusInProgress,
		Answers:           questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")},
		CurrentSessionID:  "s1",
		CurrentQuestionID: "q1",
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	batteryRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Battery")).Return(nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	step, err := uc.StepBattery(context.Background(), "bat-1", patientProfile(), &requests.StepBattery{
		Direction:         "next",
		CurrentSessionID:  "s1",
		CurrentQuestionID: "q1",
	})

	assert.NoError(t, err)
	assert.False(t, step.Boundary)
	assert.Equal(t, "s2", step.Target.SessionID)
	assert.Equal(t, "q2", step.Target.QuestionID)
}

func TestCompleteBatteryRejectsIncomplete(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:              "bat-1",
		QuestionnaireID: "quest-1",
		Status:          models.BatteryStatusInProgress,
		Answers:         questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")},
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	_, err := uc.CompleteBattery(context.Background(), "bat-1", patientProfile())

	var customErr *exceptions.CustomError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, 400, customErr.StatusCode)
	publisher.AssertNotCalled(t, "PublishBatteryCompleted")
}

func TestCompleteBatteryPublishesEvent(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	battery := &models.Battery{
		ID:              "bat-1",
		QuestionnaireID: "quest-1",
		Status:          models.BatteryStatusInProgress,
		Answers: questionnaire_dto.AnswerSet{
			"q1": questionnaire_dto.ScalarAnswer("a"),
			"q2": questionnaire_dto.ScalarAnswer("sem alteracoes"),
		},
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	batteryRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Battery")).Return(nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)
	publisher.On("PublishBatteryCompleted", mock.Anything, "bat-1").Return(nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	response, err := uc.CompleteBattery(context.Background(), "bat-1", patientProfile())

	assert.NoError(t, err)
	assert.Equal(t, models.BatteryStatusCompleted, response.Status)
	assert.NotEmpty(t, response.CompletedAt)
	publisher.AssertExpectations(t)
}

func TestCompleteBatteryHiddenQuestionsDoNotBlock(t *testing.T) {
	batteryRepo := new(MockBatteryRepository)
	questionnaireRepo := new(MockQuestionnaireRepository)
	patientRepo := new(MockPatientRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)

	// q1=b scores zero, so s2 is hidden and q2 must not count against
	// completion.
	battery := &models.Battery{
		ID:              "bat-1",
		QuestionnaireID: "quest-1",
		Status:          models.BatteryStatusInProgress,
		Answers:         questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("b")},
	}

	redisRepo.On("Get", mock.Anything, "battery:bat-1").Return("", nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	batteryRepo.On("FindByID", mock.Anything, "bat-1").Return(battery, nil)
	batteryRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Battery")).Return(nil)
	questionnaireRepo.On("FindByID", mock.Anything, "quest-1").Return(scoredQuestionnaire(), nil)
	publisher.On("PublishBatteryCompleted", mock.Anything, "bat-1").Return(nil)

	uc := newTestUsecase(batteryRepo, questionnaireRepo, patientRepo, redisRepo, publisher)
	response, err := uc.CompleteBattery(context.Background(), "bat-1", patientProfile())

	assert.NoError(t, err)
	assert.Equal(t, models.BatteryStatusCompleted, response.Status)
}
