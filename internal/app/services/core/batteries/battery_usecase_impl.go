package batteries

import (
	"context"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"
	"avalia-service/internal/pkg/utils"
	"avalia-service/internal/pkg/visibility"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type batteryUsecase struct {
	BatteryRepository       contracts.BatteryRepository
	QuestionnaireRepository contracts.QuestionnaireRepository
	PatientRepository       contracts.PatientRepository
	RedisRepository         contracts.RedisRepository
	EventPublisher          contracts.EventPublisher
	InternalConfig          *config.InternalConfig
	Logger                  *zap.Logger
}

func NewBatteryUsecase(
	batteryMongoRepository contracts.BatteryRepository,
	questionnaireMongoRepository contracts.QuestionnaireRepository,
	patientMongoRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BatteryUsecase {
	return &batteryUsecase{
		BatteryRepository:       batteryMongoRepository,
		QuestionnaireRepository: questionnaireMongoRepository,
		PatientRepository:       patientMongoRepository,
		RedisRepository:         redisRepository,
		EventPublisher:          eventPublisher,
		InternalConfig:          internalConfig,
		Logger:                  logger,
	}
}

func (uc *batteryUsecase) OpenBattery(ctx context.Context, profile *questionnaire_dto.UserProfile, request *requests.OpenBattery) (*responses.BatteryState, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now().UTC()
	battery := &models.Battery{
		ID:              utils.GenerateBatteryID(),
		QuestionnaireID: questionnaire.ID,
		PatientID:       patient.ID,
		Status:          models.BatteryStatusInProgress,
		Answers:         questionnaire_dto.AnswerSet{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	visible := visibility.VisibleSessions(questionnaire, battery.Answers, profile)
	if start := visibility.FirstUnanswered(visible, battery.Answers); start != nil {
		battery.CurrentSessionID = start.Session.ID
		battery.CurrentQuestionID = start.Question.ID
	}

	if _, err := uc.BatteryRepository.Insert(ctx, battery); err != nil {
		return nil, err
	}
	uc.cacheBattery(ctx, battery)

	return uc.buildBatteryState(battery, questionnaire, profile), nil
}

func (uc *batteryUsecase) GetBatteryState(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.BatteryState, error) {
	battery, err := uc.findBattery(ctx, batteryID)
	if err != nil {
		return nil, err
	}

	questionnaire, err := uc.findQuestionnaire(ctx, battery.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	return uc.buildBatteryState(battery, questionnaire, profile), nil
}

func (uc *batteryUsecase) SubmitAnswers(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile, request *requests.SubmitAnswers) (*responses.BatteryState, error) {
	battery, err := uc.findBattery(ctx, batteryID)
	if err != nil {
		return nil, err
	}
	if battery.Status == models.BatteryStatusCompleted {
		return nil, exceptions.ErrBatteryAlreadyCompleted(nil)
	}

	questionnaire, err := uc.findQuestionnaire(ctx, battery.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	// Merge the incoming payload over the stored set, then settle it: the
	// reconciliation purges answers of sessions the merge just hid and
	// clears explicit "no answer" entries inside visible sessions.
	merged := battery.Answers.Clone()
	for questionID, answer := range request.Answers {
		merged[questionID] = answer
	}
	battery.Answers = visibility.Reconcile(questionnaire, merged, profile)
	battery.UpdatedAt = time.Now().UTC()

	visible := visibility.VisibleSessions(questionnaire, battery.Answers, profile)
	if !positionStillVisible(visible, battery.CurrentSessionID, battery.CurrentQuestionID) {
		battery.CurrentSessionID = ""
		battery.CurrentQuestionID = ""
		if next := visibility.FirstUnanswered(visible, battery.Answers); next != nil {
			battery.CurrentSessionID = next.Session.ID
			battery.CurrentQuestionID = next.Question.ID
		}
	}

	if err := uc.BatteryRepository.Update(ctx, battery); err != nil {
		return nil, err
	}
	uc.cacheBattery(ctx, battery)

	return uc.buildBatteryState(battery, questionnaire, profile), nil
}

func (uc *batteryUsecase) StepBattery(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile, request *requests.StepBattery) (*responses.StepBattery, error) {
	battery, err := uc.findBattery(ctx, batteryID)
	if err != nil {
		return nil, err
	}
	if battery.Status == models.BatteryStatusCompleted {
		return nil, exceptions.ErrBatteryAlreadyCompleted(nil)
	}

	questionnaire, err := uc.findQuestionnaire(ctx, battery.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	target := visibility.Step(
		questionnaire,
		battery.Answers,
		profile,
		request.CurrentSessionID,
		request.CurrentQuestionID,
		visibility.Direction(request.Direction),
	)
	if target == nil {
		return &responses.StepBattery{Boundary: true}, nil
	}

	battery.CurrentSessionID = target.Session.ID
	battery.CurrentQuestionID = target.Question.ID
	battery.UpdatedAt = time.Now().UTC()
	if err := uc.BatteryRepository.Update(ctx, battery); err != nil {
		return nil, err
	}
	uc.cacheBattery(ctx, battery)

	return &responses.StepBattery{
		Target: &responses.PositionRef{
			SessionID:  target.Session.ID,
			QuestionID: target.Question.ID,
		},
	}, nil
}

func (uc *batteryUsecase) CompleteBattery(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.CompleteBattery, error) {
	battery, err := uc.findBattery(ctx, batteryID)
	if err != nil {
		return nil, err
	}
	if battery.Status == models.BatteryStatusCompleted {
		return nil, exceptions.ErrBatteryAlreadyCompleted(nil)
	}

	questionnaire, err := uc.findQuestionnaire(ctx, battery.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	visible := visibility.VisibleSessions(questionnaire, battery.Answers, profile)
	if !visibility.IsComplete(visible, battery.Answers) {
		return nil, exceptions.ErrBatteryNotComplete(nil)
	}

	now := time.Now().UTC()
	battery.Status = models.BatteryStatusCompleted
	battery.CompletedAt = &now
	battery.UpdatedAt = now
	if err := uc.BatteryRepository.Update(ctx, battery); err != nil {
		return nil, err
	}
	uc.cacheBattery(ctx, battery)

	// Completion stands even if the event cannot be published; downstream
	// consumers reconcile from storage.
	if err := uc.EventPublisher.PublishBatteryCompleted(ctx, battery.ID); err != nil {
		uc.Logger.Warn("failed to publish battery completed event",
			zap.String("battery_id", battery.ID),
			zap.Error(err),
		)
	}

	return &responses.CompleteBattery{
		BatteryID:   battery.ID,
		Status:      battery.Status,
		CompletedAt: now.Format(time.RFC3339),
	}, nil
}

func (uc *batteryUsecase) buildBatteryState(battery *models.Battery, questionnaire *questionnaire_dto.Questionnaire, profile *questionnaire_dto.UserProfile) *responses.BatteryState {
	visible := visibility.VisibleSessions(questionnaire, battery.Answers, profile)

	var current *responses.PositionRef
	if battery.CurrentSessionID != "" && battery.CurrentQuestionID != "" {
		current = &responses.PositionRef{
			SessionID:  battery.CurrentSessionID,
			QuestionID: battery.CurrentQuestionID,
		}
	}

	return &responses.BatteryState{
		BatteryID:       battery.ID,
		QuestionnaireID: battery.QuestionnaireID,
		PatientID:       battery.PatientID,
		Status:          battery.Status,
		VisibleSessions: visible,
		Answers:         battery.Answers,
		Current:         current,
		IsFirst:         visibility.IsFirst(visible, battery.CurrentSessionID, battery.CurrentQuestionID),
		IsLast:          visibility.IsLast(visible, battery.CurrentSessionID, battery.CurrentQuestionID),
		Complete:        visibility.IsComplete(visible, battery.Answers),
	}
}

// findBattery reads through the Redis cache before falling back to Mongo.
func (uc *batteryUsecase) findBattery(ctx context.Context, batteryID string) (*models.Battery, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPrefixBattery+batteryID)
	if err == nil && cached != "" {
		var battery models.Battery
		if err := json.Unmarshal([]byte(cached), &battery); err == nil {
			return &battery, nil
		}
	}

	battery, err := uc.BatteryRepository.FindByID(ctx, batteryID)
	if err != nil {
		return nil, err
	}
	if battery == nil {
		return nil, exceptions.ErrBatteryNotFound(nil)
	}
	return battery, nil
}

func (uc *batteryUsecase) findQuestionnaire(ctx context.Context, questionnaireID string) (*questionnaire_dto.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return questionnaire, nil
}

func (uc *batteryUsecase) cacheBattery(ctx context.Context, battery *models.Battery) {
	ttl := time.Duration(uc.InternalConfig.App.BatteryCacheExpiredTimeInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyPrefixBattery+battery.ID, battery, ttl); err != nil {
		uc.Logger.Warn("failed to cache battery",
			zap.String("battery_id", battery.ID),
			zap.Error(err),
		)
	}
}

func positionStillVisible(visibleSessions []questionnaire_dto.Session, sessionID, questionID string) bool {
	if sessionID == "" || questionID == "" {
		return false
	}
	for _, session := range visibleSessions {
		if session.ID != sessionID {
			continue
		}
		for _, question := range session.Questions {
			if question.ID == questionID {
				return true
			}
		}
	}
	return false
}
