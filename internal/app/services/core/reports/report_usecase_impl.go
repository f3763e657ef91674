package reports

import (
	"context"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/app/services/shared/ratelimiter"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"
	"avalia-service/internal/pkg/utils"
	"avalia-service/internal/pkg/visibility"

	"github.com/goccy/go-json"
)

// reportDocument is the artifact persisted to object storage. Scores are
// recomputed from the settled answer set at generation time.
type reportDocument struct {
	BatteryID          string                      `json:"id_bateria"`
	QuestionnaireID    string                      `json:"id_questionario"`
	QuestionnaireTitle string                      `json:"titulo_questionario"`
	PatientID          string                      `json:"id_paciente"`
	CompletedAt        *time.Time                  `json:"completado_em,omitempty"`
	Answers            questionnaire_dto.AnswerSet `json:"respostas"`
	SessionScores      []sessionScore              `json:"pontuacoes_sessoes"`
	GeneratedAt        time.Time                   `json:"gerado_em"`
}

type sessionScore struct {
	SessionID string  `json:"id_sessao"`
	Title     string  `json:"titulo"`
	Score     float64 `json:"pontuacao"`
}

type reportUsecase struct {
	BatteryRepository       contracts.BatteryRepository
	QuestionnaireRepository contracts.QuestionnaireRepository
	ReportStorage           contracts.ReportStorage
	ResourceLimiter         *ratelimiter.ResourceLimiter
	InternalConfig          *config.InternalConfig
}

func NewReportUsecase(
	batteryMongoRepository contracts.BatteryRepository,
	questionnaireMongoRepository contracts.QuestionnaireRepository,
	reportStorage contracts.ReportStorage,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) contracts.ReportUsecase {
	return &reportUsecase{
		BatteryRepository:       batteryMongoRepository,
		QuestionnaireRepository: questionnaireMongoRepository,
		ReportStorage:           reportStorage,
		ResourceLimiter:         resourceLimiter,
		InternalConfig:          internalConfig,
	}
}

func (uc *reportUsecase) GenerateBatteryReport(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.GenerateReport, error) {
	if err := requireClinicalRole(profile); err != nil {
		return nil, err
	}

	battery, err := uc.BatteryRepository.FindByID(ctx, batteryID)
	if err != nil {
		return nil, err
	}
	if battery == nil {
		return nil, exceptions.ErrBatteryNotFound(nil)
	}
	if battery.Status != models.BatteryStatusCompleted {
		return nil, exceptions.ErrBatteryNotComplete(nil)
	}

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      batteryID,
		LimiterGroupName:  constvars.RateLimiterGroupReports,
		WindowDurationSec: 3600,
		MaxQuota:          uc.InternalConfig.App.ReportGenerationMaxPerHour,
	})
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		return nil, exceptions.ErrReportRateLimited(nil)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, battery.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	payload, err := json.Marshal(uc.buildReportDocument(battery, questionnaire))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := utils.GenerateReportObjectName(constvars.MinioReportObjectPrefix, battery.ID)
	if err := uc.ReportStorage.PutReport(ctx, objectName, payload); err != nil {
		return nil, err
	}

	battery.ReportObjectName = objectName
	battery.UpdatedAt = time.Now().UTC()
	if err := uc.BatteryRepository.Update(ctx, battery); err != nil {
		return nil, err
	}

	return &responses.GenerateReport{
		BatteryID:  battery.ID,
		ObjectName: objectName,
	}, nil
}

func (uc *reportUsecase) GetBatteryReportURL(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.ReportURL, error) {
	if err := requireClinicalRole(profile); err != nil {
		return nil, err
	}

	battery, err := uc.BatteryRepository.FindByID(ctx, batteryID)
	if err != nil {
		return nil, err
	}
	if battery == nil {
		return nil, exceptions.ErrBatteryNotFound(nil)
	}
	if battery.ReportObjectName == "" {
		return nil, exceptions.ErrReportNotReady(nil)
	}

	expiry := time.Duration(uc.InternalConfig.App.ReportPreSignedURLExpiryTimeInHours) * time.Hour
	url, err := uc.ReportStorage.PresignedURL(ctx, battery.ReportObjectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.ReportURL{
		URL:       url,
		ExpiresAt: time.Now().UTC().Add(expiry).Format(time.RFC3339),
	}, nil
}

func (uc *reportUsecase) buildReportDocument(battery *models.Battery, questionnaire *questionnaire_dto.Questionnaire) *reportDocument {
	allQuestions := questionnaire.AllQuestions()
	profile := &questionnaire_dto.UserProfile{Role: questionnaire_dto.RolePatient}
	visible := visibility.VisibleSessions(questionnaire, battery.Answers, profile)

	scores := make([]sessionScore, 0, len(visible))
	for _, session := range visible {
		questionIDs := make([]string, 0, len(session.Questions))
		for _, question := range session.Questions {
			questionIDs = append(questionIDs, question.ID)
		}
		scores = append(scores, sessionScore{
			SessionID: session.ID,
			Title:     session.Title,
			Score:     visibility.ComputeScore(questionIDs, battery.Answers, allQuestions),
		})
	}

	return &reportDocument{
		BatteryID:          battery.ID,
		QuestionnaireID:    questionnaire.ID,
		QuestionnaireTitle: questionnaire.Title,
		PatientID:          battery.PatientID,
		CompletedAt:        battery.CompletedAt,
		Answers:            battery.Answers,
		SessionScores:      scores,
		GeneratedAt:        time.Now().UTC(),
	}
}

func requireClinicalRole(profile *questionnaire_dto.UserProfile) error {
	if profile == nil {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	switch profile.Role {
	case questionnaire_dto.RolePractitioner, questionnaire_dto.RoleAdmin:
		return nil
	default:
		return exceptions.ErrRoleNotAllowed(nil)
	}
}
