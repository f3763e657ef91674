package contracts

import (
	"context"

	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/questionnaire_dto"
)

type BatteryRepository interface {
	Insert(ctx context.Context, battery *models.Battery) (string, error)
	FindByID(ctx context.Context, batteryID string) (*models.Battery, error)
	Update(ctx context.Context, battery *models.Battery) error
}

// BatteryUsecase drives one questionnaire administration: answer intake,
// visibility reconciliation, navigation and completion.
type BatteryUsecase interface {
	OpenBattery(ctx context.Context, profile *questionnaire_dto.UserProfile, request *requests.OpenBattery) (*responses.BatteryState, error)
	GetBatteryState(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.BatteryState, error)
	SubmitAnswers(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile, request *requests.SubmitAnswers) (*responses.BatteryState, error)
	StepBattery(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile, request *requests.StepBattery) (*responses.StepBattery, error)
	CompleteBattery(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.CompleteBattery, error)
}
