package contracts

import (
	"context"
	"time"

	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/questionnaire_dto"
)

// ReportStorage persists generated report artifacts and hands out
// time-limited download links.
type ReportStorage interface {
	PutReport(ctx context.Context, objectName string, payload []byte) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

type EventPublisher interface {
	PublishBatteryCompleted(ctx context.Context, batteryID string) error
}

type ReportUsecase interface {
	GenerateBatteryReport(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.GenerateReport, error)
	GetBatteryReportURL(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.ReportURL, error)
}
