package utils

import (
	"avalia-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogBusinessEvent records domain milestones (battery opened, completed,
// report generated) in a shape dashboards can aggregate on.
func LogBusinessEvent(logger *zap.Logger, event, requestID string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}
	logger.Info("Business event", append(base, fields...)...)
}
