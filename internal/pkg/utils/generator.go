package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateBatteryID() string {
	return uuid.New().String()
}

func GenerateReportObjectName(prefix, batteryID string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s%s_%s.json", prefix, batteryID, timestamp)
}
