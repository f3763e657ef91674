package models

import (
	"time"

	"avalia-service/internal/pkg/questionnaire_dto"
)

const (
	BatteryStatusInProgress = "in_progress"
	BatteryStatusCompleted  = "completed"
)

// Battery is one administration of a questionnaire to one patient. The
// answer set is persisted on every navigation step, so an interrupted
// battery resumes exactly where the respondent left it.
type Battery struct {
	ID                string                      `bson:"_id,omitempty"`
	QuestionnaireID   string                      `bson:"questionnaireId"`
	PatientID         string                      `bson:"patientId"`
	Status            string                      `bson:"status"`
	Answers           questionnaire_dto.AnswerSet `bson:"respostas"`
	CurrentSessionID  string                      `bson:"currentSessionId,omitempty"`
	CurrentQuestionID string                      `bson:"currentQuestionId,omitempty"`
	ReportObjectName  string                      `bson:"reportObjectName,omitempty"`
	CompletedAt       *time.Time                  `bson:"completedAt,omitempty"`
	TimeModel         `bson:",inline"`
}
