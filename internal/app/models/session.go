package models

import (
	"time"

	"avalia-service/internal/pkg/questionnaire_dto"
)

// Session is the login session stored in Redis, not a questionnaire
// session. The role travels with it so rule evaluation can build the
// respondent's profile without a user lookup.
type Session struct {
	SessionID      string                 `json:"session_id"`
	UserID         string                 `json:"user_id"`
	Role           questionnaire_dto.Role `json:"role"`
	PatientID      string                 `json:"patient_id,omitempty"`
	PractitionerID string                 `json:"practitioner_id,omitempty"`
	ExpiresAt      time.Time              `json:"expires_at"`
}
