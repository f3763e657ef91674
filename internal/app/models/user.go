package models

import "avalia-service/internal/pkg/questionnaire_dto"

type User struct {
	ID             string                 `bson:"_id,omitempty"`
	Email          string                 `bson:"email"`
	Username       string                 `bson:"username"`
	Password       string                 `bson:"password"`
	Role           questionnaire_dto.Role `bson:"role"`
	PatientID      string                 `bson:"patientId,omitempty"`
	PractitionerID string                 `bson:"practitionerId,omitempty"`
	TimeModel      `bson:",inline"`
}
