package requests

import "avalia-service/internal/pkg/questionnaire_dto"

type OpenBattery struct {
	QuestionnaireID string `json:"id_questionario" validate:"required"`
	PatientID       string `json:"id_paciente" validate:"required"`
}

// SubmitAnswers carries the respondent's answer payload. Values may be an
// alternative id, a free text/number/date string, a list of alternative ids
// or null, the transient "no answer" marker.
type SubmitAnswers struct {
	Answers questionnaire_dto.AnswerSet `json:"respostas" validate:"required"`
}

type StepBattery struct {
	Direction         string `json:"direction" validate:"required,oneof=next prev"`
	CurrentSessionID  string `json:"id_sessao_atual" validate:"required"`
	CurrentQuestionID string `json:"id_pergunta_atual" validate:"required"`
}
