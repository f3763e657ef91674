package responses

import "avalia-service/internal/pkg/questionnaire_dto"

// PositionRef points the front end at one (session, question) pair.
type PositionRef struct {
	SessionID  string `json:"id_sessao"`
	QuestionID string `json:"id_pergunta"`
}

// BatteryState is the full navigation snapshot returned after opening a
// battery, saving answers or resolving a step: which sessions are visible,
// the settled answers, where the respondent stands and whether the battery
// can be completed.
type BatteryState struct {
	BatteryID       string                      `json:"battery_id"`
	QuestionnaireID string                      `json:"id_questionario"`
	PatientID       string                      `json:"id_paciente"`
	Status          string                      `json:"status"`
	VisibleSessions []questionnaire_dto.Session `json:"sessoes_visiveis"`
	Answers         questionnaire_dto.AnswerSet `json:"respostas"`
	Current         *PositionRef                `json:"posicao_atual,omitempty"`
	IsFirst         bool                        `json:"is_first"`
	IsLast          bool                        `json:"is_last"`
	Complete        bool                        `json:"complete"`
}

type StepBattery struct {
	Target   *PositionRef `json:"target,omitempty"`
	Boundary bool         `json:"boundary"`
}

type CompleteBattery struct {
	BatteryID   string `json:"battery_id"`
	Status      string `json:"status"`
	CompletedAt string `json:"completed_at"`
}
