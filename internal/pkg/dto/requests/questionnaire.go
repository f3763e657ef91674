package requests

import "avalia-service/internal/pkg/questionnaire_dto"

type CreateQuestionnaire struct {
	Title       string                      `json:"titulo" validate:"required"`
	Description string                      `json:"descricao"`
	Sessions    []questionnaire_dto.Session `json:"sessoes" validate:"required,min=1"`
}

// UpdateQuestionnaire replaces the stored document wholesale. Session edits
// carry the full rule list every time; rules have no identity across edits.
type UpdateQuestionnaire struct {
	Title       string                      `json:"titulo" validate:"required"`
	Description string                      `json:"descricao"`
	Sessions    []questionnaire_dto.Session `json:"sessoes" validate:"required,min=1"`
}
