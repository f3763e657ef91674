package questionnaire_dto

// Wire and storage shapes for questionnaires. The JSON tags follow the
// payload the original administrative system produces, so fetched
// questionnaires decode without any mapping layer.

type AnswerType string

const (
	AnswerTypeFreeText     AnswerType = "texto_livre"
	AnswerTypeNumber       AnswerType = "numero"
	AnswerTypeDate         AnswerType = "data"
	AnswerTypeSingleChoice AnswerType = "escolha_unica"
	AnswerTypeMultiChoice  AnswerType = "multipla_escolha"
)

type LogicMode string

const (
	LogicAnd LogicMode = "AND"
	LogicOr  LogicMode = "OR"
)

type RuleKind string

const (
	RuleKindAnswerMatch    RuleKind = "resposta"
	RuleKindScoreRange     RuleKind = "pontuacao"
	RuleKindRoleMembership RuleKind = "perfil"
)

type Role string

const (
	RolePatient      Role = "paciente"
	RolePractitioner Role = "profissional_saude"
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "colaborador"
)

type Alternative struct {
	ID         string  `json:"id" bson:"id"`
	QuestionID string  `json:"id_pergunta,omitempty" bson:"id_pergunta,omitempty"`
	Text       string  `json:"texto" bson:"texto"`
	Value      float64 `json:"valor" bson:"valor"`
	Position   int     `json:"posicao" bson:"posicao"`
}

type Question struct {
	ID           string        `json:"id" bson:"id"`
	SessionID    string        `json:"id_sessao,omitempty" bson:"id_sessao,omitempty"`
	Text         string        `json:"texto" bson:"texto"`
	Type         AnswerType    `json:"tipo_resposta" bson:"tipo_resposta"`
	Position     int           `json:"posicao" bson:"posicao"`
	Alternatives []Alternative `json:"alternativas,omitempty" bson:"alternativas,omitempty"`
}

// VisibilityRule is the tagged union the backend ships inside
// regras_visibilidade. Kind selects the variant; the other fields are only
// meaningful for the variant that owns them. Evaluation must fail closed on
// any Kind it does not recognize.
type VisibilityRule struct {
	Kind RuleKind `json:"tipo_regra" bson:"tipo_regra"`

	// AnswerMatch
	QuestionID     string    `json:"id_pergunta,omitempty" bson:"id_pergunta,omitempty"`
	AlternativeIDs []string  `json:"ids_alternativas,omitempty" bson:"ids_alternativas,omitempty"`
	Combination    LogicMode `json:"logica,omitempty" bson:"logica,omitempty"`

	// ScoreRange
	QuestionIDs []string `json:"ids_perguntas,omitempty" bson:"ids_perguntas,omitempty"`
	MinScore    float64  `json:"pontuacao_minima,omitempty" bson:"pontuacao_minima,omitempty"`
	MaxScore    float64  `json:"pontuacao_maxima,omitempty" bson:"pontuacao_maxima,omitempty"`

	// RoleMembership
	Roles []Role `json:"perfis,omitempty" bson:"perfis,omitempty"`
}

type Session struct {
	ID              string           `json:"id" bson:"id"`
	QuestionnaireID string           `json:"id_questionario,omitempty" bson:"id_questionario,omitempty"`
	Title           string           `json:"titulo" bson:"titulo"`
	Description     string           `json:"descricao,omitempty" bson:"descricao,omitempty"`
	Position        int              `json:"posicao" bson:"posicao"`
	Questions       []Question       `json:"perguntas" bson:"perguntas"`
	Rules           []VisibilityRule `json:"regras_visibilidade,omitempty" bson:"regras_visibilidade,omitempty"`
	RuleCombination LogicMode        `json:"logica_principal_entre_regras,omitempty" bson:"logica_principal_entre_regras,omitempty"`
}

type Questionnaire struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"titulo" bson:"titulo"`
	Description string    `json:"descricao,omitempty" bson:"descricao,omitempty"`
	Sessions    []Session `json:"sessoes" bson:"sessoes"`
}

// UserProfile carries the only respondent attribute rule evaluation needs.
type UserProfile struct {
	Role Role `json:"perfil" bson:"perfil"`
}

// AllQuestions flattens every session's questions into one slice, the shape
// score and rule evaluation expect.
func (q *Questionnaire) AllQuestions() []Question {
	var questions []Question
	for _, session := range q.Sessions {
		questions = append(questions, session.Questions...)
	}
	return questions
}
