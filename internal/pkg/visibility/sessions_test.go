package visibility

import (
	"reflect"
	"testing"

	"avalia-service/internal/pkg/questionnaire_dto"
)

// twoSessionQuestionnaire mirrors the canonical scenario: S1 always visible
// with a yes/no question, S2 gated by a score-range rule over S1's answer.
func twoSessionQuestionnaire() *questionnaire_dto.Questionnaire {
	return &questionnaire_dto.Questionnaire{
		ID:    "qst-1",
		Title: "Triagem inicial",
		Sessions: []questionnaire_dto.Session{
			{
				ID:       "s1",
				Title:    "Identificacao",
				Position: 1,
				Questions: []questionnaire_dto.Question{
					{
						ID:       "q1",
						Text:     "Sente dores frequentes?",
						Type:     questionnaire_dto.AnswerTypeSingleChoice,
						Position: 1,
						Alternatives: []questionnaire_dto.Alternative{
							{ID: "a", Text: "Yes", Value: 1, Position: 1},
							{ID: "b", Text: "No", Value: 0, Position: 2},
						},
					},
				},
			},
			{
				ID:       "s2",
				Title:    "Aprofundamento",
				Position: 2,
				Questions: []questionnaire_dto.Question{
					{ID: "q2", Text: "Descreva as dores", Type: questionnaire_dto.AnswerTypeFreeText, Position: 1},
				},
				RuleCombination: questionnaire_dto.LogicAnd,
				Rules: []questionnaire_dto.VisibilityRule{
					{
						Kind:        questionnaire_dto.RuleKindScoreRange,
						QuestionIDs: []string{"q1"},
						MinScore:    1,
						MaxScore:    1,
					},
				},
			},
		},
	}
}

func sessionIDs(sessions []questionnaire_dto.Session) []string {
	ids := make([]string, len(sessions))
	for i, session := range sessions {
		ids[i] = session.ID
	}
	return ids
}

func TestSessionWithoutRulesAlwaysVisible(t *testing.T) {
	session := questionnaire_dto.Session{ID: "s1"}
	if !IsSessionVisible(session, nil, nil, nil) {
		t.Fatal("a session without rules must be visible regardless of answers and profile")
	}
}

func TestVisibleSessionsFilterAndOrder(t *testing.T) {
	questionnaire := twoSessionQuestionnaire()

	answers := questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")}
	got := sessionIDs(VisibleSessions(questionnaire, answers, nil))
	if !reflect.DeepEqual(got, []string{"s1", "s2"}) {
		t.Fatalf("with q1=a expected [s1 s2], got %v", got)
	}

	answers = questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("b")}
	got = sessionIDs(VisibleSessions(questionnaire, answers, nil))
	if !reflect.DeepEqual(got, []string{"s1"}) {
		t.Fatalf("with q1=b expected [s1], got %v", got)
	}
}

func TestVisibleSessionsSortsByPosition(t *testing.T) {
	questionnaire := &questionnaire_dto.Questionnaire{
		Sessions: []questionnaire_dto.Session{
			{ID: "later", Position: 5},
			{ID: "earlier", Position: 1},
			{ID: "middle", Position: 3},
		},
	}
	got := sessionIDs(VisibleSessions(questionnaire, nil, nil))
	if !reflect.DeepEqual(got, []string{"earlier", "middle", "later"}) {
		t.Fatalf("expected sessions ordered by position, got %v", got)
	}
}

func TestSessionRuleCombinationModes(t *testing.T) {
	matchA := questionnaire_dto.VisibilityRule{
		Kind:           questionnaire_dto.RuleKindAnswerMatch,
		QuestionID:     "q1",
		AlternativeIDs: []string{"a"},
		Combination:    questionnaire_dto.LogicOr,
	}
	roleAdmin := questionnaire_dto.VisibilityRule{
		Kind:  questionnaire_dto.RuleKindRoleMembership,
		Roles: []questionnaire_dto.Role{questionnaire_dto.RoleAdmin},
	}

	answers := questionnaire_dto.AnswerSet{"q1": questionnaire_dto.ScalarAnswer("a")}
	patient := &questionnaire_dto.UserProfile{Role: questionnaire_dto.RolePatient}

	andSession := questionnaire_dto.Session{
		ID:              "s",
		Rules:           []questionnaire_dto.VisibilityRule{matchA, roleAdmin},
		RuleCombination: questionnaire_dto.LogicAnd,
	}
	if IsSessionVisible(andSession, answers, nil, patient) {
		t.Fatal("AND combination requires every rule to hold")
	}

	orSession := andSession
	orSession.RuleCombination = questionnaire_dto.LogicOr
	if !IsSessionVisible(orSession, answers, nil, patient) {
		t.Fatal("OR combination requires only one rule to hold")
	}
}

func TestReconcilePurgesHiddenSessionAnswers(t *testing.T) {
	questionnaire := twoSessionQuestionnaire()

	answers := questionnaire_dto.AnswerSet{
		"q1": questionnaire_dto.ScalarAnswer("b"),
		"q2": questionnaire_dto.ScalarAnswer("dores nas costas"),
	}
	settled := Reconcile(questionnaire, answers, nil)

	if _, ok := settled["q2"]; ok {
		t.Fatal("answer under hidden session s2 must be purged")
	}
	if !settled.Answered("q1") {
		t.Fatal("answer under visible session s1 must survive")
	}
	if _, ok := answers["q2"]; !ok {
		t.Fatal("input snapshot must not be mutated")
	}
}

func TestReconcileClearsSentinelInVisibleSessions(t *testing.T) {
	questionnaire := twoSessionQuestionnaire()

	answers := questionnaire_dto.AnswerSet{
		"q1": questionnaire_dto.SkippedAnswer(),
	}
	settled := Reconcile(questionnaire, answers, nil)

	if _, ok := settled["q1"]; ok {
		t.Fatal("sentinel entry in a visible session must be deleted, not kept as a negative answer")
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	questionnaire := twoSessionQuestionnaire()

	answers := questionnaire_dto.AnswerSet{
		"q1": questionnaire_dto.ScalarAnswer("b"),
		"q2": questionnaire_dto.ScalarAnswer("stale"),
	}
	once := Reconcile(questionnaire, answers, nil)
	twice := Reconcile(questionnaire, once, nil)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass must be a fixed point: %v vs %v", once, twice)
	}
}
