package visibility

import (
	"testing"

	"avalia-service/internal/pkg/questionnaire_dto"
)

func choiceQuestion(id string, alternatives ...questionnaire_dto.Alternative) questionnaire_dto.Question {
	return questionnaire_dto.Question{
		ID:           id,
		Type:         questionnaire_dto.AnswerTypeSingleChoice,
		Alternatives: alternatives,
	}
}

func alt(id, text string, value float64) questionnaire_dto.Alternative {
	return questionnaire_dto.Alternative{ID: id, Text: text, Value: value}
}

func TestComputeScore(t *testing.T) {
	questions := []questionnaire_dto.Question{
		choiceQuestion("q1", alt("a1", "Nunca", 0), alt("a2", "Sempre", 2)),
		choiceQuestion("q2", alt("b1", "Nao", 0), alt("b2", "Sim", 3)),
		{ID: "q3", Type: questionnaire_dto.AnswerTypeNumber},
	}

	cases := []struct {
		name        string
		questionIDs []string
		answers     questionnaire_dto.AnswerSet
		want        float64
	}{
		{
			name:        "sums selected alternative values",
			questionIDs: []string{"q1", "q2"},
			answers: questionnaire_dto.AnswerSet{
				"q1": questionnaire_dto.ScalarAnswer("a2"),
				"q2": questionnaire_dto.ScalarAnswer("b2"),
			},
			want: 5,
		},
		{
			name:        "matches alternative by display text as fallback",
			questionIDs: []string{"q1"},
			answers: questionnaire_dto.AnswerSet{
				"q1": questionnaire_dto.ScalarAnswer("Sempre"),
			},
			want: 2,
		},
		{
			name:        "numeric free answer adds directly",
			questionIDs: []string{"q3"},
			answers: questionnaire_dto.AnswerSet{
				"q3": questionnaire_dto.ScalarAnswer("4.5"),
			},
			want: 4.5,
		},
		{
			name:        "unanswered questions contribute zero",
			questionIDs: []string{"q1", "q2", "q3"},
			answers: questionnaire_dto.AnswerSet{
				"q2": questionnaire_dto.ScalarAnswer("b2"),
			},
			want: 3,
		},
		{
			name:        "unknown question id is ignored",
			questionIDs: []string{"missing", "q1"},
			answers: questionnaire_dto.AnswerSet{
				"q1": questionnaire_dto.ScalarAnswer("a2"),
			},
			want: 2,
		},
		{
			name:        "unmatched alternative contributes zero",
			questionIDs: []string{"q1"},
			answers: questionnaire_dto.AnswerSet{
				"q1": questionnaire_dto.ScalarAnswer("does-not-exist"),
			},
			want: 0,
		},
		{
			name:        "non numeric free answer contributes zero",
			questionIDs: []string{"q3"},
			answers: questionnaire_dto.AnswerSet{
				"q3": questionnaire_dto.ScalarAnswer("tomorrow"),
			},
			want: 0,
		},
		{
			name:        "multi choice sums every selected alternative",
			questionIDs: []string{"q1"},
			answers: questionnaire_dto.AnswerSet{
				"q1": questionnaire_dto.MultiAnswer("a1", "a2"),
			},
			want: 2,
		},
		{
			name:        "skipped sentinel contributes zero",
			questionIDs: []string{"q1"},
			answers: questionnaire_dto.AnswerSet{
				"q1": questionnaire_dto.SkippedAnswer(),
			},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeScore(tc.questionIDs, tc.answers, questions)
			if got != tc.want {
				t.Fatalf("ComputeScore(%v) = %v, want %v", tc.questionIDs, got, tc.want)
			}
		})
	}
}
