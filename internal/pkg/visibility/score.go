package visibility

import (
	"strconv"

	"avalia-service/internal/pkg/questionnaire_dto"
)

// ComputeScore sums the numeric values of the alternatives selected for the
// given question ids. Scoring is lenient: unknown question ids, unanswered
// questions and unmatched alternatives contribute zero instead of failing.
func ComputeScore(questionIDs []string, answers questionnaire_dto.AnswerSet, allQuestions []questionnaire_dto.Question) float64 {
	questionsByID := indexQuestions(allQuestions)

	var total float64
	for _, questionID := range questionIDs {
		question, ok := questionsByID[questionID]
		if !ok {
			continue
		}
		answer, ok := answers[questionID]
		if !ok || answer.Kind == questionnaire_dto.AnswerSkipped {
			continue
		}

		if len(question.Alternatives) == 0 {
			// Free numeric answers add their own value.
			if value, err := strconv.ParseFloat(answer.Value, 64); err == nil {
				total += value
			}
			continue
		}

		switch answer.Kind {
		case questionnaire_dto.AnswerMulti:
			for _, selected := range answer.Values {
				if alternative, ok := matchAlternative(question, selected); ok {
					total += alternative.Value
				}
			}
		default:
			if alternative, ok := matchAlternative(question, answer.Value); ok {
				total += alternative.Value
			}
		}
	}
	return total
}

// matchAlternative resolves a selected value against a question's
// alternatives, by id first and by display text as a fallback.
func matchAlternative(question questionnaire_dto.Question, selected string) (questionnaire_dto.Alternative, bool) {
	for _, alternative := range question.Alternatives {
		if alternative.ID == selected {
			return alternative, true
		}
	}
	for _, alternative := range question.Alternatives {
		if alternative.Text == selected {
			return alternative, true
		}
	}
	return questionnaire_dto.Alternative{}, false
}

func indexQuestions(questions []questionnaire_dto.Question) map[string]questionnaire_dto.Question {
	index := make(map[string]questionnaire_dto.Question, len(questions))
	for _, question := range questions {
		index[question.ID] = question
	}
	return index
}
