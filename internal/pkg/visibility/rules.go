package visibility

import (
	"avalia-service/internal/pkg/questionnaire_dto"
)

// EvaluateRule evaluates a single visibility rule against the current answer
// snapshot and user profile. Unanswered dependencies and unknown rule kinds
// evaluate to false: a session is hidden rather than leaked when its rule
// cannot be satisfied or understood.
func EvaluateRule(
	rule questionnaire_dto.VisibilityRule,
	answers questionnaire_dto.AnswerSet,
	allQuestions []questionnaire_dto.Question,
	profile *questionnaire_dto.UserProfile,
) bool {
	switch rule.Kind {
	case questionnaire_dto.RuleKindAnswerMatch:
		return evaluateAnswerMatch(rule, answers)
	case questionnaire_dto.RuleKindScoreRange:
		score := ComputeScore(rule.QuestionIDs, answers, allQuestions)
		return score >= rule.MinScore && score <= rule.MaxScore
	case questionnaire_dto.RuleKindRoleMembership:
		if profile == nil {
			return false
		}
		for _, role := range rule.Roles {
			if role == profile.Role {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func evaluateAnswerMatch(rule questionnaire_dto.VisibilityRule, answers questionnaire_dto.AnswerSet) bool {
	answer, ok := answers[rule.QuestionID]
	if !ok || answer.Kind == questionnaire_dto.AnswerSkipped {
		return false
	}

	if answer.Kind == questionnaire_dto.AnswerMulti {
		if rule.Combination == questionnaire_dto.LogicAnd {
			// Every required alternative must appear in the selection.
			for _, required := range rule.AlternativeIDs {
				if !containsString(answer.Values, required) {
					return false
				}
			}
			return true
		}
		for _, required := range rule.AlternativeIDs {
			if containsString(answer.Values, required) {
				return true
			}
		}
		return false
	}

	if rule.Combination == questionnaire_dto.LogicAnd {
		// A scalar can only equal every required id when they are all the same
		// value; with two or more distinct ids this is always false. That
		// matches the behavior respondents see today and must not be "fixed".
		for _, required := range rule.AlternativeIDs {
			if answer.Value != required {
				return false
			}
		}
		return true
	}
	return containsString(rule.AlternativeIDs, answer.Value)
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
