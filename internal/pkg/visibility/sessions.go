package visibility

import (
	"sort"

	"avalia-service/internal/pkg/questionnaire_dto"
)

// IsSessionVisible combines all of a session's rules into one decision.
// Sessions without rules are always visible.
func IsSessionVisible(
	session questionnaire_dto.Session,
	answers questionnaire_dto.AnswerSet,
	allQuestions []questionnaire_dto.Question,
	profile *questionnaire_dto.UserProfile,
) bool {
	if len(session.Rules) == 0 {
		return true
	}

	if session.RuleCombination == questionnaire_dto.LogicOr {
		for _, rule := range session.Rules {
			if EvaluateRule(rule, answers, allQuestions, profile) {
				return true
			}
		}
		return false
	}

	for _, rule := range session.Rules {
		if !EvaluateRule(rule, answers, allQuestions, profile) {
			return false
		}
	}
	return true
}

// VisibleSessions filters the questionnaire's sessions through
// IsSessionVisible and orders them by their ordinal position. The sort is
// stable so sessions sharing a position keep their fetch order.
func VisibleSessions(
	questionnaire *questionnaire_dto.Questionnaire,
	answers questionnaire_dto.AnswerSet,
	profile *questionnaire_dto.UserProfile,
) []questionnaire_dto.Session {
	allQuestions := questionnaire.AllQuestions()

	visible := make([]questionnaire_dto.Session, 0, len(questionnaire.Sessions))
	for _, session := range questionnaire.Sessions {
		if IsSessionVisible(session, answers, allQuestions, profile) {
			visible = append(visible, session)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Position < visible[j].Position
	})
	return visible
}

// Reconcile settles the answer set after a mutation:
//
//  1. answers belonging to questions of sessions that are not visible under
//     the incoming snapshot are purged, so a hidden question's answer never
//     counts toward scores or re-visibility checks;
//  2. inside visible sessions, entries holding the explicit "no answer"
//     sentinel are deleted so those questions read as unanswered again.
//
// One pass is sufficient: purging and clearing only shrink or normalize the
// set, they never flip a rule that reads answers from another session. The
// input snapshot is not mutated; callers adopt the returned set.
func Reconcile(
	questionnaire *questionnaire_dto.Questionnaire,
	answers questionnaire_dto.AnswerSet,
	profile *questionnaire_dto.UserProfile,
) questionnaire_dto.AnswerSet {
	allQuestions := questionnaire.AllQuestions()
	settled := answers.Clone()

	for _, session := range questionnaire.Sessions {
		if IsSessionVisible(session, answers, allQuestions, profile) {
			for _, question := range session.Questions {
				if answer, ok := settled[question.ID]; ok && answer.Kind == questionnaire_dto.AnswerSkipped {
					delete(settled, question.ID)
				}
			}
			continue
		}
		for _, question := range session.Questions {
			delete(settled, question.ID)
		}
	}
	return settled
}
