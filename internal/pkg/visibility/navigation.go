package visibility

import (
	"sort"

	"avalia-service/internal/pkg/questionnaire_dto"
)

type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Position points at one question inside one session.
type Position struct {
	Session  questionnaire_dto.Session
	Question questionnaire_dto.Question
}

// FirstUnanswered walks the visible sessions in order and returns the first
// question with no recorded answer. When everything is answered it lands on
// the last question of the last visible session; with nothing visible it
// returns nil.
func FirstUnanswered(visibleSessions []questionnaire_dto.Session, answers questionnaire_dto.AnswerSet) *Position {
	var last *Position
	for _, session := range visibleSessions {
		questions := orderedQuestions(session)
		for _, question := range questions {
			if !answers.Answered(question.ID) {
				return &Position{Session: session, Question: question}
			}
			last = &Position{Session: session, Question: question}
		}
	}
	return last
}

// Step resolves the next or previous question relative to the current
// position. All sessions form one flat, globally ordered sequence of
// (session, question) pairs; sessions failing the visibility check at call
// time are skipped. A nil result means the boundary was reached or the
// current position no longer exists.
func Step(
	questionnaire *questionnaire_dto.Questionnaire,
	answers questionnaire_dto.AnswerSet,
	profile *questionnaire_dto.UserProfile,
	currentSessionID, currentQuestionID string,
	direction Direction,
) *Position {
	allQuestions := questionnaire.AllQuestions()
	sequence := flatSequence(questionnaire)

	currentIndex := -1
	for i, position := range sequence {
		if position.Session.ID == currentSessionID && position.Question.ID == currentQuestionID {
			currentIndex = i
			break
		}
	}
	if currentIndex < 0 {
		return nil
	}

	delta := 1
	if direction == DirectionPrev {
		delta = -1
	}

	for i := currentIndex + delta; i >= 0 && i < len(sequence); i += delta {
		if IsSessionVisible(sequence[i].Session, answers, allQuestions, profile) {
			position := sequence[i]
			return &position
		}
	}
	return nil
}

// IsFirst reports whether the given pair is the head of the visible
// sequence. An empty visible set counts as both first and last, which
// disables boundary navigation.
func IsFirst(visibleSessions []questionnaire_dto.Session, sessionID, questionID string) bool {
	head := headPosition(visibleSessions)
	if head == nil {
		return true
	}
	return head.Session.ID == sessionID && head.Question.ID == questionID
}

// IsLast is the symmetric check against the tail of the visible sequence.
func IsLast(visibleSessions []questionnaire_dto.Session, sessionID, questionID string) bool {
	tail := tailPosition(visibleSessions)
	if tail == nil {
		return true
	}
	return tail.Session.ID == sessionID && tail.Question.ID == questionID
}

// IsComplete holds when every question inside the currently visible sessions
// has an answer. Questions of hidden sessions are excluded from numerator
// and denominator alike, so a visible set without questions is complete.
func IsComplete(visibleSessions []questionnaire_dto.Session, answers questionnaire_dto.AnswerSet) bool {
	for _, session := range visibleSessions {
		for _, question := range session.Questions {
			if !answers.Answered(question.ID) {
				return false
			}
		}
	}
	return true
}

func flatSequence(questionnaire *questionnaire_dto.Questionnaire) []Position {
	sessions := make([]questionnaire_dto.Session, len(questionnaire.Sessions))
	copy(sessions, questionnaire.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Position < sessions[j].Position
	})

	var sequence []Position
	for _, session := range sessions {
		for _, question := range orderedQuestions(session) {
			sequence = append(sequence, Position{Session: session, Question: question})
		}
	}
	return sequence
}

func orderedQuestions(session questionnaire_dto.Session) []questionnaire_dto.Question {
	questions := make([]questionnaire_dto.Question, len(session.Questions))
	copy(questions, session.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Position < questions[j].Position
	})
	return questions
}

func headPosition(visibleSessions []questionnaire_dto.Session) *Position {
	for _, session := range visibleSessions {
		questions := orderedQuestions(session)
		if len(questions) > 0 {
			return &Position{Session: session, Question: questions[0]}
		}
	}
	return nil
}

func tailPosition(visibleSessions []questionnaire_dto.Session) *Position {
	for i := len(visibleSessions) - 1; i >= 0; i-- {
		questions := orderedQuestions(visibleSessions[i])
		if len(questions) > 0 {
			return &Position{Session: visibleSessions[i], Question: questions[len(questions)-1]}
		}
	}
	return nil
}
