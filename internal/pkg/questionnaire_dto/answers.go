package questionnaire_dto

import (
	"fmt"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AnswerKind int

const (
	// AnswerScalar holds a single value: an alternative id for single-choice
	// questions or the raw text/number/date value otherwise.
	AnswerScalar AnswerKind = iota
	// AnswerMulti holds the selected alternative ids of a multi-choice question.
	AnswerMulti
	// AnswerSkipped is the explicit "no answer" sentinel, distinct from the
	// question simply being absent from the set. It exists transiently while
	// visibility is being re-evaluated and is cleared by reconciliation.
	AnswerSkipped
)

// Answer is one entry of an AnswerSet. On the wire it is a bare string, an
// array of strings, or null for the sentinel.
type Answer struct {
	Kind   AnswerKind
	Value  string
	Values []string
}

func ScalarAnswer(value string) Answer {
	return Answer{Kind: AnswerScalar, Value: value}
}

func MultiAnswer(values ...string) Answer {
	return Answer{Kind: AnswerMulti, Values: values}
}

func SkippedAnswer() Answer {
	return Answer{Kind: AnswerSkipped}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerMulti:
		return json.Marshal(a.Values)
	case AnswerSkipped:
		return []byte("null"), nil
	default:
		return json.Marshal(a.Value)
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch value := raw.(type) {
	case nil:
		*a = SkippedAnswer()
	case string:
		*a = ScalarAnswer(value)
	case float64:
		// Numeric free answers arrive as strings from the form layer, but be
		// lenient with clients that send raw numbers.
		*a = ScalarAnswer(formatNumber(value))
	case []interface{}:
		values := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("answer list items must be strings, got %T", item)
			}
			values = append(values, s)
		}
		*a = MultiAnswer(values...)
	default:
		return fmt.Errorf("unsupported answer payload type %T", raw)
	}
	return nil
}

func (a Answer) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch a.Kind {
	case AnswerMulti:
		return bson.MarshalValue(a.Values)
	case AnswerSkipped:
		return bson.MarshalValue(primitive.Null{})
	default:
		return bson.MarshalValue(a.Value)
	}
}

func (a *Answer) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull:
		*a = SkippedAnswer()
		return nil
	case bson.TypeArray:
		var values []string
		if err := bson.UnmarshalValue(t, data, &values); err != nil {
			return err
		}
		*a = MultiAnswer(values...)
		return nil
	default:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*a = ScalarAnswer(value)
		return nil
	}
}

func formatNumber(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%g", value)
}

// AnswerSet maps question ids to their current answers. It is treated as an
// immutable snapshot by the visibility engine: mutation happens only at the
// battery usecase, which produces the next snapshot.
type AnswerSet map[string]Answer

func (s AnswerSet) Clone() AnswerSet {
	clone := make(AnswerSet, len(s))
	for questionID, answer := range s {
		clone[questionID] = answer
	}
	return clone
}

// Answered reports whether a question has a real answer recorded. The
// skipped sentinel does not count.
func (s AnswerSet) Answered(questionID string) bool {
	answer, ok := s[questionID]
	return ok && answer.Kind != AnswerSkipped
}
