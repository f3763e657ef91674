package questionnaire_dto

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestAnswerSetWireFormat(t *testing.T) {
	payload := []byte(`{"q1":"a","q2":["x","y"],"q3":null,"q4":7}`)

	var answers AnswerSet
	if err := json.Unmarshal(payload, &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if answers["q1"].Kind != AnswerScalar || answers["q1"].Value != "a" {
		t.Fatalf("q1 decoded wrong: %+v", answers["q1"])
	}
	if answers["q2"].Kind != AnswerMulti || len(answers["q2"].Values) != 2 {
		t.Fatalf("q2 decoded wrong: %+v", answers["q2"])
	}
	if answers["q3"].Kind != AnswerSkipped {
		t.Fatalf("null must decode to the skipped sentinel, got %+v", answers["q3"])
	}
	if answers["q4"].Value != "7" {
		t.Fatalf("numeric payloads are accepted leniently as strings, got %+v", answers["q4"])
	}

	// The sentinel must survive a round trip as null, never as empty string.
	encoded, err := json.Marshal(AnswerSet{"q3": SkippedAnswer()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"q3":null}` {
		t.Fatalf("sentinel encoding = %s, want {\"q3\":null}", encoded)
	}
}

func TestAnswerSetCloneIsIndependent(t *testing.T) {
	original := AnswerSet{"q1": ScalarAnswer("a")}
	clone := original.Clone()
	clone["q2"] = ScalarAnswer("b")
	delete(clone, "q1")

	if !original.Answered("q1") {
		t.Fatal("mutating the clone must not touch the original")
	}
	if original.Answered("q2") {
		t.Fatal("clone additions must not leak into the original")
	}
}

func TestAnsweredIgnoresSentinel(t *testing.T) {
	answers := AnswerSet{"q1": SkippedAnswer()}
	if answers.Answered("q1") {
		t.Fatal("the skipped sentinel is not a real answer")
	}
	if answers.Answered("missing") {
		t.Fatal("absent questions are unanswered")
	}
}
