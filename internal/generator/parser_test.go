package generator

import (
	"strings"
	"testing"
)

const validPayload = `{
  "question": "If 2x = 10, what is x?",
  "choices": {"A": "2", "B": "5", "C": "10", "D": "20"},
  "correct_answer": "B",
  "solution": "Divide both sides by 2 to get x = 5."
}`

func TestParseQuestionValid(t *testing.T) {
	q, err := ParseQuestion(validPayload)
	if err != nil {
		t.Fatalf("ParseQuestion failed: %v", err)
	}
	if q.Question != "If 2x = 10, what is x?" {
		t.Errorf("unexpected question text: %q", q.Question)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("expected correct answer B, got %q", q.CorrectAnswer)
	}
	if q.Choices["D"] != "20" {
		t.Errorf("expected choice D = 20, got %q", q.Choices["D"])
	}
}

func TestParseQuestionStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"
	q, err := ParseQuestion(fenced)
	if err != nil {
		t.Fatalf("ParseQuestion failed on fenced input: %v", err)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("expected correct answer B, got %q", q.CorrectAnswer)
	}
}

func TestParseQuestionNormalizesAnswerCase(t *testing.T) {
	lower := strings.Replace(validPayload, `"correct_answer": "B"`, `"correct_answer": " b "`, 1)
	q, err := ParseQuestion(lower)
	if err != nil {
		t.Fatalf("ParseQuestion failed: %v", err)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("expected normalized answer B, got %q", q.CorrectAnswer)
	}
}

func TestParseQuestionRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "sure, here is a question about algebra"},
		{"empty question", strings.Replace(validPayload, "If 2x = 10, what is x?", "  ", 1)},
		{"missing choice", strings.Replace(validPayload, `"D": "20"`, `"D": ""`, 1)},
		{"answer not a key", strings.Replace(validPayload, `"correct_answer": "B"`, `"correct_answer": "E"`, 1)},
		{"empty solution", strings.Replace(validPayload, "Divide both sides by 2 to get x = 5.", "", 1)},
	}

	for _, tc := range cases {
		if _, err := ParseQuestion(tc.raw); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestParseQuestionMockPayload(t *testing.T) {
	q, err := ParseQuestion(mockQuestionJSON)
	if err != nil {
		t.Fatalf("mock payload must always parse: %v", err)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("unexpected mock answer: %q", q.CorrectAnswer)
	}
}
