package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParsedQuestion is the JSON payload the model is asked to emit.
type ParsedQuestion struct {
	Question      string            `json:"question"`
	Choices       map[string]string `json:"choices"`
	CorrectAnswer string            `json:"correct_answer"`
	Solution      string            `json:"solution"`
}

var choiceKeys = []string{"A", "B", "C", "D"}

// ParseQuestion extracts and validates a question from raw model
// output. Code fences are tolerated even though the prompt forbids
// them, since models add them anyway.
func ParseQuestion(raw string) (*ParsedQuestion, error) {
	cleaned := stripCodeFences(raw)

	var parsed ParsedQuestion
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON in model response: %w", err)
	}

	if err := validateQuestion(&parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func validateQuestion(q *ParsedQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Choices) != 4 {
		return fmt.Errorf("expected 4 choices, got %d", len(q.Choices))
	}
	for _, key := range choiceKeys {
		if strings.TrimSpace(q.Choices[key]) == "" {
			return fmt.Errorf("missing or empty choice %q", key)
		}
	}
	q.CorrectAnswer = strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
	if _, ok := q.Choices[q.CorrectAnswer]; !ok {
		return fmt.Errorf("correct_answer %q is not a choice key", q.CorrectAnswer)
	}
	if strings.TrimSpace(q.Solution) == "" {
		return fmt.Errorf("solution is empty")
	}
	return nil
}

// stripCodeFences removes a leading/trailing markdown fence pair and
// returns the inner content.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
