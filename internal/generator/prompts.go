package generator

import "fmt"

// SystemPrompt returns the role instruction shared by every
// generation request.
func SystemPrompt() string {
	return `You are an expert SAT math tutor who writes original practice questions.
Every question you produce must be a realistic multiple-choice SAT math
question with exactly four answer choices labeled A through D, exactly
one of which is correct. Respond with valid JSON only, no surrounding
prose and no markdown code fences.`
}

// difficultyDescriptor maps a 1-5 tier to a calibration hint for the
// model. Tier 3 is the median difficulty of a real SAT math section.
func difficultyDescriptor(level int) string {
	switch level {
	case 1:
		return "very easy (single-step, answered correctly by almost all students)"
	case 2:
		return "easy (one or two steps, answered correctly by most students)"
	case 3:
		return "medium (typical SAT difficulty, answered correctly by about half of students)"
	case 4:
		return "hard (multi-step reasoning, answered correctly by a minority of students)"
	case 5:
		return "very hard (among the hardest SAT questions, answered correctly by few students)"
	default:
		return "medium (typical SAT difficulty)"
	}
}

// BuildUserPrompt renders the generation request for one question at
// the target topic and tier.
func BuildUserPrompt(topic string, difficultyLevel int) string {
	return fmt.Sprintf(`Write one original SAT math question.

Topic: %s
Difficulty: %d out of 5, calibrated as %s

Return a JSON object with exactly these keys:
{
  "question": "the full question text",
  "choices": {"A": "...", "B": "...", "C": "...", "D": "..."},
  "correct_answer": "A, B, C, or D",
  "solution": "a step-by-step explanation of the correct answer"
}`, topic, difficultyLevel, difficultyDescriptor(difficultyLevel))
}
