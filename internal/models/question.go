package models

// GeneratedQuestion is one LLM-generated SAT multiple-choice question.
// The ID is minted server-side so a later answer submission can
// reference it.
type GeneratedQuestion struct {
	QuestionID      string            `json:"question_id"`
	Topic           string            `json:"topic"`
	DifficultyLevel int               `json:"difficulty_level"`
	Question        string            `json:"question"`
	Choices         map[string]string `json:"choices"`
	CorrectAnswer   string            `json:"correct_answer"`
	Solution        string            `json:"solution"`
}

type AdaptiveQuestionResponse struct {
	Topic                 string            `json:"topic"`
	RecommendedDifficulty int               `json:"recommended_difficulty"`
	UserAbility           float64           `json:"user_ability"`
	ChallengeMode         bool              `json:"challenge_mode"`
	Question              GeneratedQuestion `json:"question"`
}
