package models

import "github.com/sat-prep/backend/internal/irt"

// ── Ability Report ───────────────────────────────────────

// TopicAbility is a per-topic slice of a user's ability report.
type TopicAbility struct {
	Topic             string     `json:"topic"`
	Ability           float64    `json:"ability"`
	Confidence        float64    `json:"confidence"`
	Status            irt.Status `json:"status"`
	QuestionCount     int        `json:"question_count"`
	AverageDifficulty float64    `json:"average_difficulty"`
	SuccessRate       float64    `json:"success_rate"`
}

type AbilityResponse struct {
	UserID            int64                   `json:"user_id"`
	OverallAbility    float64                 `json:"overall_ability"`
	OverallConfidence float64                 `json:"overall_confidence"`
	OverallStatus     irt.Status              `json:"overall_status"`
	TopicAbilities    map[string]TopicAbility `json:"topic_abilities"`
	QuestionsAnswered int                     `json:"questions_answered"`
}

// ── Difficulty Recommendation ────────────────────────────

type RecommendationResponse struct {
	Topic            string  `json:"topic"`
	DifficultyLevel  int     `json:"difficulty_level"`
	EstimatedAbility float64 `json:"estimated_ability"`
	ChallengeMode    bool    `json:"challenge_mode"`
}

// ── Question Difficulty ──────────────────────────────────

type QuestionDifficultyResponse struct {
	QuestionID      string     `json:"question_id"`
	Difficulty      float64    `json:"difficulty"`
	DifficultyLevel int        `json:"difficulty_level"`
	Confidence      float64    `json:"confidence"`
	Status          irt.Status `json:"status"`
	ResponseCount   int        `json:"response_count"`
	SuccessRate     float64    `json:"success_rate"`
}
