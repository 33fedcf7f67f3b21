package models

import "time"

// ── Answer Submission ────────────────────────────────────

type SubmitAnswerRequest struct {
	QuestionID       string  `json:"question_id"`
	Topic            string  `json:"topic"`
	UserAnswer       string  `json:"user_answer"`
	Correct          bool    `json:"correct"`
	Confidence       int     `json:"confidence"`
	TimeTakenSeconds float64 `json:"time_taken"`
	DifficultyLevel  int     `json:"difficulty_level"`
}

// AnswerRecord is one row of a user's response history. Immutable once
// written; estimation reads it, trend reporting orders it by time.
type AnswerRecord struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	QuestionID       string    `json:"question_id"`
	Topic            string    `json:"topic"`
	UserAnswer       string    `json:"user_answer"`
	Correct          bool      `json:"correct"`
	Confidence       int       `json:"confidence"`
	TimeTakenSeconds float64   `json:"time_taken"`
	DifficultyLevel  int       `json:"difficulty_level"`
	AnsweredAt       time.Time `json:"answered_at"`
}

type SubmitAnswerResponse struct {
	Message string       `json:"message"`
	Answer  AnswerRecord `json:"answer"`
}

// ── User Stats ───────────────────────────────────────────

type TopicStat struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	Accuracy    float64 `json:"accuracy"`
	AverageTime float64 `json:"average_time"`
}

type StatsResponse struct {
	TotalQuestions int                  `json:"total_questions"`
	CorrectAnswers int                  `json:"correct_answers"`
	Accuracy       float64              `json:"accuracy"`
	AverageTime    float64              `json:"average_time"`
	ByTopic        map[string]TopicStat `json:"by_topic"`
}

// ── Performance Trends ───────────────────────────────────

type TrendPoint struct {
	Timestamp       time.Time `json:"timestamp"`
	Topic           string    `json:"topic"`
	Correct         bool      `json:"correct"`
	TimeTaken       float64   `json:"time_taken"`
	DifficultyLevel int       `json:"difficulty_level"`
	Confidence      int       `json:"confidence"`
}

type TrendsResponse struct {
	Trends []TrendPoint `json:"trends"`
}
