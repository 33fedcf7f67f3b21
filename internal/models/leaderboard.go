package models

type LeaderboardEntry struct {
	UserID         int64   `json:"user_id"`
	Name           string  `json:"name"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Accuracy       float64 `json:"accuracy"`
	AvgDifficulty  float64 `json:"avg_difficulty"`
	TotalPoints    int     `json:"total_points"`
	Rank           int     `json:"rank"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"leaderboard"`
	Topic   string             `json:"topic,omitempty"`
	Total   int                `json:"total"`
}

// RankingResponse describes where one user stands globally. Rank and
// Percentile are nil for users with no answer history.
type RankingResponse struct {
	Rank        *int     `json:"rank"`
	TotalUsers  int      `json:"total_users"`
	Percentile  *float64 `json:"percentile"`
	TotalPoints int      `json:"total_points"`
}
