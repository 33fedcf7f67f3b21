package leaderboard

import (
	"database/sql"
	"fmt"

	"github.com/sat-prep/backend/internal/models"
)

// Store runs the leaderboard aggregation queries. Points are earned
// only on correct answers, worth difficulty_level * 10 each.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const globalLeaderboardQuery = `
	SELECT u.id, u.name,
	       COUNT(a.id) AS total_questions,
	       COUNT(a.id) FILTER (WHERE a.correct) AS correct_answers,
	       COALESCE(AVG(a.difficulty_level), 0) AS avg_difficulty,
	       COALESCE(SUM(CASE WHEN a.correct THEN a.difficulty_level * 10 ELSE 0 END), 0) AS total_points
	FROM users u
	JOIN user_answers a ON a.user_id = u.id
	GROUP BY u.id, u.name
	ORDER BY total_points DESC, correct_answers DESC, u.id ASC
	LIMIT $1`

// TopUsers returns the global leaderboard ordered by total points.
func (s *Store) TopUsers(limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Query(globalLeaderboardQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

const topicLeaderboardQuery = `
	SELECT u.id, u.name,
	       COUNT(a.id) AS total_questions,
	       COUNT(a.id) FILTER (WHERE a.correct) AS correct_answers,
	       COALESCE(AVG(a.difficulty_level), 0) AS avg_difficulty,
	       COALESCE(SUM(CASE WHEN a.correct THEN a.difficulty_level * 10 ELSE 0 END), 0) AS total_points
	FROM users u
	JOIN user_answers a ON a.user_id = u.id
	WHERE a.topic = $1
	GROUP BY u.id, u.name
	ORDER BY total_points DESC, correct_answers DESC, u.id ASC
	LIMIT $2`

// TopUsersByTopic returns the leaderboard restricted to one topic.
func (s *Store) TopUsersByTopic(topic string, limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Query(topicLeaderboardQuery, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("query topic leaderboard: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.LeaderboardEntry, error) {
	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.TotalQuestions, &e.CorrectAnswers, &e.AvgDifficulty, &e.TotalPoints); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		if e.TotalQuestions > 0 {
			e.Accuracy = float64(e.CorrectAnswers) / float64(e.TotalQuestions) * 100
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const rankQuery = `
	WITH scores AS (
		SELECT u.id,
		       COALESCE(SUM(CASE WHEN a.correct THEN a.difficulty_level * 10 ELSE 0 END), 0) AS total_points
		FROM users u
		JOIN user_answers a ON a.user_id = u.id
		GROUP BY u.id
	)
	SELECT
		(SELECT COUNT(*) + 1 FROM scores WHERE total_points > s.total_points) AS rank,
		(SELECT COUNT(*) FROM scores) AS total_users,
		s.total_points
	FROM scores s
	WHERE s.id = $1`

// UserRank returns the caller's standing among all users with at least
// one answer. Rank and Percentile are nil when the user has no history.
func (s *Store) UserRank(userID int64) (*models.RankingResponse, error) {
	var (
		rank        int
		totalUsers  int
		totalPoints int
	)
	err := s.db.QueryRow(rankQuery, userID).Scan(&rank, &totalUsers, &totalPoints)
	if err == sql.ErrNoRows {
		var total int
		countErr := s.db.QueryRow(`
			SELECT COUNT(DISTINCT user_id) FROM user_answers`).Scan(&total)
		if countErr != nil {
			return nil, fmt.Errorf("count ranked users: %w", countErr)
		}
		return &models.RankingResponse{TotalUsers: total}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user rank: %w", err)
	}

	resp := &models.RankingResponse{
		Rank:        &rank,
		TotalUsers:  totalUsers,
		TotalPoints: totalPoints,
	}
	if totalUsers > 0 {
		percentile := float64(totalUsers-rank) / float64(totalUsers) * 100
		resp.Percentile = &percentile
	}
	return resp, nil
}
