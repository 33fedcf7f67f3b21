package progress

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sat-prep/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertAnswer(userID int64, req models.SubmitAnswerRequest, answeredAt time.Time) (*models.AnswerRecord, error) {
	var rec models.AnswerRecord
	err := s.db.QueryRow(
		`INSERT INTO user_answers
		    (user_id, question_id, topic, user_answer, correct, confidence, time_taken_seconds, difficulty_level, answered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, user_id, question_id, topic, user_answer, correct, confidence, time_taken_seconds, difficulty_level, answered_at`,
		userID, req.QuestionID, req.Topic, req.UserAnswer, req.Correct,
		req.Confidence, req.TimeTakenSeconds, req.DifficultyLevel, answeredAt,
	).Scan(&rec.ID, &rec.UserID, &rec.QuestionID, &rec.Topic, &rec.UserAnswer,
		&rec.Correct, &rec.Confidence, &rec.TimeTakenSeconds, &rec.DifficultyLevel, &rec.AnsweredAt)
	if err != nil {
		return nil, fmt.Errorf("insert answer: %w", err)
	}
	return &rec, nil
}

// ListByUser returns a user's full answer history in chronological
// order. Estimation ignores the order; trend reporting relies on it.
func (s *Store) ListByUser(userID int64) ([]models.AnswerRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, question_id, topic, user_answer, correct, confidence,
		        COALESCE(time_taken_seconds, 0), difficulty_level, answered_at
		 FROM user_answers
		 WHERE user_id = $1
		 ORDER BY answered_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var records []models.AnswerRecord
	for rows.Next() {
		var rec models.AnswerRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.QuestionID, &rec.Topic, &rec.UserAnswer,
			&rec.Correct, &rec.Confidence, &rec.TimeTakenSeconds, &rec.DifficultyLevel, &rec.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListByQuestion returns every answer a question has received, across
// users, for difficulty estimation.
func (s *Store) ListByQuestion(questionID string) ([]models.AnswerRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, question_id, topic, user_answer, correct, confidence,
		        COALESCE(time_taken_seconds, 0), difficulty_level, answered_at
		 FROM user_answers
		 WHERE question_id = $1
		 ORDER BY answered_at ASC`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list question answers: %w", err)
	}
	defer rows.Close()

	var records []models.AnswerRecord
	for rows.Next() {
		var rec models.AnswerRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.QuestionID, &rec.Topic, &rec.UserAnswer,
			&rec.Correct, &rec.Confidence, &rec.TimeTakenSeconds, &rec.DifficultyLevel, &rec.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
