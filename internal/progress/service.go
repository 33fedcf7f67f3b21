package progress

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sat-prep/backend/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SubmitAnswer validates and records one answer. The timestamp is
// stamped server-side; missing confidence/difficulty default to the
// middle of their scales, and a missing question id gets a fresh uuid
// so ad-hoc practice answers are still trackable per question.
func (s *Service) SubmitAnswer(userID int64, req models.SubmitAnswerRequest) (*models.AnswerRecord, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if req.UserAnswer == "" {
		return nil, fmt.Errorf("user_answer is required")
	}
	if req.Confidence == 0 {
		req.Confidence = 3
	}
	if req.Confidence < 1 || req.Confidence > 5 {
		return nil, fmt.Errorf("confidence must be between 1 and 5")
	}
	if req.DifficultyLevel == 0 {
		req.DifficultyLevel = 3
	}
	if req.DifficultyLevel < 1 || req.DifficultyLevel > 5 {
		return nil, fmt.Errorf("difficulty_level must be between 1 and 5")
	}
	if req.TimeTakenSeconds < 0 {
		return nil, fmt.Errorf("time_taken must not be negative")
	}
	if req.QuestionID == "" {
		req.QuestionID = uuid.NewString()
	}

	return s.store.InsertAnswer(userID, req, time.Now().UTC())
}

func (s *Service) GetUserStats(userID int64) (*models.StatsResponse, error) {
	records, err := s.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(records)
	return &stats, nil
}

func (s *Service) GetPerformanceTrends(userID int64) (*models.TrendsResponse, error) {
	records, err := s.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	trends := make([]models.TrendPoint, 0, len(records))
	for _, rec := range records {
		trends = append(trends, models.TrendPoint{
			Timestamp:       rec.AnsweredAt,
			Topic:           rec.Topic,
			Correct:         rec.Correct,
			TimeTaken:       rec.TimeTakenSeconds,
			DifficultyLevel: rec.DifficultyLevel,
			Confidence:      rec.Confidence,
		})
	}
	return &models.TrendsResponse{Trends: trends}, nil
}

// ComputeStats aggregates an answer history into overall and per-topic
// accuracy and timing. Zero-time answers are excluded from the time
// averages (older clients did not report timing).
func ComputeStats(records []models.AnswerRecord) models.StatsResponse {
	stats := models.StatsResponse{ByTopic: map[string]models.TopicStat{}}
	if len(records) == 0 {
		return stats
	}

	totalTime := 0.0
	timedCount := 0
	topicTimes := map[string]float64{}
	topicTimed := map[string]int{}

	for _, rec := range records {
		stats.TotalQuestions++
		if rec.Correct {
			stats.CorrectAnswers++
		}
		if rec.TimeTakenSeconds > 0 {
			totalTime += rec.TimeTakenSeconds
			timedCount++
		}

		topic := stats.ByTopic[rec.Topic]
		topic.Total++
		if rec.Correct {
			topic.Correct++
		}
		if rec.TimeTakenSeconds > 0 {
			topicTimes[rec.Topic] += rec.TimeTakenSeconds
			topicTimed[rec.Topic]++
		}
		stats.ByTopic[rec.Topic] = topic
	}

	stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100
	if timedCount > 0 {
		stats.AverageTime = totalTime / float64(timedCount)
	}

	for name, topic := range stats.ByTopic {
		topic.Accuracy = float64(topic.Correct) / float64(topic.Total) * 100
		if n := topicTimed[name]; n > 0 {
			topic.AverageTime = topicTimes[name] / float64(n)
		}
		stats.ByTopic[name] = topic
	}

	return stats
}
