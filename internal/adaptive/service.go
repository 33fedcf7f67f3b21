// Package adaptive turns raw answer history into ability reports and
// next-question difficulty recommendations using the irt estimators.
package adaptive

import (
	"fmt"

	"github.com/sat-prep/backend/internal/irt"
	"github.com/sat-prep/backend/internal/models"
	"github.com/sat-prep/backend/internal/progress"
)

type Service struct {
	history *progress.Store
	cfg     irt.Config
}

func NewService(history *progress.Store, cfg irt.Config) *Service {
	return &Service{history: history, cfg: cfg}
}

// GetUserAbility estimates a user's overall ability and one ability per
// topic. The overall estimate is fitted first against the configured
// initial-ability prior; each topic estimate then uses the overall
// value as its prior, so thin topics shrink toward the user's general
// level instead of toward a global constant.
func (s *Service) GetUserAbility(userID int64) (*models.AbilityResponse, error) {
	records, err := s.history.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	report := BuildAbilityReport(userID, records, s.cfg)
	return &report, nil
}

// RecommendDifficulty picks the next-question tier for a topic. A topic
// with no history falls back to the user's overall ability, so new
// topics start at the user's general level rather than at medium.
func (s *Service) RecommendDifficulty(userID int64, topic string, challengeMode bool) (*models.RecommendationResponse, error) {
	report, err := s.GetUserAbility(userID)
	if err != nil {
		return nil, err
	}

	topicAbility := report.OverallAbility
	if ta, ok := report.TopicAbilities[topic]; ok {
		topicAbility = ta.Ability
	}

	rec := irt.Recommend(topicAbility, challengeMode)
	return &models.RecommendationResponse{
		Topic:            topic,
		DifficultyLevel:  rec.Tier,
		EstimatedAbility: rec.EstimatedAbility,
		ChallengeMode:    challengeMode,
	}, nil
}

// GetQuestionDifficulty estimates one question's latent difficulty from
// everyone who answered it. Each responder's overall ability is fitted
// from their own history first; the difficulty estimator then fits the
// question against those abilities, with a success-rate bucket as the
// prior.
func (s *Service) GetQuestionDifficulty(questionID string) (*models.QuestionDifficultyResponse, error) {
	responses, err := s.history.ListByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("load question responses: %w", err)
	}

	if len(responses) == 0 {
		return &models.QuestionDifficultyResponse{
			QuestionID:      questionID,
			Difficulty:      0.0,
			DifficultyLevel: irt.TierMedium,
			Status:          irt.StatusNoData,
		}, nil
	}

	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	successRate := float64(correct) / float64(len(responses))
	prior := DifficultyPriorFromSuccessRate(successRate)

	// One ability fit per distinct responder.
	abilities := map[int64]float64{}
	for _, r := range responses {
		if _, ok := abilities[r.UserID]; ok {
			continue
		}
		history, err := s.history.ListByUser(r.UserID)
		if err != nil {
			return nil, fmt.Errorf("load responder history: %w", err)
		}
		est := irt.EstimateAbility(toIRTResponses(history), s.cfg.InitialAbility, s.cfg)
		abilities[r.UserID] = est.Value
	}

	items := make([]irt.ItemResponse, 0, len(responses))
	for _, r := range responses {
		items = append(items, irt.ItemResponse{Correct: r.Correct, Ability: abilities[r.UserID]})
	}

	est := irt.EstimateDifficulty(items, prior, s.cfg)
	return &models.QuestionDifficultyResponse{
		QuestionID:      questionID,
		Difficulty:      est.Value,
		DifficultyLevel: irt.ToTier(est.Value),
		Confidence:      est.Confidence,
		Status:          est.Status,
		ResponseCount:   len(responses),
		SuccessRate:     successRate,
	}, nil
}

// BuildAbilityReport is the pure core of GetUserAbility.
func BuildAbilityReport(userID int64, records []models.AnswerRecord, cfg irt.Config) models.AbilityResponse {
	report := models.AbilityResponse{
		UserID:            userID,
		OverallAbility:    cfg.InitialAbility,
		TopicAbilities:    map[string]models.TopicAbility{},
		QuestionsAnswered: len(records),
	}

	overall := irt.EstimateAbility(toIRTResponses(records), cfg.InitialAbility, cfg)
	report.OverallAbility = overall.Value
	report.OverallConfidence = overall.Confidence
	report.OverallStatus = overall.Status

	byTopic := map[string][]models.AnswerRecord{}
	for _, rec := range records {
		byTopic[rec.Topic] = append(byTopic[rec.Topic], rec)
	}

	for topic, topicRecords := range byTopic {
		est := irt.EstimateAbility(toIRTResponses(topicRecords), overall.Value, cfg)

		correct := 0
		difficultySum := 0.0
		for _, rec := range topicRecords {
			if rec.Correct {
				correct++
			}
			difficultySum += irt.ToLatent(rec.DifficultyLevel)
		}

		report.TopicAbilities[topic] = models.TopicAbility{
			Topic:             topic,
			Ability:           est.Value,
			Confidence:        est.Confidence,
			Status:            est.Status,
			QuestionCount:     len(topicRecords),
			AverageDifficulty: difficultySum / float64(len(topicRecords)),
			SuccessRate:       float64(correct) / float64(len(topicRecords)),
		}
	}

	return report
}

// DifficultyPriorFromSuccessRate maps a raw success rate to a latent
// difficulty prior: rarely-answered-correctly reads hard, usually-
// answered-correctly reads easy.
func DifficultyPriorFromSuccessRate(successRate float64) float64 {
	switch {
	case successRate < 0.2:
		return 1.5
	case successRate < 0.4:
		return 0.8
	case successRate < 0.6:
		return 0.0
	case successRate < 0.8:
		return -0.8
	default:
		return -1.5
	}
}

func toIRTResponses(records []models.AnswerRecord) []irt.Response {
	responses := make([]irt.Response, 0, len(records))
	for _, rec := range records {
		responses = append(responses, irt.Response{
			Correct:    rec.Correct,
			Difficulty: irt.ToLatent(rec.DifficultyLevel),
		})
	}
	return responses
}
