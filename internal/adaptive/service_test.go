package adaptive

import (
	"testing"

	"github.com/sat-prep/backend/internal/irt"
	"github.com/sat-prep/backend/internal/models"
)

func answerRecords(topic string, correct, incorrect, level int) []models.AnswerRecord {
	var records []models.AnswerRecord
	for i := 0; i < correct; i++ {
		records = append(records, models.AnswerRecord{Topic: topic, Correct: true, DifficultyLevel: level})
	}
	for i := 0; i < incorrect; i++ {
		records = append(records, models.AnswerRecord{Topic: topic, Correct: false, DifficultyLevel: level})
	}
	return records
}

func TestBuildAbilityReportEmptyHistory(t *testing.T) {
	cfg := irt.DefaultConfig()
	report := BuildAbilityReport(42, nil, cfg)

	if report.UserID != 42 {
		t.Errorf("UserID = %d, want 42", report.UserID)
	}
	if report.OverallAbility != cfg.InitialAbility {
		t.Errorf("OverallAbility = %f, want initial %f", report.OverallAbility, cfg.InitialAbility)
	}
	if report.OverallStatus != irt.StatusNoData {
		t.Errorf("OverallStatus = %q, want %q", report.OverallStatus, irt.StatusNoData)
	}
	if report.QuestionsAnswered != 0 || len(report.TopicAbilities) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestBuildAbilityReportGroupsByTopic(t *testing.T) {
	cfg := irt.DefaultConfig()
	records := append(
		answerRecords("Algebra", 8, 2, 3),
		answerRecords("Geometry", 2, 8, 3)...,
	)

	report := BuildAbilityReport(1, records, cfg)

	if report.QuestionsAnswered != 20 {
		t.Errorf("QuestionsAnswered = %d, want 20", report.QuestionsAnswered)
	}
	if len(report.TopicAbilities) != 2 {
		t.Fatalf("got %d topics, want 2", len(report.TopicAbilities))
	}

	algebra := report.TopicAbilities["Algebra"]
	geometry := report.TopicAbilities["Geometry"]

	if algebra.Ability <= geometry.Ability {
		t.Errorf("Algebra (%f) should score above Geometry (%f)", algebra.Ability, geometry.Ability)
	}
	if algebra.QuestionCount != 10 || geometry.QuestionCount != 10 {
		t.Errorf("question counts = %d/%d, want 10/10", algebra.QuestionCount, geometry.QuestionCount)
	}
	if algebra.SuccessRate != 0.8 {
		t.Errorf("Algebra success rate = %f, want 0.8", algebra.SuccessRate)
	}
	// Tier 3 answers sit at latent 0.0.
	if algebra.AverageDifficulty != 0.0 {
		t.Errorf("Algebra average difficulty = %f, want 0.0", algebra.AverageDifficulty)
	}
}

func TestBuildAbilityReportTopicPriorIsOverall(t *testing.T) {
	cfg := irt.DefaultConfig()

	// A strong overall record plus a single-answer topic: the thin topic
	// should shrink toward the (positive) overall estimate, not to 0.
	records := append(
		answerRecords("Algebra", 10, 0, 3),
		answerRecords("Trigonometry", 0, 1, 3)...,
	)

	report := BuildAbilityReport(1, records, cfg)

	if report.OverallAbility <= 0 {
		t.Fatalf("overall ability = %f, want > 0", report.OverallAbility)
	}

	trig := report.TopicAbilities["Trigonometry"]
	solo := irt.EstimateAbility(
		[]irt.Response{{Correct: false, Difficulty: 0.0}},
		cfg.InitialAbility, cfg,
	)
	if trig.Ability <= solo.Value {
		t.Errorf("thin topic with strong overall prior (%f) should beat the neutral-prior fit (%f)",
			trig.Ability, solo.Value)
	}
}

func TestDifficultyPriorFromSuccessRate(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0.0, 1.5},
		{0.19, 1.5},
		{0.2, 0.8},
		{0.39, 0.8},
		{0.4, 0.0},
		{0.59, 0.0},
		{0.6, -0.8},
		{0.79, -0.8},
		{0.8, -1.5},
		{1.0, -1.5},
	}

	for _, tt := range tests {
		if got := DifficultyPriorFromSuccessRate(tt.rate); got != tt.want {
			t.Errorf("DifficultyPriorFromSuccessRate(%f) = %f, want %f", tt.rate, got, tt.want)
		}
	}
}
