package irt

import (
	"math"
	"math/rand"
	"testing"
)

func itemResponses(n int, correct bool, ability float64) []ItemResponse {
	rs := make([]ItemResponse, n)
	for i := range rs {
		rs[i] = ItemResponse{Correct: correct, Ability: ability}
	}
	return rs
}

func TestEstimateDifficultyEmptyReturnsPrior(t *testing.T) {
	for _, prior := range []float64{-1.0, 0.0, 2.5} {
		est := EstimateDifficulty(nil, prior, DefaultConfig())
		if est.Value != prior || est.Confidence != 0 || est.Status != StatusNoData {
			t.Errorf("empty responses: got %+v, want value=%f confidence=0 status=%q", est, prior, StatusNoData)
		}
	}
}

func TestEstimateDifficultyEveryoneSucceedsMeansEasy(t *testing.T) {
	est := EstimateDifficulty(itemResponses(10, true, 0.0), 0.0, DefaultConfig())
	if est.Value >= 0 {
		t.Errorf("all correct from average learners: difficulty = %f, want < 0", est.Value)
	}
	if est.Confidence <= 0 {
		t.Errorf("confidence = %f, want > 0", est.Confidence)
	}
}

func TestEstimateDifficultyEveryoneFailsMeansHard(t *testing.T) {
	est := EstimateDifficulty(itemResponses(10, false, 0.0), 0.0, DefaultConfig())
	if est.Value <= 0 {
		t.Errorf("all incorrect from average learners: difficulty = %f, want > 0", est.Value)
	}
}

// Mirror of the ability fixture: a question that average learners miss
// 8 times out of 10 sits well above medium. Reference value ≈ 1.68.
func TestEstimateDifficultyTwoOfTen(t *testing.T) {
	responses := append(itemResponses(2, true, 0.0), itemResponses(8, false, 0.0)...)

	est := EstimateDifficulty(responses, 0.0, DefaultConfig())

	if est.Value < 1.2 || est.Value > 2.1 {
		t.Errorf("2/10 correct: difficulty = %f, want within [1.2, 2.1]", est.Value)
	}
	if est.Confidence <= 1.0 {
		t.Errorf("2/10 correct: confidence = %f, want > 1.0", est.Confidence)
	}
}

func TestEstimateDifficultyStrongLearnersFailingRaisesEstimate(t *testing.T) {
	cfg := DefaultConfig()
	weak := EstimateDifficulty(itemResponses(10, false, -1.5), 0.0, cfg)
	strong := EstimateDifficulty(itemResponses(10, false, 1.5), 0.0, cfg)
	if strong.Value <= weak.Value {
		t.Errorf("strong learners failing (%f) should read harder than weak learners failing (%f)",
			strong.Value, weak.Value)
	}
}

func TestEstimateDifficultyMonotonicInFailureCount(t *testing.T) {
	cfg := DefaultConfig()
	prev := math.Inf(1)
	for correct := 10; correct >= 0; correct-- {
		responses := append(itemResponses(correct, true, 0.0), itemResponses(10-correct, false, 0.0)...)
		est := EstimateDifficulty(responses, 0.0, cfg)
		if est.Value > prev+1e-9 {
			t.Errorf("%d/10 correct: difficulty %f above %d/10's %f", correct, est.Value, correct+1, prev)
		}
		_ = prev
		prev = est.Value
	}
}

func TestEstimateDifficultyAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cfg := DefaultConfig()

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(30)
		responses := make([]ItemResponse, n)
		for j := range responses {
			responses[j] = ItemResponse{
				Correct:        rng.Intn(2) == 0,
				Ability:        rng.Float64()*10 - 5,
				Discrimination: 0.25 + rng.Float64()*2.75,
			}
		}
		prior := rng.Float64()*6 - 3

		est := EstimateDifficulty(responses, prior, cfg)
		if math.IsNaN(est.Value) || est.Value < -3 || est.Value > 3 {
			t.Fatalf("case %d: difficulty = %f outside [-3, 3]", i, est.Value)
		}
		if math.IsNaN(est.Confidence) || est.Confidence < 0 || est.Confidence > 10 {
			t.Fatalf("case %d: confidence = %f outside [0, 10]", i, est.Confidence)
		}
	}
}
