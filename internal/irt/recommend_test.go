package irt

import "testing"

func TestRecommendWithoutChallenge(t *testing.T) {
	rec := Recommend(0.0, false)
	if rec.Tier != 3 {
		t.Errorf("ability 0.0: tier = %d, want 3", rec.Tier)
	}
	if rec.TargetDifficulty != 0.0 {
		t.Errorf("ability 0.0: target = %f, want 0.0", rec.TargetDifficulty)
	}

	rec = Recommend(-2.0, false)
	if rec.Tier != 1 {
		t.Errorf("ability -2.0: tier = %d, want 1", rec.Tier)
	}
}

func TestRecommendChallengeCrossesTierBoundary(t *testing.T) {
	// 1.4 + 0.5 = 1.9 > 1.5 → tier 5
	rec := Recommend(1.4, true)
	if rec.Tier != 5 {
		t.Errorf("challenge at 1.4: tier = %d, want 5", rec.Tier)
	}
	if rec.EstimatedAbility != 1.9 {
		t.Errorf("challenge at 1.4: estimated ability = %f, want 1.9", rec.EstimatedAbility)
	}
}

func TestRecommendChallengeLandsOnBoundary(t *testing.T) {
	// 1.0 + 0.5 = 1.5 resolves down → tier 4
	rec := Recommend(1.0, true)
	if rec.Tier != 4 {
		t.Errorf("challenge at 1.0: tier = %d, want 4", rec.Tier)
	}
}

func TestRecommendTargetEqualsAbility(t *testing.T) {
	// The 50%-success convention: target difficulty tracks the
	// (possibly bumped) ability exactly.
	for _, ability := range []float64{-1.3, 0.0, 0.8} {
		rec := Recommend(ability, true)
		if rec.TargetDifficulty != ability+0.5 {
			t.Errorf("ability %f: target = %f, want %f", ability, rec.TargetDifficulty, ability+0.5)
		}
	}
}
