package irt

// challengeOffset is the latent-scale bump applied in challenge mode.
// It is additive on the latent axis, not a tier bump: 1.4+0.5 crosses
// into tier 5 while 1.0+0.5 lands exactly on the tier-4 boundary and
// stays there.
const challengeOffset = 0.5

// Recommendation is the next-question target for a learner and topic.
type Recommendation struct {
	Tier             int     `json:"difficulty_level"`
	TargetDifficulty float64 `json:"target_difficulty"`
	EstimatedAbility float64 `json:"estimated_ability"`
}

// Recommend picks the difficulty tier for a learner's next question.
// The target difficulty equals the (possibly challenge-bumped) ability:
// an item whose difficulty matches ability sits at the 50% success
// point, the most informative place to ask.
func Recommend(topicAbility float64, challengeMode bool) Recommendation {
	if challengeMode {
		topicAbility += challengeOffset
	}
	return Recommendation{
		Tier:             ToTier(topicAbility),
		TargetDifficulty: topicAbility,
		EstimatedAbility: topicAbility,
	}
}
