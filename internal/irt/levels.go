package irt

// Difficulty tiers shown to learners. Tier 3 is a medium question a
// learner of average ability answers correctly about half the time
// (plus guessing).
const (
	TierVeryEasy = 1
	TierEasy     = 2
	TierMedium   = 3
	TierHard     = 4
	TierVeryHard = 5
)

// ToTier quantizes a latent difficulty onto the 1-5 scale. Buckets are
// closed on their upper edge, so a value exactly on a boundary resolves
// to the lower tier.
func ToTier(latent float64) int {
	switch {
	case latent <= -1.5:
		return TierVeryEasy
	case latent <= -0.5:
		return TierEasy
	case latent <= 0.5:
		return TierMedium
	case latent <= 1.5:
		return TierHard
	default:
		return TierVeryHard
	}
}

// ToLatent maps a 1-5 tier back to the center of its latent bucket.
// Unknown tiers map to 0.0 (medium) rather than failing: answer records
// carry tiers from clients and a bad one should not poison estimation.
// ToTier(ToLatent(t)) == t for every valid tier; the reverse direction
// is lossy quantization.
func ToLatent(tier int) float64 {
	switch tier {
	case TierVeryEasy:
		return -2.0
	case TierEasy:
		return -1.0
	case TierMedium:
		return 0.0
	case TierHard:
		return 1.0
	case TierVeryHard:
		return 2.0
	default:
		return 0.0
	}
}
