package irt

import (
	"log"
	"math"
)

const (
	// latentMin/latentMax bound estimates to the conventional IRT scale.
	latentMin = -3.0
	latentMax = 3.0
	// maxStep caps a single Newton-Raphson step so a large gradient
	// cannot fling the iterate across the scale.
	maxStep = 0.5
	// minCurvature is the floor on |Hessian| before dividing.
	minCurvature = 0.01
	// maxConfidence caps the reported curvature.
	maxConfidence = 10.0
	// fallbackConfidence is reported when iteration degrades to the
	// starting point after a non-finite value.
	fallbackConfidence = 0.5
	// probFloor/probCeil keep per-response probabilities away from 0
	// and 1 so gradient and Hessian terms stay finite.
	probFloor = 0.001
	probCeil  = 0.999
)

// EstimateAbility fits a learner's latent ability to a response history
// by maximum-a-posteriori estimation: the 3PL likelihood of the observed
// answers combined with a Gaussian prior centered on priorAbility,
// maximized with damped Newton-Raphson.
//
// With no responses the prior is returned unchanged with zero
// confidence. Numerical trouble never surfaces as an error: a
// non-finite iterate degrades to the data-informed seed with
// StatusFallback, and callers should treat low confidence, not a
// returned fault, as the signal of a weak estimate.
func EstimateAbility(responses []Response, priorAbility float64, cfg Config) Estimate {
	if len(responses) == 0 {
		return Estimate{Value: priorAbility, Confidence: 0, Status: StatusNoData}
	}

	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	successRate := float64(correct) / float64(len(responses))

	// Data-informed starting point: map the success rate onto the latent
	// scale (0% → -3, 50% → 0, 100% → +3) so the search begins near the
	// optimum rather than at the prior.
	seed := clamp((successRate-0.5)*6, latentMin, latentMax)

	ability := seed
	hessian := 0.0
	status := StatusMaxSteps

	for i := 0; i < cfg.stepBudget(); i++ {
		gradient := cfg.PriorWeight * (priorAbility - ability)
		hessian = -cfg.PriorWeight
		for _, r := range responses {
			disc := discriminationOrDefault(r.Discrimination)
			p := clamp(SuccessProbability(ability, r.Difficulty, disc, cfg.GuessRate), probFloor, probCeil)
			obs := 0.0
			if r.Correct {
				obs = 1.0
			}
			gradient += (obs - p) * disc
			hessian -= p * (1 - p) * disc * disc
		}

		if math.Abs(hessian) < minCurvature {
			hessian = -minCurvature
		}

		step := clamp(gradient/hessian, -maxStep, maxStep)
		next := clamp(ability-step, latentMin, latentMax)

		if math.IsNaN(next) || math.IsInf(next, 0) {
			log.Printf("[irt] ability estimation hit a non-finite value, falling back to seed %.3f", seed)
			return Estimate{Value: seed, Confidence: fallbackConfidence, Status: StatusFallback}
		}

		if math.Abs(next-ability) < cfg.Tolerance {
			ability = next
			status = StatusConverged
			break
		}
		ability = next
	}

	confidence := math.Min(math.Abs(hessian), maxConfidence)

	// Unreachable given the per-step clamp; kept as a final guard.
	if ability < latentMin || ability > latentMax {
		log.Printf("[irt] WARNING: ability estimate %.4f outside [%.1f, %.1f]", ability, latentMin, latentMax)
		ability = clamp(ability, latentMin, latentMax)
	}

	return Estimate{Value: ability, Confidence: confidence, Status: status}
}
