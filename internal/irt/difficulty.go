package irt

import (
	"log"
	"math"
)

// EstimateDifficulty fits a question's latent difficulty to the answers
// it has received from learners of known ability. The mirror of
// EstimateAbility on the difficulty axis: the data gradient flips sign
// (success pushes difficulty down, ability up) and the search starts at
// the prior, since the success rate alone says nothing about difficulty
// without the responders' abilities.
//
// Both estimators share the same step budget, Hessian floor, and clamps.
func EstimateDifficulty(responses []ItemResponse, priorDifficulty float64, cfg Config) Estimate {
	if len(responses) == 0 {
		return Estimate{Value: priorDifficulty, Confidence: 0, Status: StatusNoData}
	}

	difficulty := priorDifficulty
	hessian := 0.0
	status := StatusMaxSteps

	for i := 0; i < cfg.stepBudget(); i++ {
		gradient := cfg.PriorWeight * (priorDifficulty - difficulty)
		hessian = -cfg.PriorWeight
		for _, r := range responses {
			disc := discriminationOrDefault(r.Discrimination)
			p := clamp(SuccessProbability(r.Ability, difficulty, disc, cfg.GuessRate), probFloor, probCeil)
			obs := 0.0
			if r.Correct {
				obs = 1.0
			}
			gradient -= (obs - p) * disc
			hessian -= p * (1 - p) * disc * disc
		}

		if math.Abs(hessian) < minCurvature {
			hessian = -minCurvature
		}

		step := clamp(gradient/hessian, -maxStep, maxStep)
		next := clamp(difficulty-step, latentMin, latentMax)

		if math.IsNaN(next) || math.IsInf(next, 0) {
			log.Printf("[irt] difficulty estimation hit a non-finite value, falling back to prior %.3f", priorDifficulty)
			return Estimate{Value: priorDifficulty, Confidence: fallbackConfidence, Status: StatusFallback}
		}

		if math.Abs(next-difficulty) < cfg.Tolerance {
			difficulty = next
			status = StatusConverged
			break
		}
		difficulty = next
	}

	confidence := math.Min(math.Abs(hessian), maxConfidence)

	if difficulty < latentMin || difficulty > latentMax {
		log.Printf("[irt] WARNING: difficulty estimate %.4f outside [%.1f, %.1f]", difficulty, latentMin, latentMax)
		difficulty = clamp(difficulty, latentMin, latentMax)
	}

	return Estimate{Value: difficulty, Confidence: confidence, Status: status}
}
