// Package irt estimates learner ability and question difficulty from
// right/wrong response histories using a three-parameter logistic (3PL)
// Item Response Theory model. Ability and difficulty live on a shared
// latent scale of roughly -3 to +3; the probability of a correct answer
// is a logistic function of their difference.
//
// All functions are pure and safe for concurrent use. Estimation is
// bounded CPU work (a capped number of Newton-Raphson steps), so no
// context or cancellation is involved.
package irt

import "math"

// Response is one observed answer by a learner to a question of known
// difficulty. A zero Discrimination is treated as the default 1.0.
type Response struct {
	Correct        bool
	Difficulty     float64
	Discrimination float64
}

// ItemResponse is one observed answer to a single question by a learner
// of known ability. The mirror of Response for the difficulty axis.
type ItemResponse struct {
	Correct        bool
	Ability        float64
	Discrimination float64
}

// Status reports how an estimate was produced, so callers can tell a
// converged fit from a degraded fallback without inspecting magic
// confidence values.
type Status string

const (
	// StatusNoData means there were no responses; the estimate is the prior.
	StatusNoData Status = "no_data"
	// StatusConverged means Newton-Raphson reached the tolerance.
	StatusConverged Status = "converged"
	// StatusMaxSteps means the step budget ran out before convergence.
	// The estimate is still usable; confidence reflects the final curvature.
	StatusMaxSteps Status = "max_steps"
	// StatusFallback means the iteration hit a non-finite value and the
	// estimator fell back to its starting point with a fixed low confidence.
	StatusFallback Status = "fallback"
)

// Estimate is a fitted latent value with a confidence metric.
// Confidence is the magnitude of the log-posterior curvature at the
// optimum (capped at 10) — larger means the data pins the value down
// more tightly. It is not a calibrated confidence interval.
type Estimate struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
	Status     Status  `json:"status"`
}

// SuccessProbability returns the 3PL probability that a learner with the
// given ability answers a question with the given difficulty correctly:
//
//	p = guess + (1-guess) / (1 + exp(-discrimination*(ability-difficulty)))
//
// The exponent is clamped to [-15, 15] before exponentiating. Within that
// range the clamp is a no-op; outside it the logistic term is already
// saturated well past float64 precision, so results are unchanged.
func SuccessProbability(ability, difficulty, discrimination, guess float64) float64 {
	z := clamp(discrimination*(ability-difficulty), -15.0, 15.0)
	return guess + (1-guess)/(1+math.Exp(-z))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func discriminationOrDefault(d float64) float64 {
	if d == 0 {
		return 1.0
	}
	return d
}
