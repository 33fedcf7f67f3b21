package irt

// Config bundles the model constants and optimizer settings shared by
// both estimators. It is a value type: construct it once (usually via
// DefaultConfig) and pass it by value; nothing in this package mutates
// or retains it.
type Config struct {
	// InitialAbility is the prior used for learners with no history.
	InitialAbility float64
	// GuessRate is the floor probability of answering correctly by
	// guessing (0.25 for four-choice questions).
	GuessRate float64
	// SlipRate is the probability of missing a known answer. The 3PL
	// model keeps an upper asymptote of 1, so this constant is carried
	// for reporting only; a 4PL extension would apply it.
	SlipRate float64
	// PriorWeight scales the pull of the Gaussian prior on the estimate.
	PriorWeight float64
	// MaxIterations is the caller-facing iteration budget.
	MaxIterations int
	// Tolerance stops iteration once a step moves less than this.
	Tolerance float64
	// StepCap is a hard bound on Newton-Raphson steps regardless of
	// MaxIterations, keeping worst-case cost small. Both estimators
	// apply min(MaxIterations, StepCap).
	StepCap int
}

// DefaultConfig returns the standard model constants.
func DefaultConfig() Config {
	return Config{
		InitialAbility: 0.0,
		GuessRate:      0.25,
		SlipRate:       0.1,
		PriorWeight:    1.0,
		MaxIterations:  25,
		Tolerance:      0.001,
		StepCap:        10,
	}
}

func (c Config) stepBudget() int {
	if c.MaxIterations < c.StepCap {
		return c.MaxIterations
	}
	return c.StepCap
}
