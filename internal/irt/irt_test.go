package irt

import (
	"math"
	"testing"
)

func TestSuccessProbabilityFiftyPercentPoint(t *testing.T) {
	// ability == difficulty → logistic term is 1/2, so p = guess + (1-guess)/2
	got := SuccessProbability(0.7, 0.7, 1.0, 0.25)
	want := 0.25 + 0.75/2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SuccessProbability(equal) = %f, want %f", got, want)
	}

	got = SuccessProbability(-1.2, -1.2, 2.0, 0.0)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SuccessProbability(equal, guess=0) = %f, want 0.5", got)
	}
}

func TestSuccessProbabilityMonotonicInAbility(t *testing.T) {
	prev := -1.0
	for ability := -4.0; ability <= 4.0; ability += 0.25 {
		p := SuccessProbability(ability, 0.0, 1.0, 0.25)
		if p < prev {
			t.Errorf("p(%f) = %f decreased from %f", ability, p, prev)
		}
		prev = p
	}
}

func TestSuccessProbabilityMonotonicInDifficulty(t *testing.T) {
	prev := 2.0
	for difficulty := -4.0; difficulty <= 4.0; difficulty += 0.25 {
		p := SuccessProbability(0.0, difficulty, 1.0, 0.25)
		if p > prev {
			t.Errorf("p(difficulty=%f) = %f increased from %f", difficulty, p, prev)
		}
		prev = p
	}
}

func TestSuccessProbabilityRange(t *testing.T) {
	// Bounded by [guess, 1] even for extreme inputs that would overflow
	// an unclamped exponent.
	cases := []struct {
		ability, difficulty float64
	}{
		{100, -100},
		{-100, 100},
		{1e9, 0},
		{0, 1e9},
	}
	for _, c := range cases {
		p := SuccessProbability(c.ability, c.difficulty, 1.0, 0.25)
		if math.IsNaN(p) || p < 0.25 || p > 1.0 {
			t.Errorf("SuccessProbability(%g, %g) = %f, want within [0.25, 1]", c.ability, c.difficulty, p)
		}
	}
}

func TestSuccessProbabilityClampIsPureSafetyGuard(t *testing.T) {
	// For exponents already inside [-15, 15] the clamp must not change
	// the result: compare against the direct formula.
	for z := -14.0; z <= 14.0; z += 3.5 {
		got := SuccessProbability(z, 0.0, 1.0, 0.25)
		want := 0.25 + 0.75/(1+math.Exp(-z))
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("clamp changed in-range result at z=%f: got %g, want %g", z, got, want)
		}
	}
}

func TestSuccessProbabilityDiscriminationSharpens(t *testing.T) {
	// Higher discrimination moves p further from the midpoint on both sides.
	lowAbove := SuccessProbability(1.0, 0.0, 0.5, 0.25)
	highAbove := SuccessProbability(1.0, 0.0, 2.0, 0.25)
	if highAbove <= lowAbove {
		t.Errorf("above difficulty: discrimination 2.0 gave %f, not above %f", highAbove, lowAbove)
	}

	lowBelow := SuccessProbability(-1.0, 0.0, 0.5, 0.25)
	highBelow := SuccessProbability(-1.0, 0.0, 2.0, 0.25)
	if highBelow >= lowBelow {
		t.Errorf("below difficulty: discrimination 2.0 gave %f, not below %f", highBelow, lowBelow)
	}
}
