package poly

import (
	"math/rand"
	"testing"
)

func TestDifferentiate(t *testing.T) {
	p := fromTerms(terms{"": 1, "x": 2, "y": 3, "xy": 4, "xxy": 5})
	diff(t, terms{"": 2, "xy": 10, "y": 4}, termsOf(p.Differentiate('x')))
	diff(t, terms{"": 3, "x": 4, "xx": 5}, termsOf(p.Differentiate('y')))
	// No term contains z, every term vanishes
	diff(t, terms{}, termsOf(p.Differentiate('z')))
	{ // Colliding keys are summed, not overwritten
		q := fromTerms(terms{"xy": 1, "yx": 2})
		diff(t, terms{"y": 3}, termsOf(q.Differentiate('x')))
	}
	{ // Only the first occurrence is removed
		q := fromTerms(terms{"yxyx": 1})
		diff(t, terms{"yyx": 2}, termsOf(q.Differentiate('x')))
	}
}

func TestIntegrate(t *testing.T) {
	p := fromTerms(terms{"": 1, "x": 2, "y": 3, "xy": 4})
	diff(t, terms{"x": 1, "xx": 1, "xxy": 2, "xy": 3}, termsOf(p.Integrate('x')))
	diff(t, terms{"z": 1, "zx": 2, "zy": 3, "zxy": 4}, termsOf(p.Integrate('z')))
}

func TestCalculus_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := randomPolynomial(rng, "xyz", 6, 4)
		for _, c := range "xyz" {
			I := p.Integrate(c)
			diff(t, termsOf(p), termsOf(I.Differentiate(c)), approx)
			diff(t, termsOf(I), termsOf(I.Differentiate(c).Integrate(c)), approx)
		}
	}
}

func TestDefiniteIntegral(t *testing.T) {
	// 1 + x + x^2*y over x in [-1, 1]
	p := fromTerms(terms{"": 1, "x": 1, "xxy": 1})
	diff(t, terms{"": 2, "y": 2. / 3}, termsOf(p.DefiniteIntegral('x', -1, 1)), approx)
	// Integral over an empty interval is zero
	if !p.DefiniteIntegral('x', 0.5, 0.5).IsZero() {
		t.Error("expected zero integral over an empty interval")
	}
}
