package poly

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-12)

// terms is shorthand for a literal term map in tests.
type terms map[Key]float64

func fromTerms(m terms) Polynomial { return FromMap(map[Key]float64(m)) }

func termsOf(p Polynomial) terms { return terms(p.Map()) }

func randomPolynomial(rng *rand.Rand, vars string, maxTerms, maxDegree int) Polynomial {
	var ts []Term
	n := 1 + rng.Intn(maxTerms)
	for i := 0; i < n; i++ {
		var k []byte
		d := rng.Intn(maxDegree + 1)
		for j := 0; j < d; j++ {
			k = append(k, vars[rng.Intn(len(vars))])
		}
		ts = append(ts, Term{Key(k), float64(rng.Intn(21) - 10)})
	}
	return New(ts...)
}
