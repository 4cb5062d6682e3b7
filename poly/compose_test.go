package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	a := fromTerms(terms{"": 1, "x": 1})
	diff(t, terms{"": 1}, termsOf(a.Pow(0)))
	diff(t, terms{"": 1, "x": 3, "xx": 3, "xxx": 1}, termsOf(a.Pow(3)))
	assert.Panics(t, func() { a.Pow(-1) })
}

func TestCompose(t *testing.T) {
	// p = 2 + x^2 y, x -> 1 - y
	p := fromTerms(terms{"": 2, "xxy": 1})
	q := fromTerms(terms{"": 1, "y": -1})
	r := p.Compose('x', q)
	diff(t, terms{"": 2, "y": 1, "yy": -2, "yyy": 1}, termsOf(r))
	for _, y := range []float64{-1, 0, 0.25, 3} {
		x := 1 - y
		want, err := p.Evaluate(Point{'x': x, 'y': y}, WithStrict())
		require.NoError(t, err)
		got, err := r.Evaluate(Point{'y': y}, WithStrict())
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
	// Substituting a constant is partial evaluation
	diff(t, termsOf(p.EvaluatePartial(Point{'x': 3})), termsOf(p.Compose('x', Constant(3))))
}
