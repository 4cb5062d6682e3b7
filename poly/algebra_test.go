package poly

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubtract(t *testing.T) {
	p := fromTerms(terms{"": 1, "x": 2})
	q := fromTerms(terms{"x": 3, "y": 4})
	diff(t, terms{"": 1, "x": 5, "y": 4}, termsOf(p.Add(q)))
	diff(t, terms{"": 1, "x": -1, "y": -4}, termsOf(p.Subtract(q)))
	diff(t, terms{"": -1, "x": -2}, termsOf(p.Negate()))
	diff(t, terms{"": 0.5, "x": 1}, termsOf(p.Scale(0.5)))
	// Operands are not modified
	diff(t, terms{"": 1, "x": 2}, termsOf(p))
}

func TestAlgebra_Properties(t *testing.T) {
	var zero Polynomial
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		p := randomPolynomial(rng, "xy", 5, 3)
		q := randomPolynomial(rng, "xy", 5, 3)
		diff(t, termsOf(p.Add(q)), termsOf(q.Add(p)))
		diff(t, termsOf(p), termsOf(p.Add(zero)))
		s := p.Subtract(p)
		assert.Equal(t, p.Len(), s.Len())
		for _, term := range s.Terms() {
			assert.Equal(t, 0., term.Coeff)
		}
		// Multiplication commutes once keys are canonical
		diff(t, termsOf(p.Mult(q).Canonical()), termsOf(q.Mult(p).Canonical()), approx)
	}
}

func TestMult(t *testing.T) {
	p := fromTerms(terms{"": 1, "x": 2, "y": 3})
	q := fromTerms(terms{"x": 2, "xy": 4})
	diff(t, terms{"x": 2, "xx": 4, "xxy": 8, "xy": 4, "yx": 6, "yxy": 12}, termsOf(p.Mult(q)))
	{ // Shared product keys are summed: (1 + x)(1 + x)
		a := fromTerms(terms{"": 1, "x": 1})
		diff(t, terms{"": 1, "x": 2, "xx": 1}, termsOf(a.Mult(a)))
	}
	{ // Zero coefficients survive
		a := fromTerms(terms{"": 0})
		diff(t, terms{"x": 0}, termsOf(a.Mult(Var('x'))))
	}
}

func TestInner(t *testing.T) {
	{
		r, err := Inner([]Polynomial{Var('x'), Var('y')}, []Polynomial{Var('y'), Var('x')})
		require.NoError(t, err)
		diff(t, terms{"xy": 1, "yx": 1}, termsOf(r))
		diff(t, terms{"xy": 2}, termsOf(r.Canonical()))
	}
	{ // Positionwise, not a cross product
		r, err := Inner([]Polynomial{Constant(2), Var('x')}, []Polynomial{Constant(3), Var('x')})
		require.NoError(t, err)
		diff(t, terms{"": 6, "xx": 1}, termsOf(r))
	}
	{
		r, err := Inner(nil, nil)
		require.NoError(t, err)
		assert.True(t, r.IsZero())
	}
	_, err := Inner([]Polynomial{Var('x')}, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
