package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial_Construction(t *testing.T) {
	{ // Last write wins on duplicate keys
		p := New(Term{"x", 1}, Term{"y", 2}, Term{"x", 3})
		diff(t, terms{"x": 3, "y": 2}, termsOf(p))
	}
	{ // NaN and Inf propagate
		p := New(Term{"x", math.NaN()}, Term{"", math.Inf(1)})
		c, ok := p.Coeff("x")
		assert.True(t, ok)
		assert.True(t, math.IsNaN(c))
		c, _ = p.Coeff("")
		assert.True(t, math.IsInf(c, 1))
	}
	{ // Zero value is the zero polynomial
		var p Polynomial
		assert.True(t, p.IsZero())
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, -1, p.Degree())
		assert.Equal(t, "0", p.String())
		diff(t, terms{"x": 1}, termsOf(p.Add(Var('x'))))
	}
	{ // FromMap and Map copy
		m := map[Key]float64{"x": 1}
		p := FromMap(m)
		m["x"] = 2
		c, _ := p.Coeff("x")
		assert.Equal(t, 1., c)
		p.Map()["x"] = 5
		c, _ = p.Coeff("x")
		assert.Equal(t, 1., c)
	}
}

func TestPolynomial_Accessors(t *testing.T) {
	p := fromTerms(terms{"": 1, "x": 2, "y": 3, "xy": 4, "xxy": 5})
	assert.Equal(t, []rune{'x', 'y'}, p.Variables())
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, []Term{{"", 1}, {"x", 2}, {"y", 3}, {"xy", 4}, {"xxy", 5}}, p.Terms())
	assert.Equal(t, "1 + 2*x + 3*y + 4*x*y + 5*x^2*y", p.String())
	assert.Equal(t, "-1*x", Var('x').Negate().String())
	assert.Empty(t, Constant(2).Variables())
}

func TestPolynomial_ZeroHandling(t *testing.T) {
	p := fromTerms(terms{"": 0, "x": 0})
	assert.True(t, p.IsZero())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 0, p.Prune().Len())
	q := fromTerms(terms{"x": 1, "y": 0})
	assert.False(t, q.IsZero())
	diff(t, terms{"x": 1}, termsOf(q.Prune()))
}

func TestPolynomial_Canonical(t *testing.T) {
	p := fromTerms(terms{"xy": 1, "yx": 2, "yxx": 3, "": 4})
	diff(t, terms{"xy": 3, "xxy": 3, "": 4}, termsOf(p.Canonical()))
	// Without canonicalization the keys stay distinct
	assert.Equal(t, 4, p.Len())
}

func TestPolynomial_Equal(t *testing.T) {
	p := fromTerms(terms{"x": 1, "y": 2})
	assert.True(t, p.Equal(fromTerms(terms{"x": 1, "y": 2, "z": 0}), 0))
	assert.True(t, p.Equal(fromTerms(terms{"x": 1 + 1e-14, "y": 2}), 1e-12))
	assert.False(t, p.Equal(fromTerms(terms{"x": 1}), 1e-12))
	assert.False(t, p.Equal(fromTerms(terms{"x": 1, "y": 2, "z": 1}), 1e-12))
	// Literal key comparison
	assert.False(t, fromTerms(terms{"xy": 1}).Equal(fromTerms(terms{"yx": 1}), 0))
}
