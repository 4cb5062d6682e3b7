package poly

import "fmt"

// Add is the union of both term maps, coefficients summed on shared keys.
func (p Polynomial) Add(q Polynomial) Polynomial {
	acc := newAccumulator(len(p.terms) + len(q.terms))
	for k, v := range p.terms {
		acc.push(k, v)
	}
	for k, v := range q.terms {
		acc.push(k, v)
	}
	return acc.polynomial()
}

// Subtract is p.Add(q.Negate()).
func (p Polynomial) Subtract(q Polynomial) Polynomial { return p.Add(q.Negate()) }

// Negate maps every coefficient to its additive inverse.
func (p Polynomial) Negate() Polynomial { return p.Scale(-1) }

// Scale multiplies every coefficient by a.
func (p Polynomial) Scale(a float64) Polynomial {
	m := make(map[Key]float64, len(p.terms))
	for k, v := range p.terms {
		m[k] = a * v
	}
	return Polynomial{terms: m}
}

// Mult multiplies every term of p with every term of q. The product key is
// p's key followed by q's key, so the result depends on operand order at the
// key level ("y"*"x" gives "yx") while being equal as a polynomial. Products
// that share a key are summed.
func (p Polynomial) Mult(q Polynomial) Polynomial {
	acc := newAccumulator(len(p.terms) * len(q.terms))
	for kp, cp := range p.terms {
		for kq, cq := range q.terms {
			acc.push(kp+kq, cp*cq)
		}
	}
	return acc.polynomial()
}

// Inner is the dot product of two polynomial vectors: the positionwise
// products summed.
func Inner(ps, qs []Polynomial) (r Polynomial, err error) {
	if len(ps) != len(qs) {
		err = polyErrorf("Inner", fmt.Errorf("lengths %d and %d: %w", len(ps), len(qs), ErrDimensionMismatch))
		return
	}
	acc := newAccumulator(0)
	for i := range ps {
		for k, v := range ps[i].Mult(qs[i]).terms {
			acc.push(k, v)
		}
	}
	r = acc.polynomial()
	return
}
