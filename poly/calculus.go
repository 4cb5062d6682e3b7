package poly

// Differentiate returns the partial derivative of p with respect to c. Terms
// without c vanish; every other term is scaled by its exponent of c and loses
// the first occurrence of c from its key. Terms that land on the same key are
// summed.
func (p Polynomial) Differentiate(c rune) Polynomial {
	acc := newAccumulator(len(p.terms))
	for k, v := range p.terms {
		if !k.Contains(c) {
			continue
		}
		acc.push(k.Without(c), v*Occurrences(c, k))
	}
	return acc.polynomial()
}

// Integrate returns an antiderivative of p with respect to c, with zero
// constant of integration. Each coefficient is divided by the raised exponent
// and c is prepended to the key. Terms that land on the same key are summed.
func (p Polynomial) Integrate(c rune) Polynomial {
	acc := newAccumulator(len(p.terms))
	for k, v := range p.terms {
		acc.push(k.Prepend(c), v/(Occurrences(c, k)+1))
	}
	return acc.polynomial()
}

// DefiniteIntegral integrates p over c from a to b. The result is a
// polynomial in the remaining variables.
func (p Polynomial) DefiniteIntegral(c rune, a, b float64) Polynomial {
	F := p.Integrate(c)
	return F.EvaluatePartial(Point{c: b}).Subtract(F.EvaluatePartial(Point{c: a}))
}
