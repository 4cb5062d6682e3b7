package poly

// Pow returns p multiplied by itself n times; Pow(0) is the constant 1.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic("poly: negative power")
	}
	r := Constant(1)
	for i := 0; i < n; i++ {
		r = r.Mult(p)
	}
	return r
}

// Compose substitutes the polynomial q for every occurrence of c in p. The
// remaining identifiers of each term come first in the product keys, followed
// by those of q.
func (p Polynomial) Compose(c rune, q Polynomial) Polynomial {
	var (
		acc    = newAccumulator(len(p.terms))
		powers = map[int]Polynomial{}
		strip  = map[rune]bool{c: true}
	)
	for k, v := range p.terms {
		n := int(Occurrences(c, k))
		qn, ok := powers[n]
		if !ok {
			qn = q.Pow(n)
			powers[n] = qn
		}
		base := New(Term{k.WithoutAll(strip), v})
		for kk, vv := range base.Mult(qn).terms {
			acc.push(kk, vv)
		}
	}
	return acc.polynomial()
}
