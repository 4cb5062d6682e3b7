// Package poly is an exact symbolic algebra of multivariate polynomials with
// real coefficients, sized for finite-element shape functions. A Polynomial is
// an immutable mapping from monomial Key to coefficient; every operation
// returns a new value.
package poly

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Term is one (monomial, coefficient) pair of an association list.
type Term struct {
	Key   Key
	Coeff float64
}

// Polynomial is a mapping from monomial Key to coefficient. The zero value is
// the zero polynomial. Coefficients of exactly 0 are kept unless Prune is
// called.
type Polynomial struct {
	terms map[Key]float64
}

// New builds a polynomial from an association list. When a key is repeated
// the last pair wins; earlier pairs are discarded, not summed. Coefficients
// are not validated, NaN and Inf pass through.
func New(terms ...Term) Polynomial {
	m := make(map[Key]float64, len(terms))
	for _, t := range terms {
		m[t.Key] = t.Coeff
	}
	return Polynomial{terms: m}
}

// FromMap copies m into a new polynomial.
func FromMap(m map[Key]float64) Polynomial {
	c := make(map[Key]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return Polynomial{terms: c}
}

// Constant is the polynomial v.
func Constant(v float64) Polynomial { return New(Term{"", v}) }

// Var is the polynomial consisting of the single variable c.
func Var(c rune) Polynomial { return New(Term{Key(string(c)), 1}) }

// Coeff returns the coefficient stored under k, and whether k is present.
func (p Polynomial) Coeff(k Key) (c float64, ok bool) {
	c, ok = p.terms[k]
	return
}

// Len is the number of stored terms, explicit zeros included.
func (p Polynomial) Len() int { return len(p.terms) }

// Map returns a copy of the term mapping.
func (p Polynomial) Map() map[Key]float64 {
	m := make(map[Key]float64, len(p.terms))
	for k, v := range p.terms {
		m[k] = v
	}
	return m
}

// Terms returns the terms ordered by degree, then key.
func (p Polynomial) Terms() (terms []Term) {
	terms = make([]Term, 0, len(p.terms))
	for _, k := range p.keys() {
		terms = append(terms, Term{k, p.terms[k]})
	}
	return
}

func (p Polynomial) keys() (keys []Key) {
	keys = make([]Key, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return
}

// Variables returns the sorted, de-duplicated identifiers used in any key.
func (p Polynomial) Variables() (vars []rune) {
	seen := make(map[rune]bool)
	for k := range p.terms {
		for _, r := range string(k) {
			if !seen[r] {
				seen[r] = true
				vars = append(vars, r)
			}
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return
}

// Degree is the largest key degree, -1 for a polynomial without terms.
func (p Polynomial) Degree() (d int) {
	d = -1
	for k := range p.terms {
		if kd := k.Degree(); kd > d {
			d = kd
		}
	}
	return
}

// IsZero reports whether p has no terms or only exactly-zero coefficients.
func (p Polynomial) IsZero() bool {
	for _, v := range p.terms {
		if v != 0 {
			return false
		}
	}
	return true
}

// Prune drops the terms whose coefficient is exactly zero.
func (p Polynomial) Prune() Polynomial {
	m := make(map[Key]float64, len(p.terms))
	for k, v := range p.terms {
		if v != 0 {
			m[k] = v
		}
	}
	return Polynomial{terms: m}
}

// Canonical re-keys every term with its identifiers sorted, summing terms
// that name the same monomial in a different order ("xy" and "yx").
func (p Polynomial) Canonical() Polynomial {
	acc := newAccumulator(len(p.terms))
	for k, v := range p.terms {
		acc.push(k.Canonical(), v)
	}
	return acc.polynomial()
}

// Equal compares term by term within tol, a key missing on one side counting
// as a zero coefficient. Keys are compared literally, not canonically.
func (p Polynomial) Equal(q Polynomial, tol float64) bool {
	for k, v := range p.terms {
		if math.Abs(v-q.terms[k]) > tol {
			return false
		}
	}
	for k, v := range q.terms {
		if _, ok := p.terms[k]; ok {
			continue
		}
		if math.Abs(v) > tol {
			return false
		}
	}
	return true
}

func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var parts []string
	for _, t := range p.Terms() {
		c := strconv.FormatFloat(t.Coeff, 'g', -1, 64)
		if t.Key == "" {
			parts = append(parts, c)
		} else {
			parts = append(parts, c+"*"+t.Key.String())
		}
	}
	return strings.Join(parts, " + ")
}

// accumulator collects terms, combining a new coefficient with any existing
// one under the same key by addition.
type accumulator map[Key]float64

func newAccumulator(n int) accumulator { return make(accumulator, n) }

func (a accumulator) push(k Key, c float64) {
	if old, ok := a[k]; ok {
		a[k] = old + c
		return
	}
	a[k] = c
}

func (a accumulator) polynomial() Polynomial { return Polynomial{terms: map[Key]float64(a)} }
