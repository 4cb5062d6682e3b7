package poly

import (
	"sort"
	"strconv"
	"strings"
)

// Key encodes a monomial as an ordered sequence of single-rune variable
// identifiers, where repetition is the exponent: "xxy" is x²y and "" is the
// constant monomial. Keys are not canonicalized, "xy" and "yx" are distinct
// map keys for the same monomial. Every operation in this package builds keys
// by a fixed concatenation rule; use Canonical to sort identifiers explicitly.
type Key string

// Occurrences returns the number of times c appears in k, as a float64 ready
// to be used as a coefficient factor.
func Occurrences(c rune, k Key) float64 {
	return float64(strings.Count(string(k), string(c)))
}

// Contains reports whether c appears in k.
func (k Key) Contains(c rune) bool { return strings.ContainsRune(string(k), c) }

// Without removes the first occurrence of c from k.
func (k Key) Without(c rune) Key {
	return Key(strings.Replace(string(k), string(c), "", 1))
}

// WithoutAll removes every occurrence of each rune in set, keeping the
// relative order of the remaining identifiers.
func (k Key) WithoutAll(set map[rune]bool) Key {
	var b strings.Builder
	for _, r := range string(k) {
		if !set[r] {
			b.WriteRune(r)
		}
	}
	return Key(b.String())
}

// Prepend returns c followed by k.
func (k Key) Prepend(c rune) Key { return Key(string(c)) + k }

// Degree is the total degree of the monomial.
func (k Key) Degree() int { return len([]rune(string(k))) }

// Canonical returns k with its identifiers sorted.
func (k Key) Canonical() Key {
	r := []rune(string(k))
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return Key(string(r))
}

// String renders the monomial as a product, runs of the same identifier
// collapsed into a power: "xxy" -> "x^2*y", "" -> "1".
func (k Key) String() string {
	var (
		r     = []rune(string(k))
		parts []string
	)
	if len(r) == 0 {
		return "1"
	}
	for i := 0; i < len(r); {
		j := i
		for j < len(r) && r[j] == r[i] {
			j++
		}
		if n := j - i; n > 1 {
			parts = append(parts, string(r[i])+"^"+strconv.Itoa(n))
		} else {
			parts = append(parts, string(r[i]))
		}
		i = j
	}
	return strings.Join(parts, "*")
}

// keyLess orders keys by degree, then lexically.
func keyLess(a, b Key) bool {
	da, db := a.Degree(), b.Degree()
	if da != db {
		return da < db
	}
	return a < b
}
