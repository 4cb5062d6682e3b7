package poly

import (
	"fmt"

	"github.com/notargets/symfem/utils"
)

// Point assigns numeric values to a subset of variable identifiers.
type Point map[rune]float64

// UnboundPolicy selects what Evaluate does with a variable the point does not
// bind.
type UnboundPolicy uint8

const (
	// UnboundAsOne substitutes 1 for every unbound variable.
	UnboundAsOne UnboundPolicy = iota
	// UnboundIsError fails with ErrUnboundVariable.
	UnboundIsError
)

func (u UnboundPolicy) String() string {
	switch u {
	case UnboundAsOne:
		return "UnboundAsOne"
	case UnboundIsError:
		return "UnboundIsError"
	}
	return fmt.Sprintf("UnboundPolicy(%d)", uint8(u))
}

type evalOptions struct {
	unbound        UnboundPolicy
	parallelDegree int
}

// EvalOption configures Evaluate and EvaluateMat.
type EvalOption func(*evalOptions)

// WithStrict makes evaluation fail with ErrUnboundVariable instead of
// substituting 1 for variables missing from the point.
func WithStrict() EvalOption { return WithUnboundPolicy(UnboundIsError) }

// WithUnboundPolicy sets how Evaluate treats variables missing from the
// point. The default is UnboundAsOne.
func WithUnboundPolicy(u UnboundPolicy) EvalOption {
	return func(o *evalOptions) { o.unbound = u }
}

// WithParallelDegree sets the number of goroutines EvaluateMat splits rows
// across. Values below 1 panic.
func WithParallelDegree(n int) EvalOption {
	if n < 1 {
		panic(fmt.Sprintf("poly: parallel degree must be >= 1, got %d", n))
	}
	return func(o *evalOptions) { o.parallelDegree = n }
}

func gatherOptions(opts []EvalOption) (o evalOptions) {
	for _, opt := range opts {
		opt(&o)
	}
	return
}

// Evaluate substitutes the values of pt into p and sums the terms. Each
// variable contributes value^exponent to a term exactly once. Variables not in
// pt count as 1 unless WithStrict is given.
func (p Polynomial) Evaluate(pt Point, opts ...EvalOption) (sum float64, err error) {
	o := gatherOptions(opts)
	// Sorted keys keep the floating point summation order reproducible.
	for _, k := range p.keys() {
		var f float64
		if f, err = substitute(k, pt, o.unbound); err != nil {
			return 0, polyErrorf("Evaluate", err)
		}
		sum += p.terms[k] * f
	}
	return
}

// substitute returns the product of value^exponent over the distinct bound
// identifiers of k.
func substitute(k Key, pt Point, unbound UnboundPolicy) (f float64, err error) {
	var (
		done = make(map[rune]bool, 3)
	)
	f = 1
	for _, c := range string(k) {
		if done[c] {
			continue
		}
		done[c] = true
		x, ok := pt[c]
		if !ok {
			if unbound == UnboundIsError {
				return 0, fmt.Errorf("variable %q in term %q: %w", c, string(k), ErrUnboundVariable)
			}
			continue
		}
		f *= utils.POW(x, int(Occurrences(c, k)))
	}
	return
}

// EvaluatePartial substitutes the values of pt and returns what remains as a
// polynomial in the unbound variables. Bound identifiers are removed from
// every key, the others keep their order; terms that collapse onto the same
// key are summed.
func (p Polynomial) EvaluatePartial(pt Point) Polynomial {
	var (
		bound = make(map[rune]bool, len(pt))
		acc   = newAccumulator(len(p.terms))
	)
	for c := range pt {
		bound[c] = true
	}
	for k, v := range p.terms {
		f, _ := substitute(k, pt, UnboundAsOne)
		acc.push(k.WithoutAll(bound), v*f)
	}
	return acc.polynomial()
}
