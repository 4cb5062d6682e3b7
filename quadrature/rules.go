package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/symfem/poly"
	"github.com/notargets/symfem/utils"
)

// Rule is a set of evaluation points with their weights on a reference
// domain.
type Rule struct {
	Points  []poly.Point
	Weights []float64
}

// Measure is the sum of the weights, the length/area of the reference domain.
func (q Rule) Measure() float64 { return floats.Sum(q.Weights) }

func (q Rule) Len() int { return len(q.Weights) }

// Line is the n point Gauss-Legendre rule for variable r on [-1,1].
func Line(n int, r rune) (q Rule) {
	X, W := GaussLegendre(n)
	for i := 0; i < n; i++ {
		q.Points = append(q.Points, poly.Point{r: X.AtVec(i)})
		q.Weights = append(q.Weights, W.AtVec(i))
	}
	return
}

// Square is the n x n tensor Gauss-Legendre rule on [-1,1]^2.
func Square(n int, r, s rune) (q Rule) {
	X, W := GaussLegendre(n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			q.Points = append(q.Points, poly.Point{r: X.AtVec(i), s: X.AtVec(j)})
			q.Weights = append(q.Weights, W.AtVec(i)*W.AtVec(j))
		}
	}
	return
}

// Triangle is an n x n collapsed Gauss-Legendre rule on the reference triangle
// with vertices (0,0), (1,0), (0,1). The square (a,b) in [-1,1]^2 maps onto
// the triangle by r = (1+a)(1-b)/4, s = (1+b)/2, with Jacobian (1-b)/8.
func Triangle(n int, r, s rune) (q Rule) {
	X, W := GaussLegendre(n)
	for j := 0; j < n; j++ {
		b := X.AtVec(j)
		for i := 0; i < n; i++ {
			a := X.AtVec(i)
			q.Points = append(q.Points, poly.Point{
				r: (1 + a) * (1 - b) / 4,
				s: (1 + b) / 2,
			})
			q.Weights = append(q.Weights, W.AtVec(i)*W.AtVec(j)*(1-b)/8)
		}
	}
	return
}

// Integrate applies the rule to a single polynomial.
func (q Rule) Integrate(p poly.Polynomial, opts ...poly.EvalOption) (sum float64, err error) {
	for i, pt := range q.Points {
		var v float64
		if v, err = p.Evaluate(pt, opts...); err != nil {
			return 0, fmt.Errorf("quadrature point %d: %w", i, err)
		}
		sum += q.Weights[i] * v
	}
	return
}

// IntegrateMat evaluates M at every point of the rule and accumulates the
// weighted results into a numeric matrix.
func (q Rule) IntegrateMat(M poly.Matrix, opts ...poly.EvalOption) (R utils.Matrix, err error) {
	if q.Len() == 0 {
		err = fmt.Errorf("IntegrateMat: empty quadrature rule")
		return
	}
	for i, pt := range q.Points {
		var E utils.Matrix
		if E, err = poly.EvaluateMat(M, pt, opts...); err != nil {
			err = fmt.Errorf("quadrature point %d: %w", i, err)
			return
		}
		if i == 0 {
			R = E.Scale(q.Weights[i])
			continue
		}
		if err = R.AddScaled(q.Weights[i], E); err != nil {
			return
		}
	}
	return
}
