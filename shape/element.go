// Package shape builds reference finite-element shape functions as exact
// polynomials in the natural coordinates r and s, together with the
// gradient, stiffness and mass matrices derived from them.
package shape

import (
	"fmt"

	"github.com/notargets/symfem/poly"
	"github.com/notargets/symfem/quadrature"
	"github.com/notargets/symfem/utils"
)

// Natural coordinate identifiers.
const (
	R = 'r'
	S = 's'
)

type Element struct {
	Type  ElementType
	Nodes [][]float64       // Natural coordinates, one row per node
	N     []poly.Polynomial // Shape functions, N[i] is 1 at node i and 0 at the others
}

func NewElement(et ElementType) (el *Element, err error) {
	el = &Element{
		Type:  et,
		Nodes: et.GetNodes(),
	}
	switch et {
	case Line, Line3:
		el.N = lagrangeLine(el.Nodes)
	case Quad, Quad9:
		el.N = lagrangeQuad(el.Nodes)
	case Triangle:
		el.N = linearTriangle()
	case Triangle6:
		el.N = quadraticTriangle()
	default:
		return nil, fmt.Errorf("NewElement: unsupported element type %v", et)
	}
	// Shape functions are stored with sorted keys so that "rs" and "sr"
	// products from the construction are combined.
	for i := range el.N {
		el.N[i] = el.N[i].Canonical().Prune()
	}
	return
}

func (el *Element) Vars() []rune {
	if el.Type.GetDimension() == 1 {
		return []rune{R}
	}
	return []rune{R, S}
}

// ShapeMatrix is the 1 x Np row of shape functions.
func (el *Element) ShapeMatrix() poly.Matrix { return poly.NewRowVector(el.N...) }

// GradientMatrix is the Dim x Np matrix of shape function derivatives,
// row d holding the derivatives with respect to the d-th natural coordinate.
func (el *Element) GradientMatrix() (B poly.Matrix) {
	N := el.ShapeMatrix()
	for _, c := range el.Vars() {
		B = append(B, N.Differentiate(c)[0])
	}
	return
}

// StiffnessIntegrand is B^T B, the symbolic integrand of the Laplace
// stiffness matrix on the reference element.
func (el *Element) StiffnessIntegrand() (poly.Matrix, error) {
	B := el.GradientMatrix()
	return poly.MultMat(B.Transpose(), B)
}

// MassIntegrand is N^T N.
func (el *Element) MassIntegrand() (poly.Matrix, error) {
	N := el.ShapeMatrix()
	return poly.MultMat(N.Transpose(), N)
}

func (el *Element) StiffnessMatrix() (K utils.Matrix, err error) {
	var M poly.Matrix
	if M, err = el.StiffnessIntegrand(); err != nil {
		return
	}
	return el.IntegrateExact(M)
}

func (el *Element) MassMatrix() (Ms utils.Matrix, err error) {
	var M poly.Matrix
	if M, err = el.MassIntegrand(); err != nil {
		return
	}
	return el.IntegrateExact(M)
}

// IntegrateExact integrates every entry of M symbolically over the reference
// domain and evaluates the resulting constants.
func (el *Element) IntegrateExact(M poly.Matrix) (A utils.Matrix, err error) {
	domain := el.Type.GetDomain()
	I := M.Apply(func(p poly.Polynomial) poly.Polynomial { return integrateDomain(p, domain) })
	// Anything other than r and s left over is unbound and fails here.
	if A, err = poly.EvaluateMat(I, poly.Point{}, poly.WithStrict()); err != nil {
		err = fmt.Errorf("IntegrateExact %v: %w", el.Type, err)
	}
	return
}

func integrateDomain(p poly.Polynomial, domain Domain) poly.Polynomial {
	switch domain {
	case Square:
		return p.DefiniteIntegral(R, -1, 1).DefiniteIntegral(S, -1, 1)
	case Simplex:
		// r from 0 to 1-s, then s from 0 to 1
		F := p.Integrate(R)
		upper := poly.Constant(1).Subtract(poly.Var(S))
		G := F.Compose(R, upper).Subtract(F.EvaluatePartial(poly.Point{R: 0}))
		return G.DefiniteIntegral(S, 0, 1)
	default:
		return p.DefiniteIntegral(R, -1, 1)
	}
}

// Rule returns an n point per direction Gauss rule on the reference domain.
func (el *Element) Rule(n int) quadrature.Rule {
	switch el.Type.GetDomain() {
	case Square:
		return quadrature.Square(n, R, S)
	case Simplex:
		return quadrature.Triangle(n, R, S)
	default:
		return quadrature.Line(n, R)
	}
}

// IntegrateQuadrature integrates M numerically with a rule just large enough
// to be exact for the highest degree entry.
func (el *Element) IntegrateQuadrature(M poly.Matrix) (A utils.Matrix, err error) {
	var degree int
	for _, row := range M {
		for _, p := range row {
			if d := p.Degree(); d > degree {
				degree = d
			}
		}
	}
	if el.Type.GetDomain() == Simplex {
		// Collapsed coordinates add one to the degree in the second direction.
		degree++
	}
	return el.Rule(quadrature.PointsForDegree(degree)).IntegrateMat(M, poly.WithStrict())
}

// NodePoint returns the natural coordinates of node i as an evaluation point.
func (el *Element) NodePoint(i int) (pt poly.Point) {
	pt = poly.Point{}
	for d, c := range el.Vars() {
		pt[c] = el.Nodes[i][d]
	}
	return
}

// Interpolate evaluates sum_i u_i N_i at pt.
func (el *Element) Interpolate(u []float64, pt poly.Point) (val float64, err error) {
	if len(u) != len(el.N) {
		err = fmt.Errorf("Interpolate: %d nodal values for %d nodes: %w", len(u), len(el.N), poly.ErrDimensionMismatch)
		return
	}
	var (
		U = make([]poly.Polynomial, len(u))
	)
	for i, v := range u {
		U[i] = poly.Constant(v)
	}
	var p poly.Polynomial
	if p, err = poly.Inner(U, el.N); err != nil {
		return
	}
	return p.Evaluate(pt, poly.WithStrict())
}
