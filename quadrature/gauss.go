package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/symfem/utils"
)

// JacobiGQ returns the N+1 point Gauss quadrature nodes X and weights W for
// the Jacobi weight (1-x)^alpha (1+x)^beta on [-1,1], from the eigen
// decomposition of the symmetric Jacobi matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N < 0 {
		panic(fmt.Sprintf("JacobiGQ: negative order %d", N))
	}
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: -1/2*(alpha^2-beta^2)/(h1+2)/h1
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal: 2/(h1+2)*sqrt(i*(i+alpha+beta)*(i+alpha)*(i+beta)/(h1+1)/(h1+3))
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := newSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).POW(2).Apply(func(v float64) float64 {
		return v * gamma0(alpha, beta)
	})
	return X, W
}

// GaussLegendre returns the n point Gauss-Legendre rule on [-1,1], exact for
// polynomials of degree 2n-1.
func GaussLegendre(n int) (X, W utils.Vector) {
	if n < 1 {
		panic(fmt.Sprintf("GaussLegendre: need at least one point, got %d", n))
	}
	return JacobiGQ(0, 0, n-1)
}

// PointsForDegree is the smallest Gauss-Legendre point count that integrates
// a univariate polynomial of the given degree exactly.
func PointsForDegree(degree int) int {
	if degree < 0 {
		degree = 0
	}
	return degree/2 + 1
}

func newSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	N := len(d0)
	Tri = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		Tri.SetSym(i, i, d0[i])
		if i < N-1 {
			Tri.SetSym(i, i+1, d1[i])
		}
	}
	return
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
