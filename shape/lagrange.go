package shape

import (
	"github.com/notargets/symfem/poly"
)

// Lagrange1D is the 1D Lagrange polynomial in c that is 1 at nodes[i] and 0
// at every other node.
func Lagrange1D(nodes []float64, i int, c rune) (L poly.Polynomial) {
	L = poly.Constant(1)
	xi := nodes[i]
	for j, xj := range nodes {
		if j == i {
			continue
		}
		factor := poly.Var(c).Subtract(poly.Constant(xj)).Scale(1 / (xi - xj))
		L = L.Mult(factor)
	}
	return
}

// distinct returns the distinct values of column d of nodes, in first
// appearance order.
func distinct(nodes [][]float64, d int) (vals []float64) {
	seen := make(map[float64]bool)
	for _, n := range nodes {
		if !seen[n[d]] {
			seen[n[d]] = true
			vals = append(vals, n[d])
		}
	}
	return
}

func indexOf(vals []float64, v float64) int {
	for i, x := range vals {
		if x == v {
			return i
		}
	}
	return -1
}

func lagrangeLine(nodes [][]float64) (N []poly.Polynomial) {
	rn := distinct(nodes, 0)
	for _, node := range nodes {
		N = append(N, Lagrange1D(rn, indexOf(rn, node[0]), R))
	}
	return
}

// lagrangeQuad builds tensor product shape functions over the distinct r and
// s node coordinates.
func lagrangeQuad(nodes [][]float64) (N []poly.Polynomial) {
	var (
		rn = distinct(nodes, 0)
		sn = distinct(nodes, 1)
	)
	for _, node := range nodes {
		Lr := Lagrange1D(rn, indexOf(rn, node[0]), R)
		Ls := Lagrange1D(sn, indexOf(sn, node[1]), S)
		N = append(N, Lr.Mult(Ls))
	}
	return
}

// barycentric returns L1 = 1-r-s, L2 = r, L3 = s.
func barycentric() [3]poly.Polynomial {
	return [3]poly.Polynomial{
		poly.Constant(1).Subtract(poly.Var(R)).Subtract(poly.Var(S)),
		poly.Var(R),
		poly.Var(S),
	}
}

func linearTriangle() []poly.Polynomial {
	L := barycentric()
	return L[:]
}

func quadraticTriangle() (N []poly.Polynomial) {
	L := barycentric()
	// Corners: L(2L-1)
	for i := 0; i < 3; i++ {
		N = append(N, L[i].Mult(L[i].Scale(2).Subtract(poly.Constant(1))))
	}
	// Edge midpoints 01, 12, 20: 4 Li Lj
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		N = append(N, L[i].Mult(L[j]).Scale(4))
	}
	return
}
