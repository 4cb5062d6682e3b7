package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector is the dense numeric vector that symbolic results are evaluated into.
type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) (R Vector) {
	var (
		data = make([]float64, N)
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0]))
			panic(err)
		}
		copy(data, dataO[0])
	}
	R = Vector{mat.NewVecDense(N, data)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// Data returns a copy of the vector contents.
func (v Vector) Data() (r []float64) {
	r = make([]float64, v.Len())
	copy(r, v.V.RawVector().Data)
	return
}

func (v Vector) Copy() Vector { return NewVector(v.Len(), v.Data()) }

// Add, ElMul, Negate and Scale do not change the receiver.
func (v Vector) Add(a Vector) (R Vector, err error) {
	if err = sameLen("Add", v, a); err != nil {
		return
	}
	R = NewVector(v.Len())
	R.V.AddVec(v.V, a.V)
	return
}

func (v Vector) ElMul(a Vector) (R Vector, err error) {
	if err = sameLen("ElMul", v, a); err != nil {
		return
	}
	R = NewVector(v.Len())
	R.V.MulElemVec(v.V, a.V)
	return
}

func (v Vector) Scale(a float64) (R Vector) {
	R = NewVector(v.Len())
	R.V.ScaleVec(a, v.V)
	return
}

func (v Vector) Negate() Vector { return v.Scale(-1) }

func (v Vector) Dot(a Vector) (d float64, err error) {
	if err = sameLen("Dot", v, a); err != nil {
		return
	}
	d = mat.Dot(v.V, a.V)
	return
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector { // Changes receiver
	return v.Apply(func(x float64) float64 { return POW(x, p) })
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func sameLen(op string, a, b Vector) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%s: %d != %d: %w", op, a.Len(), b.Len(), ErrDimensionMismatch)
	}
	return nil
}
