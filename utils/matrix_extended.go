package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is the dense numeric matrix that polynomial matrices are evaluated
// into. Storage is the row-major gonum layout.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var (
		data = make([]float64, nr*nc)
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		copy(data, dataO[0])
	}
	R = Matrix{mat.NewDense(nr, nc, data)}
	return
}

// NewMatrixFromRows builds a matrix from nested rows, which must all have the
// same length.
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr == 0 {
		err = fmt.Errorf("NewMatrixFromRows: no rows: %w", ErrDimensionMismatch)
		return
	}
	nc = len(rows[0])
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("NewMatrixFromRows: row %d has %d columns, want %d: %w",
				i, len(row), nc, ErrDimensionMismatch)
			return
		}
		data = append(data, row...)
	}
	R = NewMatrix(nr, nc, data)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.Copy(m.M)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
	)
	R = NewMatrix(nc, nr)
	dataR := R.M.RawMatrix().Data
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataR[j*nr+i] = data[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix, err error) { // Does not change receiver
	var (
		nrM, ncM = m.Dims()
		nrA, ncA = A.Dims()
	)
	if ncM != nrA {
		err = fmt.Errorf("Mul: %dx%d * %dx%d: %w", nrM, ncM, nrA, ncA, ErrDimensionMismatch)
		return
	}
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) MulVec(v Vector) (R Vector, err error) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	if nc != v.Len() {
		err = fmt.Errorf("MulVec: %dx%d * %d: %w", nr, nc, v.Len(), ErrDimensionMismatch)
		return
	}
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Add(A Matrix) (R Matrix, err error) { // Does not change receiver
	var (
		nrM, ncM = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nrM != nrA || ncM != ncA {
		err = fmt.Errorf("Add: %dx%d + %dx%d: %w", nrM, ncM, nrA, ncA, ErrDimensionMismatch)
		return
	}
	R = NewMatrix(nrM, ncM)
	R.M.Add(m.M, A.M)
	return
}

// AddScaled accumulates a*A into the receiver, the quadrature update.
func (m Matrix) AddScaled(a float64, A Matrix) (err error) { // Changes receiver
	var (
		nrM, ncM = m.Dims()
		nrA, ncA = A.Dims()
		dataM    = m.M.RawMatrix().Data
		dataA    = A.M.RawMatrix().Data
	)
	if nrM != nrA || ncM != ncA {
		return fmt.Errorf("AddScaled: %dx%d + %dx%d: %w", nrM, ncM, nrA, ncA, ErrDimensionMismatch)
	}
	for i, val := range dataA {
		dataM[i] += a * val
	}
	return
}

func (m Matrix) Scale(a float64) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.Scale(a, m.M)
	return
}

func (m Matrix) Row(i int) Vector {
	var (
		_, nc = m.Dims()
	)
	return NewVector(nc, m.M.RawRowView(i))
}

func (m Matrix) Col(j int) Vector {
	var (
		nr, _ = m.Dims()
	)
	return NewVector(nr, mat.Col(nil, j, m.M))
}

// Rows returns the contents as freshly allocated nested rows.
func (m Matrix) Rows() (rows [][]float64) {
	var (
		nr, _ = m.Dims()
	)
	rows = make([][]float64, nr)
	for i := range rows {
		rows[i] = m.Row(i).Data()
	}
	return
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}
