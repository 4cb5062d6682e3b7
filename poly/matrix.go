package poly

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/notargets/symfem/utils"
)

// Matrix is a rectangular array of polynomials, indexed [row][col].
type Matrix [][]Polynomial

// NewMatrix builds a matrix from rows, which must be non-empty and of equal
// length.
func NewMatrix(rows ...[]Polynomial) (M Matrix, err error) {
	M = Matrix(rows)
	if err = M.validate(); err != nil {
		return nil, polyErrorf("NewMatrix", err)
	}
	return
}

// NewRowVector and NewColVector wrap a polynomial vector as a 1xN or Nx1
// matrix.
func NewRowVector(ps ...Polynomial) Matrix { return Matrix{ps} }

func NewColVector(ps ...Polynomial) (M Matrix) {
	M = make(Matrix, len(ps))
	for i, p := range ps {
		M[i] = []Polynomial{p}
	}
	return
}

func (M Matrix) validate() error {
	if len(M) == 0 || len(M[0]) == 0 {
		return fmt.Errorf("empty matrix: %w", ErrDimensionMismatch)
	}
	nc := len(M[0])
	for i, row := range M {
		if len(row) != nc {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), nc, ErrDimensionMismatch)
		}
	}
	return nil
}

// Dims returns the row and column counts, taken from the first row.
func (M Matrix) Dims() (nr, nc int) {
	nr = len(M)
	if nr != 0 {
		nc = len(M[0])
	}
	return
}

func (M Matrix) Row(i int) []Polynomial {
	row := make([]Polynomial, len(M[i]))
	copy(row, M[i])
	return row
}

func (M Matrix) Col(j int) []Polynomial {
	col := make([]Polynomial, len(M))
	for i := range M {
		col[i] = M[i][j]
	}
	return col
}

func (M Matrix) Transpose() (R Matrix) {
	_, nc := M.Dims()
	R = make(Matrix, nc)
	for j := 0; j < nc; j++ {
		R[j] = M.Col(j)
	}
	return
}

// Apply returns a new matrix with f applied to every entry.
func (M Matrix) Apply(f func(Polynomial) Polynomial) (R Matrix) {
	R = make(Matrix, len(M))
	for i, row := range M {
		R[i] = make([]Polynomial, len(row))
		for j, p := range row {
			R[i][j] = f(p)
		}
	}
	return
}

func (M Matrix) Differentiate(c rune) Matrix {
	return M.Apply(func(p Polynomial) Polynomial { return p.Differentiate(c) })
}

func (M Matrix) Integrate(c rune) Matrix {
	return M.Apply(func(p Polynomial) Polynomial { return p.Integrate(c) })
}

func (M Matrix) Scale(a float64) Matrix {
	return M.Apply(func(p Polynomial) Polynomial { return p.Scale(a) })
}

// Add sums two matrices of equal shape entry by entry.
func (M Matrix) Add(A Matrix) (R Matrix, err error) {
	var (
		nrM, ncM = M.Dims()
		nrA, ncA = A.Dims()
	)
	if nrM != nrA || ncM != ncA {
		err = polyErrorf("Add", fmt.Errorf("%dx%d + %dx%d: %w", nrM, ncM, nrA, ncA, ErrDimensionMismatch))
		return
	}
	R = make(Matrix, nrM)
	for i := range M {
		R[i] = make([]Polynomial, ncM)
		for j := range M[i] {
			R[i][j] = M[i][j].Add(A[i][j])
		}
	}
	return
}

// MultMat is the matrix product A*B with every entry formed by Inner of a row
// of A and a column of B.
func MultMat(A, B Matrix) (R Matrix, err error) {
	for _, M := range []Matrix{A, B} {
		if err = M.validate(); err != nil {
			return nil, polyErrorf("MultMat", err)
		}
	}
	var (
		nrA, ncA = A.Dims()
		nrB, ncB = B.Dims()
	)
	if ncA != nrB {
		err = polyErrorf("MultMat", fmt.Errorf("%dx%d * %dx%d: %w", nrA, ncA, nrB, ncB, ErrDimensionMismatch))
		return
	}
	cols := make([][]Polynomial, ncB)
	for j := range cols {
		cols[j] = B.Col(j)
	}
	R = make(Matrix, nrA)
	for i := range R {
		R[i] = make([]Polynomial, ncB)
		for j := range cols {
			if R[i][j], err = Inner(A[i], cols[j]); err != nil {
				return nil, polyErrorf("MultMat", err)
			}
		}
	}
	return
}

// EvaluateMat evaluates every entry at pt into a numeric matrix of the same
// shape. Rows are split across goroutines; the errors of all failing entries
// are combined.
func EvaluateMat(M Matrix, pt Point, opts ...EvalOption) (R utils.Matrix, err error) {
	if err = M.validate(); err != nil {
		err = polyErrorf("EvaluateMat", err)
		return
	}
	var (
		o      = gatherOptions(opts)
		nr, nc = M.Dims()
	)
	if o.parallelDegree == 0 {
		o.parallelDegree = utils.DefaultParallelDegree(nr)
	}
	R = utils.NewMatrix(nr, nc)
	pm := utils.NewPartitionMap(o.parallelDegree, nr)
	err = pm.Run(func(bn, kMin, kMax int) (err error) {
		row := make([]float64, nc)
		for i := kMin; i < kMax; i++ {
			for j := 0; j < nc; j++ {
				var rowErr error
				if row[j], rowErr = M[i][j].Evaluate(pt, opts...); rowErr != nil {
					err = multierr.Append(err, fmt.Errorf("entry (%d,%d): %w", i, j, rowErr))
				}
			}
			// Workers own disjoint rows of R.
			R.SetRow(i, row)
		}
		return
	})
	if err != nil {
		err = polyErrorf("EvaluateMat", err)
		R = utils.Matrix{}
	}
	return
}
