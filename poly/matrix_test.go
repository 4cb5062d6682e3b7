package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_Construction(t *testing.T) {
	{
		M, err := NewMatrix(
			[]Polynomial{Constant(1), Var('x')},
			[]Polynomial{Var('y'), Constant(0)},
		)
		require.NoError(t, err)
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 2, nc)
		T := M.Transpose()
		diff(t, terms{"y": 1}, termsOf(T[0][1]))
		diff(t, terms{"x": 1}, termsOf(T[1][0]))
	}
	{
		_, err := NewMatrix([]Polynomial{Var('x')}, []Polynomial{})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = NewMatrix()
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
	{
		R := NewRowVector(Var('x'), Var('y'))
		C := NewColVector(Var('x'), Var('y'))
		nr, nc := R.Dims()
		assert.Equal(t, [2]int{1, 2}, [2]int{nr, nc})
		nr, nc = C.Dims()
		assert.Equal(t, [2]int{2, 1}, [2]int{nr, nc})
	}
}

func TestMultMat(t *testing.T) {
	A, err := NewMatrix(
		[]Polynomial{Constant(1), Var('x')},
		[]Polynomial{Var('y'), Constant(0)},
	)
	require.NoError(t, err)
	B := NewColVector(Var('x'), Constant(1))
	R, err := MultMat(A, B)
	require.NoError(t, err)
	nr, nc := R.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 1, nc)
	diff(t, terms{"x": 2}, termsOf(R[0][0]))
	// 0*1 stays as an explicit zero term
	diff(t, terms{"yx": 1, "": 0}, termsOf(R[1][0]))
	{ // Row times column gives a 1x1
		S, err := MultMat(NewRowVector(Var('x'), Var('y')), NewColVector(Var('x'), Var('y')))
		require.NoError(t, err)
		diff(t, terms{"xx": 1, "yy": 1}, termsOf(S[0][0]))
	}
	{ // Incompatible shapes are rejected, never truncated
		_, err := MultMat(A, NewRowVector(Var('x'), Var('y')))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = MultMat(B, B)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = MultMat(Matrix{{Var('x')}, {}}, B)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
}

func TestMatrix_Elementwise(t *testing.T) {
	N := NewRowVector(fromTerms(terms{"": 1, "x": -1}), Var('x'))
	dN := N.Differentiate('x')
	diff(t, terms{"": -1}, termsOf(dN[0][0]))
	diff(t, terms{"": 1}, termsOf(dN[0][1]))
	I := N.Integrate('x')
	diff(t, terms{"x": 1, "xx": -0.5}, termsOf(I[0][0]))
	S := N.Scale(2)
	diff(t, terms{"x": 2}, termsOf(S[0][1]))
	sum, err := N.Add(S)
	require.NoError(t, err)
	diff(t, terms{"x": 3}, termsOf(sum[0][1]))
	_, err = N.Add(NewColVector(Var('x')))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	// Row and Col return copies
	row := N.Row(0)
	row[0] = Constant(7)
	diff(t, terms{"": 1, "x": -1}, termsOf(N[0][0]))
	assert.Len(t, N.Col(1), 1)
}

func TestEvaluateMat(t *testing.T) {
	p := fromTerms(terms{"": 1, "x": 2, "y": 3, "xy": 4, "xxy": 5})
	M := make(Matrix, 5)
	for i := range M {
		M[i] = []Polynomial{p.Scale(float64(i)), p.Differentiate('x')}
	}
	pt := Point{'x': 2, 'y': 1}
	R1, err := EvaluateMat(M, pt, WithParallelDegree(1))
	require.NoError(t, err)
	R3, err := EvaluateMat(M, pt, WithParallelDegree(3))
	require.NoError(t, err)
	R, err := EvaluateMat(M, pt)
	require.NoError(t, err)
	nr, nc := R.Dims()
	assert.Equal(t, 5, nr)
	assert.Equal(t, 2, nc)
	for i := 0; i < nr; i++ {
		assert.Equal(t, 36.*float64(i), R.At(i, 0))
		// d/dx = 2 + 4y + 10xy
		assert.Equal(t, 26., R.At(i, 1))
	}
	assert.Equal(t, R.Rows(), R1.Rows())
	assert.Equal(t, R.Rows(), R3.Rows())
	{ // Strict evaluation reports the failing entries
		_, err := EvaluateMat(M, Point{'x': 2}, WithStrict())
		assert.ErrorIs(t, err, ErrUnboundVariable)
		assert.Contains(t, err.Error(), "entry (4,1)")
	}
	{
		_, err := EvaluateMat(Matrix{}, pt)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
}
