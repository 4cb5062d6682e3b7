package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.RawMatrix().Data)
	}
	// Mul
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		B := NewMatrix(3, 1, []float64{1, 0, -1})
		C, err := A.Mul(B)
		require.NoError(t, err)
		assert.Equal(t, []float64{-2, -2}, C.RawMatrix().Data)
		_, err = A.Mul(A)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
	// MulVec
	{
		A := NewMatrix(2, 2, []float64{
			2, 0,
			1, 3,
		})
		v, err := A.MulVec(NewVector(2, []float64{1, 2}))
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 7}, v.Data())
		_, err = A.MulVec(NewVector(3))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
	// Rows round trip, Add and AddScaled
	{
		rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
		A, err := NewMatrixFromRows(rows)
		require.NoError(t, err)
		assert.Equal(t, rows, A.Rows())
		S, err := A.Add(A)
		require.NoError(t, err)
		assert.Equal(t, A.Scale(2).Rows(), S.Rows())
		acc := NewMatrix(3, 2)
		require.NoError(t, acc.AddScaled(0.5, S))
		assert.Equal(t, rows, acc.Rows())
		assert.ErrorIs(t, acc.AddScaled(1, NewMatrix(2, 2)), ErrDimensionMismatch)
		_, err = A.Add(NewMatrix(2, 3))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		assert.Equal(t, []float64{2, 4, 6}, A.Col(1).Data())
		assert.Equal(t, []float64{3, 4}, A.Row(1).Data())
	}
	// Ragged rows
	{
		_, err := NewMatrixFromRows([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
		_, err = NewMatrixFromRows(nil)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	}
	// Copy does not alias
	{
		A := NewMatrix(1, 2, []float64{1, 2})
		B := A.Copy()
		B.Set(0, 0, 9)
		assert.Equal(t, 1., A.At(0, 0))
	}
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
}
