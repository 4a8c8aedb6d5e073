package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	{ // DataP aliases the dense backing store, row major
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, 6., M.At(1, 2))
		M.Set(1, 2, -7.)
		assert.Equal(t, -7., M.DataP[2+1*3])
		M.DataP[0] = 42.
		assert.Equal(t, 42., M.At(0, 0))
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, -7., M.Min())
		assert.Equal(t, 42., M.Max())
	}
	{ // Allocation size mismatch panics
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
	{ // Condition number: identity is 1, a rank deficient matrix is +Inf
		I3 := NewMatrix(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})
		assert.InDelta(t, 1., I3.ConditionNumber(), 1.e-12)
		S := NewMatrix(2, 2, []float64{
			1, 1,
			1, 1,
		})
		assert.True(t, math.IsInf(S.ConditionNumber(), 1))
		D := NewMatrix(2, 2, []float64{
			100, 0,
			0, 0.01,
		})
		assert.InDelta(t, 1.e4, D.ConditionNumber(), 1.e-8)
	}
}

func TestVector(t *testing.T) {
	v := NewVector(4, []float64{3, -1, 4, 1.5})
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4., v.AtVec(2))
	assert.Equal(t, -1., v.Min())
	assert.Equal(t, 4., v.Max())
	v.DataP[1] = 9.
	assert.Equal(t, 9., v.AtVec(1))
	assert.Panics(t, func() { NewVector(3, []float64{1, 2}) })
}

func TestIsNan(t *testing.T) {
	assert.False(t, IsNan(1.0))
	assert.True(t, IsNan(math.NaN()))
	assert.True(t, IsNan([]float64{0, math.NaN()}))
	M := NewMatrix(2, 2)
	assert.False(t, IsNan(M))
	M.DataP[3] = math.NaN()
	assert.True(t, IsNan(M))
	assert.Panics(t, func() { IsNanPanic(M) })
	assert.NotPanics(t, func() { IsNanPanic(NewVector(2)) })
}
