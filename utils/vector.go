package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum dense vector, exposing the raw backing slice as DataP.
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	var V *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		V = mat.NewVecDense(n, dataO[0])
	} else {
		V = mat.NewVecDense(n, make([]float64, n))
	}
	v = Vector{V: V, DataP: V.RawVector().Data}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }

func (v Vector) Min() (min float64) {
	for i, val := range v.DataP {
		if i == 0 || val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	for i, val := range v.DataP {
		if i == 0 || val > max {
			max = val
		}
	}
	return
}
