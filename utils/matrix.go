package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum dense matrix, exposing the raw backing slice as DataP
// for hot loops that index it directly. Row-major: element (i,j) lives at
// DataP[j+i*nc].
type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{M: m, DataP: m.RawMatrix().Data}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

// Print formats the matrix with an optional label, prints it and returns the
// formatted string.
func (m Matrix) Print(msgI ...string) (o string) {
	var (
		msg string
	)
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", msg, mat.Formatted(m.M, mat.Squeeze()))
	fmt.Print(o)
	return
}

func (m Matrix) Min() (min float64) {
	for i, val := range m.DataP {
		if i == 0 || val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	for i, val := range m.DataP {
		if i == 0 || val > max {
			max = val
		}
	}
	return
}

// ConditionNumber is the ratio of the extreme singular values, +Inf when the
// matrix is numerically rank deficient or the factorization fails.
func (m Matrix) ConditionNumber() (cond float64) {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		return math.Inf(1)
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return math.Inf(1)
	}
	// Singular values arrive in descending order
	var (
		maxVal = values[0]
		minVal = values[len(values)-1]
	)
	if minVal <= 1.e-16*maxVal {
		return math.Inf(1)
	}
	cond = maxVal / minVal
	return
}
