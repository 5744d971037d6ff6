package sac

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const epsilon = 1e-12

// solveSym solves the n x n symmetric system a x = b.
// a is given in row-major order.
func solveSym(n int, a, b []float64) ([]float64, error) {
	var x mat.VecDense
	if err := x.SolveVec(mat.NewSymDense(n, a), mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularFit, err)
	}
	return finite(x.RawVector().Data)
}

// leastSquares solves the overdetermined system a x = b in the least squares sense.
// a is rows x cols in row-major order.
func leastSquares(rows, cols int, a, b []float64) ([]float64, error) {
	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(rows, cols, a), mat.NewVecDense(rows, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularFit, err)
	}
	return finite(x.RawVector().Data)
}

// principalAxes returns eigenvalues in ascending order and corresponding
// eigenvectors of the n x n symmetric matrix a.
func principalAxes(n int, a []float64) ([]float64, [][]float64, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, a), true); !ok {
		return nil, nil, fmt.Errorf("%w: eigen decomposition failed", ErrSingularFit)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	axes := make([][]float64, n)
	for j := 0; j < n; j++ {
		axes[j] = mat.Col(nil, j, &vecs)
	}
	return vals, axes, nil
}

func finite(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite parameter", ErrSingularFit)
		}
		out[i] = v
	}
	return out, nil
}
