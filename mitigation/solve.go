package mitigation

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// svdRankFactor scales the largest singular value into the cutoff below
// which singular values are treated as zero in the pseudo-inverse.
const svdRankFactor = 1e-14

// solve finds x with M·x = v. The direct LU path runs only while the
// condition number stays under condLimit; otherwise the minimum-norm least
// squares solution is built from the SVD pseudo-inverse, which also covers
// exactly singular matrices. vData is not modified.
func solve(m *mat.Dense, vData []float64, condLimit float64) ([]float64, SolveMethod, error) {
	dim, _ := m.Dims()
	v := mat.NewVecDense(dim, vData)

	var lu mat.LU
	lu.Factorize(m)
	if cond := lu.Cond(); cond <= condLimit {
		x := mat.NewVecDense(dim, nil)
		if err := lu.SolveVecTo(x, false, v); err == nil {
			return x.RawVector().Data, SolveDirect, nil
		}
	}

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, SolveLeastSquares, ErrNumericalFailure
	}
	sv := svd.Values(nil)
	if len(sv) == 0 || sv[0] <= 0 {
		// All-zero matrix: no direction of v is recoverable.
		return nil, SolveLeastSquares, ErrNumericalFailure
	}
	tol := float64(dim) * sv[0] * svdRankFactor

	var u, rsv mat.Dense
	svd.UTo(&u)
	svd.VTo(&rsv)

	xData := make([]float64, dim)
	col := make([]float64, dim)
	rank := 0
	for i, s := range sv {
		if s <= tol {
			continue
		}
		rank++
		mat.Col(col, i, &u)
		coef := floats.Dot(col, vData) / s
		mat.Col(col, i, &rsv)
		floats.AddScaled(xData, coef, col)
	}
	if rank == 0 {
		return nil, SolveLeastSquares, ErrNumericalFailure
	}
	return xData, SolveLeastSquares, nil
}

// residualNorm is ‖M·x − v‖₂ of a raw solution.
func residualNorm(m *mat.Dense, xData, vData []float64) float64 {
	dim := len(vData)
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(dim, xData))

	acc := 0.0
	for i := 0; i < dim; i++ {
		d := r.AtVec(i) - vData[i]
		acc += d * d
	}
	return math.Sqrt(acc)
}
