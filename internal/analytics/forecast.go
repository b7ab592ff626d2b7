package analytics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// movingAverage returns the simple average of the series.
func movingAverage(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// exponentialMovingAverage smooths the series with factor alpha, seeded with
// the first observation, and returns the final smoothed value.
func exponentialMovingAverage(series []float64, alpha float64) float64 {
	if len(series) == 0 {
		return 0
	}
	ema := series[0]
	for _, v := range series[1:] {
		ema = alpha*v + (1-alpha)*ema
	}
	return ema
}

// solveLeastSquares finds the coefficient vector minimizing
// ||design·coef - target||. Each row of design is one observation.
func solveLeastSquares(design [][]float64, target []float64) ([]float64, error) {
	if len(design) < 2 || len(design) != len(target) {
		return nil, ErrInsufficientData
	}
	cols := len(design[0])
	m := mat.NewDense(len(design), cols, nil)
	for i, row := range design {
		m.SetRow(i, row)
	}
	t := mat.NewVecDense(len(target), target)

	var coef mat.VecDense
	if err := coef.SolveVec(m, t); err != nil {
		return nil, ErrInsufficientData
	}
	out := make([]float64, cols)
	for i := range out {
		v := coef.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInsufficientData
		}
		out[i] = v
	}
	return out, nil
}
