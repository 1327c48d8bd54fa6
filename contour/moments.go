package contour

import (
	"fmt"

	"github.com/katalvlaran/lenscontour/grid"
	"gonum.org/v1/gonum/stat"
)

// ParameterFunc maps a point of parameter space (one value per axis, in axis
// order) to a scalar.
type ParameterFunc func(params []float64) float64

// ExpectationValue returns E[fn] = Σ fn(θ)·L(θ) / Σ L(θ) over the full grid.
func (e *Engine) ExpectationValue(fn ParameterFunc) (float64, error) {
	vals, err := e.evaluate(fn)
	if err != nil {
		return 0, fmt.Errorf("ExpectationValue: %w", err)
	}

	return stat.Mean(vals, e.full.RawData()), nil
}

// Variance returns E[(fn - E[fn])²] over the full grid (no Bessel
// correction: the likelihood weights are not sample counts).
func (e *Engine) Variance(fn ParameterFunc) (float64, error) {
	vals, err := e.evaluate(fn)
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}
	w := e.full.RawData()
	mean := stat.Mean(vals, w)
	for i, v := range vals {
		d := v - mean
		vals[i] = d * d
	}

	return stat.Mean(vals, w), nil
}

// evaluate computes fn on every grid cell in C order.
func (e *Engine) evaluate(fn ParameterFunc) ([]float64, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if e.full.Sum() == 0 {
		return nil, grid.ErrZeroSum
	}

	names := e.reg.Names()
	ranges := make([][]float64, len(names))
	for axis, name := range names {
		r, err := e.reg.Range(name)
		if err != nil {
			return nil, err
		}
		ranges[axis] = r
	}

	shape := e.full.Shape()
	idx := make([]int, len(shape))
	theta := make([]float64, len(shape))
	out := make([]float64, e.full.Len())
	for off := range out {
		for d := range idx {
			theta[d] = ranges[d][idx[d]]
		}
		out[off] = fn(theta)

		// Advance the C-order odometer.
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}

	return out, nil
}
