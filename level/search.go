package level

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lenscontour/internal/logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// StandardLevels are the usual confidence targets (≈1σ, 2σ, 3σ for a Gaussian).
var StandardLevels = []float64{0.683, 0.95, 0.997}

// Result holds one entry per requested level, in request order.
type Result struct {
	Levels     []float64 // requested confidence levels
	Thresholds []float64 // likelihood thresholds t with Σ{p > t} ≈ level
	Achieved   []float64 // Σ{p > t} actually reached
	Iterations []int     // step updates spent on each level
	Converged  []bool    // false when MaxIterations ran out before tolerance
}

// AllConverged reports whether every level reached the tolerance.
func (r Result) AllConverged() bool {
	for _, ok := range r.Converged {
		if !ok {
			return false
		}
	}

	return true
}

// Seed is the Gaussian-approximation starting threshold for level:
// maxLikelihood·exp(-0.5·Q) with Q the χ² (2 dof) quantile of level.
func Seed(maxLikelihood, level float64) float64 {
	q := distuv.ChiSquared{K: 2}.Quantile(level)

	return maxLikelihood * math.Exp(-0.5*q)
}

// Confidence returns Σ{p[i] : p[i] > threshold}.
func Confidence(p []float64, threshold float64) float64 {
	var sum float64
	for _, v := range p {
		if v > threshold {
			sum += v
		}
	}

	return sum
}

// Search finds, for each level, the likelihood threshold whose super-level
// set holds that probability mass. p is a normalised probability array of
// any dimensionality passed flat.
//
// Errors:
//   - ErrEmpty for empty p.
//   - ErrNotNormalized when |Σp - 1| exceeds the normalisation tolerance.
//   - ErrBadLevel for levels outside (0,1).
//
// Exhausting MaxIterations is not an error; see Result.Converged.
func Search(p []float64, levels []float64, opts ...Option) (Result, error) {
	return SearchWith(p, levels, NewParams(opts...))
}

// SearchWith is Search with already resolved parameters.
func SearchWith(p []float64, levels []float64, params Params) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, fmt.Errorf("Search: %w", err)
	}
	if len(p) == 0 {
		return Result{}, fmt.Errorf("Search: %w", ErrEmpty)
	}
	if total := floats.Sum(p); math.IsNaN(total) || math.Abs(total-1) > params.NormTolerance {
		return Result{}, fmt.Errorf("Search: sum=%.9g: %w", total, ErrNotNormalized)
	}
	for _, l := range levels {
		if !(l > 0 && l < 1) {
			return Result{}, fmt.Errorf("Search: level=%g: %w", l, ErrBadLevel)
		}
	}

	res := Result{
		Levels:     append([]float64(nil), levels...),
		Thresholds: make([]float64, len(levels)),
		Achieved:   make([]float64, len(levels)),
		Iterations: make([]int, len(levels)),
		Converged:  make([]bool, len(levels)),
	}
	maxP := floats.Max(p)
	for i, l := range levels {
		res.Thresholds[i], res.Achieved[i], res.Iterations[i], res.Converged[i] = searchLevel(p, maxP, l, params)
		if !res.Converged[i] {
			logging.Debugf("level: %.4g did not converge in %d iterations, achieved %.6g",
				l, params.MaxIterations, res.Achieved[i])
		}
	}

	return res, nil
}

// searchLevel runs the direction/step walk for one level with fresh state.
func searchLevel(p []float64, maxP, level float64, params Params) (value, achieved float64, iterations int, converged bool) {
	value = Seed(maxP, level)
	step := maxP
	direction := 0
	achieved = Confidence(p, value)

	for math.Abs(achieved/level-1) > params.Epsilon {
		if iterations >= params.MaxIterations {
			return value, achieved, iterations, false
		}
		iterations++

		if achieved > level {
			// Too much mass enclosed: raise the threshold.
			if direction == -1 {
				step /= 2
				logging.Debugf("level: %.4g change direction, accuracy=%.3g", level, math.Abs(achieved/level-1))
			}
			value += step
			direction = 1
		} else {
			if direction == 1 {
				step /= 2
				logging.Debugf("level: %.4g change direction, accuracy=%.3g", level, math.Abs(achieved/level-1))
			}
			value -= step
			direction = -1
		}
		achieved = Confidence(p, value)
	}

	return value, achieved, iterations, true
}
