package contour

import (
	"fmt"

	"github.com/katalvlaran/lenscontour/level"
)

// LikelihoodValues searches the thresholds of the current reduction that
// enclose each confidence level. The result is cached until the reduction
// changes; repeating the same request returns the cached values.
//
// Non-convergence is reported through Result.Converged, not as an error.
func (e *Engine) LikelihoodValues(levels []float64, opts ...level.Option) (level.Result, error) {
	if e.reduced == nil {
		return level.Result{}, fmt.Errorf("LikelihoodValues: %w", ErrNoReduction)
	}
	params := level.NewParams(opts...)
	if e.cache != nil && e.cache.params == params && equalLevels(e.cache.levels, levels) {
		return copyResult(e.cache.result), nil
	}

	res, err := level.SearchWith(e.reduced.Grid.RawData(), levels, params)
	if err != nil {
		return level.Result{}, fmt.Errorf("LikelihoodValues: %w", err)
	}
	e.cache = &levelCache{
		levels: append([]float64(nil), levels...),
		params: params,
		result: res,
	}

	return copyResult(res), nil
}

// CachedLevels returns the last level search on the current reduction.
func (e *Engine) CachedLevels() (level.Result, bool) {
	if e.cache == nil {
		return level.Result{}, false
	}

	return copyResult(e.cache.result), true
}

func equalLevels(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func copyResult(r level.Result) level.Result {
	return level.Result{
		Levels:     append([]float64(nil), r.Levels...),
		Thresholds: append([]float64(nil), r.Thresholds...),
		Achieved:   append([]float64(nil), r.Achieved...),
		Iterations: append([]int(nil), r.Iterations...),
		Converged:  append([]bool(nil), r.Converged...),
	}
}
