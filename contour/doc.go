// Package contour turns an N-dimensional likelihood grid into calibrated
// confidence regions.
//
// An Engine owns one likelihood grid and the axes.Registry describing its
// parameters. Typical flow:
//
//	eng, _ := contour.New(g, reg)
//	_ = eng.Marginalize("w")                    // or eng.Slice("w", -1.0)
//	res, _ := eng.LikelihoodValues(level.StandardLevels)
//	// res.Thresholds feed a contour renderer; res.Achieved reports the
//	// enclosed probability actually reached.
//
// Marginalize and Slice produce a Reduction (normalised 1D or 2D grid plus
// the remaining parameter names in ascending axis order). Each call replaces
// the previous reduction and drops the cached level values.
//
// Marginal, Maximum, Value, ExpectationValue and Variance work on the full
// grid; LikelihoodValues, Point and Regions work on the current reduction.
//
// Rendering is not part of this package: every result is numeric.
//
// An Engine is not safe for concurrent mutation. Independent engines over
// the same *grid.Grid may run in parallel since reductions never mutate it.
package contour
