// Package lenscontour turns sampled likelihood grids into confidence
// contours: it reduces an N-dimensional likelihood to one or two
// parameters and finds the likelihood thresholds that enclose a requested
// probability mass (68.3%, 95%, 99.7%, ...).
//
// What is inside?
//
//	• N-D likelihood storage in C order with NaN/negative guards
//	• Parameter registry: names ↔ axes, physical ↔ pixel calibration
//	• Marginalisation and slicing down to 1D/2D, always normalised
//	• Level search: Gaussian seed + step walk, soft-fail on non-convergence
//	• 1D brackets on marginal likelihoods, connected contour regions
//	• .npy loading, YAML settings and a small command line front-end
//
// Under the hood, everything is organized into subpackages:
//
//	grid/           - dense N-D weights, SumAxis / SliceAxis / Normalized
//	axes/           - parameter registry and coordinate mapping
//	level/          - Find1D (1D brackets) and Search (N-D thresholds)
//	contour/        - the Engine: reductions, cached levels, queries, regions
//	config/         - YAML settings with defaults and validation
//	loader/         - .npy grids into ready-to-use engines, .npy export
//	cmd/contours/   - CLI: levels, marginal, maximum, value, export
//
// Quick example (2D Gaussian, 1σ):
//
//	eng, _ := contour.New(g, reg)
//	_ = eng.Marginalize("x")            // 2D: normalises only
//	res, _ := eng.LikelihoodValues([]float64{0.683})
//	fmt.Println(res.Thresholds[0], res.Achieved[0], res.Converged[0])
//
//	go install github.com/katalvlaran/lenscontour/cmd/contours@latest
package lenscontour
