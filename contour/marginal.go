package contour

import (
	"fmt"

	"github.com/katalvlaran/lenscontour/grid"
	"github.com/katalvlaran/lenscontour/level"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// bracketSamples is how many candidate samples Find1D returns per level; the
// two nearest to the mode form the bracket.
const bracketSamples = 3

// Bracket is a pair of parameter values at a confidence level, ordered by
// distance to the mode (Near first).
type Bracket struct {
	Near float64
	Far  float64
}

// MarginalResult is the one-parameter marginal likelihood.
type MarginalResult struct {
	Parameter  string
	Range      []float64 // physical sample positions
	Likelihood []float64 // density: integrates to 1 over Range
	Mode       float64   // parameter value at the (first) maximum
	Levels     []float64
	Brackets   []Bracket // one per level, empty when no levels were requested
}

// Marginal sums the full likelihood over every parameter except name and
// normalises the profile to unit integral over the physical range
// (Simpson's rule, trapezoid for two samples). For each level a bracket is
// computed with level.Find1D.
func (e *Engine) Marginal(name string, levels ...float64) (MarginalResult, error) {
	axis, err := e.reg.Axis(name)
	if err != nil {
		return MarginalResult{}, fmt.Errorf("Marginal: %w", err)
	}
	cal, err := e.reg.Calibration(name)
	if err != nil {
		return MarginalResult{}, fmt.Errorf("Marginal: %w", err)
	}

	profile, err := e.full.SumAllBut(axis)
	if err != nil {
		return MarginalResult{}, fmt.Errorf("Marginal(%q): %w", name, err)
	}
	x := cal.Range()

	var norm float64
	switch {
	case len(x) >= 3:
		norm = integrate.Simpsons(x, profile)
	case len(x) == 2:
		norm = integrate.Trapezoidal(x, profile)
	default:
		norm = floats.Sum(profile)
	}
	if norm <= 0 {
		return MarginalResult{}, fmt.Errorf("Marginal(%q): %w", name, grid.ErrZeroSum)
	}
	floats.Scale(1/norm, profile)

	res := MarginalResult{
		Parameter:  name,
		Range:      x,
		Likelihood: profile,
		Mode:       x[floats.MaxIdx(profile)],
		Levels:     append([]float64(nil), levels...),
	}
	if len(levels) == 0 {
		return res, nil
	}

	k := bracketSamples
	if k > len(x) {
		k = len(x)
	}
	res.Brackets = make([]Bracket, len(levels))
	for i, l := range levels {
		pl, err := level.Find1D(x, profile, l, k)
		if err != nil {
			return MarginalResult{}, fmt.Errorf("Marginal(%q): %w", name, err)
		}
		b := Bracket{Near: pl[0], Far: pl[0]}
		if len(pl) > 1 {
			b.Far = pl[1]
		}
		res.Brackets[i] = b
	}

	return res, nil
}
