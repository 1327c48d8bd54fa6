package contour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lenscontour/axes"
)

// Which selects the grid Maximum looks at.
type Which int

const (
	// Full is the complete N-D likelihood.
	Full Which = iota
	// Reduced is the current marginalised or sliced likelihood.
	Reduced
)

// String implements fmt.Stringer.
func (w Which) String() string {
	switch w {
	case Full:
		return "full"
	case Reduced:
		return "reduced"
	}

	return fmt.Sprintf("Which(%d)", int(w))
}

// ParseWhich accepts "full" or "reduced".
func ParseWhich(s string) (Which, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return Full, nil
	case "reduced":
		return Reduced, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadWhich)
}

// Maximum returns the physical coordinates of the likelihood maximum. Ties
// resolve to the first cell in C order.
func (e *Engine) Maximum(which Which) (map[string]float64, error) {
	switch which {
	case Full:
		idx := e.full.ArgMax()
		out := make(map[string]float64, e.reg.Len())
		for _, name := range e.reg.Names() {
			axis, _ := e.reg.Axis(name)
			v, err := e.reg.ToPhysical(name, idx[axis])
			if err != nil {
				return nil, fmt.Errorf("Maximum: %w", err)
			}
			out[name] = v
		}

		return out, nil

	case Reduced:
		if e.reduced == nil {
			return nil, fmt.Errorf("Maximum: %w", ErrNoReduction)
		}
		idx := e.reduced.Grid.ArgMax()
		out := make(map[string]float64, len(e.reduced.Parameters))
		for n, name := range e.reduced.Parameters {
			v, err := e.reg.ToPhysical(name, idx[n])
			if err != nil {
				return nil, fmt.Errorf("Maximum: %w", err)
			}
			out[name] = v
		}

		return out, nil
	}

	return nil, fmt.Errorf("Maximum(%v): %w", which, ErrBadWhich)
}

// Value returns the un-normalised likelihood at the nearest pixel to the
// physical point coords, given one coordinate per axis in axis order.
// ok is false when the point lies outside the sampled range.
func (e *Engine) Value(coords ...float64) (v float64, ok bool, err error) {
	if len(coords) != e.full.NDim() {
		return 0, false, fmt.Errorf("Value: got %d coordinates for %d axes: %w", len(coords), e.full.NDim(), ErrArity)
	}
	idx := make([]int, len(coords))
	for _, name := range e.reg.Names() {
		axis, _ := e.reg.Axis(name)
		p, err := e.reg.ToPixel(name, coords[axis])
		if errors.Is(err, axes.ErrOutOfBounds) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("Value: %w", err)
		}
		idx[axis] = p
	}
	v, err = e.full.At(idx...)
	if err != nil {
		return 0, false, fmt.Errorf("Value: %w", err)
	}

	return v, true, nil
}

// Point returns the reduced (normalised) likelihood at the physical point
// (x, y) of a 2D reduction. ok is false outside the extent.
func (e *Engine) Point(x, y float64) (v float64, ok bool, err error) {
	if e.reduced == nil {
		return 0, false, fmt.Errorf("Point: %w", ErrNoReduction)
	}
	if e.reduced.Grid.NDim() != 2 {
		return 0, false, fmt.Errorf("Point: %w", ErrNotTwoDimensional)
	}
	coords := [2]float64{x, y}
	var idx [2]int
	for n, name := range e.reduced.Parameters {
		p, err := e.reg.ToPixel(name, coords[n])
		if errors.Is(err, axes.ErrOutOfBounds) {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("Point: %w", err)
		}
		idx[n] = p
	}
	v, err = e.reduced.Grid.At(idx[0], idx[1])
	if err != nil {
		return 0, false, fmt.Errorf("Point: %w", err)
	}

	return v, true, nil
}
