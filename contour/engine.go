package contour

import (
	"fmt"

	"github.com/katalvlaran/lenscontour/axes"
	"github.com/katalvlaran/lenscontour/grid"
	"github.com/katalvlaran/lenscontour/internal/logging"
	"github.com/katalvlaran/lenscontour/level"
	"gonum.org/v1/gonum/mat"
)

// Extent is the bounding box of a 2D reduction in physical units:
// X spans the first remaining parameter, Y the second.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Reduction is a normalised 1D or 2D likelihood derived from the full grid.
type Reduction struct {
	Grid       *grid.Grid
	Parameters []string // remaining parameters, ascending original axis
	Extent     Extent   // valid only when HasExtent
	HasExtent  bool     // exactly two parameters remain
}

// Engine reduces a likelihood grid and searches its confidence levels.
type Engine struct {
	full   *grid.Grid
	reg    *axes.Registry
	title  string
	labels map[string]string

	reduced *Reduction
	cache   *levelCache
}

type levelCache struct {
	levels []float64
	params level.Params
	result level.Result
}

// New builds an engine over g. reg must describe every axis of g and be
// fully calibrated.
func New(g *grid.Grid, reg *axes.Registry, opts ...Option) (*Engine, error) {
	if g == nil || reg == nil {
		return nil, ErrNilGrid
	}
	if err := reg.Complete(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	shape, want := g.Shape(), reg.Shape()
	if len(shape) != len(want) {
		return nil, fmt.Errorf("New: grid has %d axes, registry %d: %w", len(shape), len(want), ErrConfiguration)
	}
	for d := range shape {
		if shape[d] != want[d] {
			return nil, fmt.Errorf("New: axis %d has %d samples, registry expects %d: %w", d, shape[d], want[d], ErrConfiguration)
		}
	}

	e := &Engine{
		full:   g,
		reg:    reg,
		title:  DefaultTitle,
		labels: make(map[string]string, reg.Len()),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(e)
		}
	}

	return e, nil
}

// Grid returns a copy of the full likelihood grid.
func (e *Engine) Grid() *grid.Grid { return e.full.Clone() }

// Registry returns the parameter registry.
func (e *Engine) Registry() *axes.Registry { return e.reg }

// Title returns the display title.
func (e *Engine) Title() string { return e.title }

// Label returns the display label of name.
func (e *Engine) Label(name string) string {
	if l, ok := e.labels[name]; ok {
		return l
	}

	return name
}

// Reduced returns a copy of the current reduction. Changing it does not
// touch the engine or its cached levels.
func (e *Engine) Reduced() (Reduction, error) {
	if e.reduced == nil {
		return Reduction{}, ErrNoReduction
	}
	r := *e.reduced
	r.Grid = r.Grid.Clone()
	r.Parameters = append([]string(nil), r.Parameters...)

	return r, nil
}

// ReducedMatrix returns a 2D reduction as a gonum matrix; rows follow the
// first remaining parameter, columns the second.
func (e *Engine) ReducedMatrix() (*mat.Dense, error) {
	if e.reduced == nil {
		return nil, ErrNoReduction
	}
	g := e.reduced.Grid
	if g.NDim() != 2 {
		return nil, ErrNotTwoDimensional
	}

	return mat.NewDense(g.Dim(0), g.Dim(1), g.Data()), nil
}

// Marginalize sums the likelihood over name and normalises the result.
// Grids with at most two axes are already marginal: the reduction is then
// the normalised grid itself with every parameter remaining.
func (e *Engine) Marginalize(name string) error {
	axis, err := e.reg.Axis(name)
	if err != nil {
		return fmt.Errorf("Marginalize: %w", err)
	}

	if e.full.NDim() <= 2 {
		logging.Debugf("contour: the likelihood is already marginal")
		g, err := e.full.Normalized()
		if err != nil {
			return fmt.Errorf("Marginalize: %w", err)
		}

		return e.setReduction(g, e.reg.Names())
	}

	summed, err := e.full.SumAxis(axis)
	if err != nil {
		return fmt.Errorf("Marginalize(%q): %w", name, err)
	}
	g, err := summed.Normalized()
	if err != nil {
		return fmt.Errorf("Marginalize(%q): %w", name, err)
	}
	remaining, err := e.reg.Except(name)
	if err != nil {
		return fmt.Errorf("Marginalize(%q): %w", name, err)
	}

	return e.setReduction(g, remaining)
}

// Slice fixes name at the pixel nearest to value and normalises the
// resulting hyperplane.
func (e *Engine) Slice(name string, value float64) error {
	axis, err := e.reg.Axis(name)
	if err != nil {
		return fmt.Errorf("Slice: %w", err)
	}
	if e.full.NDim() < 2 {
		return fmt.Errorf("Slice(%q): cannot slice a 1D likelihood: %w", name, ErrConfiguration)
	}
	pixel, err := e.reg.ToPixel(name, value)
	if err != nil {
		return fmt.Errorf("Slice(%q): %w", name, err)
	}

	plane, err := e.full.SliceAxis(axis, pixel)
	if err != nil {
		return fmt.Errorf("Slice(%q): %w", name, err)
	}
	g, err := plane.Normalized()
	if err != nil {
		return fmt.Errorf("Slice(%q=%g): %w", name, value, err)
	}
	remaining, err := e.reg.Except(name)
	if err != nil {
		return fmt.Errorf("Slice(%q): %w", name, err)
	}

	return e.setReduction(g, remaining)
}

// setReduction replaces the current reduction and drops cached levels.
func (e *Engine) setReduction(g *grid.Grid, remaining []string) error {
	r := &Reduction{Grid: g, Parameters: remaining}
	if len(remaining) == 2 {
		cx, err := e.reg.Calibration(remaining[0])
		if err != nil {
			return err
		}
		cy, err := e.reg.Calibration(remaining[1])
		if err != nil {
			return err
		}
		r.Extent = Extent{MinX: cx.Min, MaxX: cx.Upper(), MinY: cy.Min, MaxY: cy.Upper()}
		r.HasExtent = true
	}
	e.reduced = r
	e.cache = nil

	return nil
}
