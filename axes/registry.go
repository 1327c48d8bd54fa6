package axes

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Calibration is the physical sampling of one parameter axis.
type Calibration struct {
	Min    float64 // physical value at pixel 0
	Max    float64 // physical value at pixel Points-1
	Points int     // number of samples; equals the grid extent along the axis
	Unit   float64 // physical distance between neighbouring pixels
}

// Registry binds parameter names to grid axes and holds their calibration.
// It is owned by a single engine; the zero value is not usable, call
// NewRegistry.
type Registry struct {
	shape  []int
	axisOf map[string]int
	nameOf []string // indexed by axis; "" while unbound
	calib  map[string]Calibration
}

// NewRegistry creates an empty registry for a grid of the given shape.
func NewRegistry(shape []int) (*Registry, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("NewRegistry: empty shape: %w", ErrConfiguration)
	}
	for _, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("NewRegistry: extent %d: %w", n, ErrConfiguration)
		}
	}

	return &Registry{
		shape:  append([]int(nil), shape...),
		axisOf: make(map[string]int, len(shape)),
		nameOf: make([]string, len(shape)),
		calib:  make(map[string]Calibration, len(shape)),
	}, nil
}

// FromAxes creates a registry and registers every name→axis pair of axes.
func FromAxes(shape []int, axes map[string]int) (*Registry, error) {
	r, err := NewRegistry(shape)
	if err != nil {
		return nil, err
	}
	// Register in axis order so error messages are deterministic.
	names := make([]string, 0, len(axes))
	for name := range axes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return axes[names[i]] < axes[names[j]] })
	for _, name := range names {
		if err = r.Register(name, axes[name]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register binds name to axis. Names and axes are one-to-one.
func (r *Registry) Register(name string, axis int) error {
	switch {
	case name == "":
		return fmt.Errorf("Register: empty name: %w", ErrConfiguration)
	case axis < 0 || axis >= len(r.shape):
		return fmt.Errorf("Register(%q): axis %d outside [0,%d): %w", name, axis, len(r.shape), ErrConfiguration)
	}
	if prev, ok := r.axisOf[name]; ok {
		return fmt.Errorf("Register(%q): already bound to axis %d: %w", name, prev, ErrConfiguration)
	}
	if other := r.nameOf[axis]; other != "" {
		return fmt.Errorf("Register(%q): axis %d already bound to %q: %w", name, axis, other, ErrConfiguration)
	}
	r.axisOf[name] = axis
	r.nameOf[axis] = name

	return nil
}

// Calibrate sets the physical range of name from its end points and sample
// count. numPoints must equal the grid extent along the parameter's axis.
func (r *Registry) Calibrate(name string, min, max float64, numPoints int) error {
	axis, err := r.Axis(name)
	if err != nil {
		return fmt.Errorf("Calibrate: %w", err)
	}
	switch {
	case numPoints != r.shape[axis]:
		return fmt.Errorf("Calibrate(%q): num_points=%d but grid axis %d has %d samples: %w",
			name, numPoints, axis, r.shape[axis], ErrConfiguration)
	case numPoints < 2:
		return fmt.Errorf("Calibrate(%q): need at least 2 samples: %w", name, ErrConfiguration)
	case !isFinite(min) || !isFinite(max) || max <= min:
		return fmt.Errorf("Calibrate(%q): invalid range [%g,%g]: %w", name, min, max, ErrConfiguration)
	}
	r.calib[name] = Calibration{
		Min:    min,
		Max:    max,
		Points: numPoints,
		Unit:   (max - min) / float64(numPoints-1),
	}

	return nil
}

// SetUnits calibrates name manually with an explicit unit; the sample count
// is taken from the grid.
func (r *Registry) SetUnits(name string, min, max, unit float64) error {
	axis, err := r.Axis(name)
	if err != nil {
		return fmt.Errorf("SetUnits: %w", err)
	}
	if !isFinite(min) || !isFinite(max) || !isFinite(unit) || unit <= 0 {
		return fmt.Errorf("SetUnits(%q): invalid units min=%g max=%g unit=%g: %w", name, min, max, unit, ErrConfiguration)
	}
	r.calib[name] = Calibration{Min: min, Max: max, Points: r.shape[axis], Unit: unit}

	return nil
}

// Axis returns the axis bound to name.
func (r *Registry) Axis(name string) (int, error) {
	axis, ok := r.axisOf[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownParameter)
	}

	return axis, nil
}

// Calibration returns the calibration of name.
func (r *Registry) Calibration(name string) (Calibration, error) {
	if _, err := r.Axis(name); err != nil {
		return Calibration{}, err
	}
	c, ok := r.calib[name]
	if !ok {
		return Calibration{}, fmt.Errorf("%q: %w", name, ErrNotCalibrated)
	}

	return c, nil
}

// Unit returns the physical size of one pixel along name.
func (r *Registry) Unit(name string) (float64, error) {
	c, err := r.Calibration(name)
	if err != nil {
		return 0, err
	}

	return c.Unit, nil
}

// Shape returns a copy of the grid shape the registry was built for.
func (r *Registry) Shape() []int { return append([]int(nil), r.shape...) }

// Len returns the number of registered parameters.
func (r *Registry) Len() int { return len(r.axisOf) }

// Names returns the registered names sorted by ascending axis.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.axisOf))
	for _, name := range r.nameOf {
		if name != "" {
			out = append(out, name)
		}
	}

	return out
}

// Except returns the registered names other than drop, sorted by axis.
func (r *Registry) Except(drop string) ([]string, error) {
	if _, err := r.Axis(drop); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(r.axisOf)-1)
	for _, name := range r.Names() {
		if name != drop {
			out = append(out, name)
		}
	}

	return out, nil
}

// Complete reports whether every axis is bound and calibrated.
func (r *Registry) Complete() error {
	for axis, name := range r.nameOf {
		if name == "" {
			return fmt.Errorf("axis %d has no parameter: %w", axis, ErrConfiguration)
		}
		if _, ok := r.calib[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrNotCalibrated)
		}
	}

	return nil
}

// ToPixel maps a physical value to the nearest pixel along name.
func (r *Registry) ToPixel(name string, value float64) (int, error) {
	c, err := r.Calibration(name)
	if err != nil {
		return 0, err
	}

	return c.ToPixel(value)
}

// ToPhysical maps a pixel along name to its physical value.
func (r *Registry) ToPhysical(name string, pixel int) (float64, error) {
	c, err := r.Calibration(name)
	if err != nil {
		return 0, err
	}

	return c.ToPhysical(pixel)
}

// Range returns the physical position of every sample along name.
func (r *Registry) Range(name string) ([]float64, error) {
	c, err := r.Calibration(name)
	if err != nil {
		return nil, err
	}

	return c.Range(), nil
}

// ToPixel maps value to round((value-Min)/Unit).
func (c Calibration) ToPixel(value float64) (int, error) {
	p := math.Round((value - c.Min) / c.Unit)
	if math.IsNaN(p) || p < 0 || p > float64(c.Points-1) {
		return 0, fmt.Errorf("value %g outside [%g,%g]: %w", value, c.Min, c.Upper(), ErrOutOfBounds)
	}

	return int(p), nil
}

// ToPhysical maps pixel to pixel*Unit + Min.
func (c Calibration) ToPhysical(pixel int) (float64, error) {
	if pixel < 0 || pixel >= c.Points {
		return 0, fmt.Errorf("pixel %d outside [0,%d): %w", pixel, c.Points, ErrOutOfBounds)
	}

	return float64(pixel)*c.Unit + c.Min, nil
}

// Range is the evenly spaced sample positions Min, Min+Unit, ...
func (c Calibration) Range() []float64 {
	out := make([]float64, c.Points)
	if c.Points == 1 {
		out[0] = c.Min
		return out
	}

	return floats.Span(out, c.Min, c.Upper())
}

// Upper is the physical value of the last sample, Min+Unit*(Points-1).
// For axes set through SetUnits it may differ from the declared Max.
func (c Calibration) Upper() float64 { return c.Min + c.Unit*float64(c.Points-1) }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
