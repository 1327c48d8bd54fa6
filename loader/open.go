package loader

import (
	"fmt"

	"github.com/katalvlaran/lenscontour/axes"
	"github.com/katalvlaran/lenscontour/config"
	"github.com/katalvlaran/lenscontour/contour"
	"github.com/katalvlaran/lenscontour/grid"
	"github.com/katalvlaran/lenscontour/internal/logging"
)

// Open loads the likelihood named by s and returns an engine with the
// configured reduction applied.
func Open(s *config.Settings) (*contour.Engine, error) {
	path := s.LikelihoodPath()
	g, err := LoadGrid(path)
	if err != nil {
		return nil, err
	}
	logging.Logf("loaded likelihood %s: %v", path, g)

	title := s.Title
	if title == "" {
		title = TitleFromPath(path)
	}

	eng, err := Build(g, s, contour.WithTitle(title))
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", path, err)
	}
	if err = ApplyReduction(eng, s.Reduce); err != nil {
		return nil, fmt.Errorf("Open(%s): %w", path, err)
	}

	return eng, nil
}

// Build calibrates a registry for g from the settings parameters and wraps
// both in an engine.
func Build(g *grid.Grid, s *config.Settings, opts ...contour.Option) (*contour.Engine, error) {
	if g.NDim() != len(s.Parameters) {
		return nil, fmt.Errorf("Build: %d parameters for a %d-D grid: %w", len(s.Parameters), g.NDim(), axes.ErrConfiguration)
	}
	reg, err := axes.FromAxes(g.Shape(), s.ParameterAxes())
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for _, p := range s.Parameters {
		if p.Unit != nil {
			err = reg.SetUnits(p.Name, p.Min, p.Max, *p.Unit)
		} else {
			err = reg.Calibrate(p.Name, p.Min, p.Max, p.NumPoints)
		}
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if p.Label != "" {
			opts = append(opts, contour.WithLabel(p.Name, p.Label))
		}
	}

	return contour.New(g, reg, opts...)
}

// ApplyReduction runs the configured reduction. Mode "none" is accepted for
// grids of at most two axes, which are reduced to their normalised self.
func ApplyReduction(eng *contour.Engine, r config.Reduce) error {
	switch r.Mode {
	case config.ReduceMarginalize:
		return eng.Marginalize(r.Parameter)
	case config.ReduceSlice:
		return eng.Slice(r.Parameter, r.Value)
	}

	if len(eng.Registry().Shape()) > 2 {
		return ErrNoReduction
	}
	// Marginalize short-circuits for <=2 axes, whatever the parameter.
	return eng.Marginalize(eng.Registry().Names()[0])
}
