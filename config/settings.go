package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lenscontour/level"
	"gopkg.in/yaml.v3"
)

// Reduction modes.
const (
	ReduceNone        = "none"
	ReduceMarginalize = "marginalize"
	ReduceSlice       = "slice"
)

// maxFileSize caps settings files; anything larger is not a settings file.
const maxFileSize = 1 << 20

// Parameter describes one likelihood axis.
type Parameter struct {
	Name      string   `yaml:"name"`
	Axis      int      `yaml:"axis"`
	Min       float64  `yaml:"min"`
	Max       float64  `yaml:"max"`
	NumPoints int      `yaml:"num_points"`
	Unit      *float64 `yaml:"unit,omitempty"` // manual unit; overrides (max-min)/(num_points-1)
	Label     string   `yaml:"label,omitempty"`
}

// Reduce selects the reduction applied before the level search.
type Reduce struct {
	Mode      string  `yaml:"mode"`
	Parameter string  `yaml:"parameter,omitempty"`
	Value     float64 `yaml:"value,omitempty"` // slice position, physical units
}

// Search holds the level-search tolerances.
type Search struct {
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max_iterations"`
	NormTolerance float64 `yaml:"norm_tolerance"`
}

// Settings is the full settings file.
type Settings struct {
	Likelihood   string      `yaml:"likelihood"`
	Title        string      `yaml:"title,omitempty"`
	Parameters   []Parameter `yaml:"parameters"`
	Reduce       Reduce      `yaml:"reduce"`
	Levels       []float64   `yaml:"levels"`
	Search       Search      `yaml:"search"`
	Connectivity int         `yaml:"connectivity"`

	dir string // directory of the loaded file; relative paths resolve against it
}

// Default returns the settings used for every field a file leaves out.
func Default() *Settings {
	p := level.DefaultParams()

	return &Settings{
		Reduce: Reduce{Mode: ReduceNone},
		Levels: append([]float64(nil), level.StandardLevels...),
		Search: Search{
			Epsilon:       p.Epsilon,
			MaxIterations: p.MaxIterations,
			NormTolerance: p.NormTolerance,
		},
		Connectivity: 8,
	}
}

// Load reads and validates a YAML settings file. Fields omitted from the file
// keep their Default values.
func Load(path string) (*Settings, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("settings file must have .yaml or .yml extension, got %q: %w", ext, ErrInvalid)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("settings file too large: %d bytes (max %d): %w", info.Size(), maxFileSize, ErrInvalid)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(clean)

	return s, nil
}

// Parse decodes and validates settings from YAML bytes.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty settings: %w", ErrInvalid)
		}
		return nil, fmt.Errorf("failed to parse settings YAML: %v: %w", err, ErrInvalid)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// LikelihoodPath returns the likelihood file path, resolved against the
// directory of the settings file when relative.
func (s *Settings) LikelihoodPath() string {
	if s.dir == "" || filepath.IsAbs(s.Likelihood) {
		return s.Likelihood
	}

	return filepath.Join(s.dir, s.Likelihood)
}

// SearchParams converts the search section for level.SearchWith.
func (s *Settings) SearchParams() level.Params {
	return level.Params{
		Epsilon:       s.Search.Epsilon,
		MaxIterations: s.Search.MaxIterations,
		NormTolerance: s.Search.NormTolerance,
	}
}

// ParameterAxes returns the name → axis mapping.
func (s *Settings) ParameterAxes() map[string]int {
	out := make(map[string]int, len(s.Parameters))
	for _, p := range s.Parameters {
		out[p.Name] = p.Axis
	}

	return out
}

// Validate checks every field.
func (s *Settings) Validate() error {
	if s.Likelihood == "" {
		return fmt.Errorf("likelihood: path is required: %w", ErrInvalid)
	}
	if len(s.Parameters) == 0 {
		return fmt.Errorf("parameters: at least one is required: %w", ErrInvalid)
	}

	names := make(map[string]bool, len(s.Parameters))
	axes := make(map[int]bool, len(s.Parameters))
	for i, p := range s.Parameters {
		switch {
		case p.Name == "":
			return fmt.Errorf("parameters[%d]: name is required: %w", i, ErrInvalid)
		case names[p.Name]:
			return fmt.Errorf("parameters[%d]: duplicate name %q: %w", i, p.Name, ErrInvalid)
		case p.Axis < 0 || p.Axis >= len(s.Parameters):
			return fmt.Errorf("parameters[%d]: axis %d outside [0,%d): %w", i, p.Axis, len(s.Parameters), ErrInvalid)
		case axes[p.Axis]:
			return fmt.Errorf("parameters[%d]: axis %d bound twice: %w", i, p.Axis, ErrInvalid)
		case !finite(p.Min) || !finite(p.Max):
			return fmt.Errorf("parameters[%d]: min/max must be finite: %w", i, ErrInvalid)
		}
		if p.Unit != nil {
			if !finite(*p.Unit) || *p.Unit <= 0 {
				return fmt.Errorf("parameters[%d]: unit must be finite and > 0: %w", i, ErrInvalid)
			}
		} else if p.NumPoints < 2 || p.Max <= p.Min {
			return fmt.Errorf("parameters[%d]: need num_points >= 2 and max > min: %w", i, ErrInvalid)
		}
		names[p.Name] = true
		axes[p.Axis] = true
	}

	switch s.Reduce.Mode {
	case ReduceNone:
	case ReduceMarginalize, ReduceSlice:
		if !names[s.Reduce.Parameter] {
			return fmt.Errorf("reduce: unknown parameter %q: %w", s.Reduce.Parameter, ErrInvalid)
		}
	default:
		return fmt.Errorf("reduce: mode %q not one of none|marginalize|slice: %w", s.Reduce.Mode, ErrInvalid)
	}

	for i, l := range s.Levels {
		if !(l > 0 && l < 1) {
			return fmt.Errorf("levels[%d]=%g: must be in (0,1): %w", i, l, ErrInvalid)
		}
	}
	if err := s.SearchParams().Validate(); err != nil {
		return fmt.Errorf("search: %v: %w", err, ErrInvalid)
	}
	if s.Connectivity != 4 && s.Connectivity != 8 {
		return fmt.Errorf("connectivity: %d not 4 or 8: %w", s.Connectivity, ErrInvalid)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
