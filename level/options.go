// SPDX-License-Identifier: MIT
// Package level: functional options for Search.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Params is exported so callers can key caches on the resolved values and
//     so values decoded from settings files can be validated without panics.

package level

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance |achieved/level - 1| accepted by Search.
	DefaultEpsilon = 0.01

	// DefaultMaxIterations bounds the step loop for each level.
	DefaultMaxIterations = 1000

	// DefaultNormTolerance is the accepted |Σp - 1| before Search refuses the input.
	DefaultNormTolerance = 1e-6
)

const (
	panicEpsilonInvalid = "level: WithEpsilon: eps must be finite and > 0"
	panicMaxIterInvalid = "level: WithMaxIterations: n must be >= 0"
	panicNormTolInvalid = "level: WithNormTolerance: tol must be finite and > 0"
)

// Option mutates search parameters.
type Option func(*Params)

// Params is the resolved search configuration.
type Params struct {
	Epsilon       float64 // relative tolerance on achieved confidence
	MaxIterations int     // step updates allowed per level; 0 keeps the seed
	NormTolerance float64 // accepted deviation of Σp from 1
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		NormTolerance: DefaultNormTolerance,
	}
}

// NewParams resolves opts on top of DefaultParams.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, fn := range opts {
		if fn != nil {
			fn(&p)
		}
	}

	return p
}

// Validate checks p without panicking.
func (p Params) Validate() error {
	switch {
	case !(p.Epsilon > 0) || math.IsInf(p.Epsilon, 0):
		return fmt.Errorf("epsilon=%g: %w", p.Epsilon, ErrBadOption)
	case p.MaxIterations < 0:
		return fmt.Errorf("max_iterations=%d: %w", p.MaxIterations, ErrBadOption)
	case !(p.NormTolerance > 0) || math.IsInf(p.NormTolerance, 0):
		return fmt.Errorf("norm_tolerance=%g: %w", p.NormTolerance, ErrBadOption)
	}

	return nil
}

// WithEpsilon sets the relative convergence tolerance.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(p *Params) { p.Epsilon = eps }
}

// WithMaxIterations sets the per-level iteration bound.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(p *Params) { p.MaxIterations = n }
}

// WithNormTolerance sets the accepted deviation of the total mass from 1.
func WithNormTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicNormTolInvalid)
	}

	return func(p *Params) { p.NormTolerance = tol }
}

// WithParams replaces every parameter at once. Values are checked by Search,
// not here, so settings decoded from files fail with ErrBadOption instead of
// panicking.
func WithParams(params Params) Option {
	return func(p *Params) { *p = params }
}
