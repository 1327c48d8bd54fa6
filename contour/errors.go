// SPDX-License-Identifier: MIT
// Package contour: sentinel error set.
// Errors raised by the axes, grid and level packages propagate unchanged
// (wrapped with context); the most common ones are re-exported here so
// callers can match them without importing those packages.

package contour

import (
	"errors"

	"github.com/katalvlaran/lenscontour/axes"
	"github.com/katalvlaran/lenscontour/level"
)

var (
	// ErrNoReduction indicates an operation that needs Marginalize or Slice first.
	ErrNoReduction = errors.New("contour: no reduced likelihood; call Marginalize or Slice first")

	// ErrNotTwoDimensional indicates an operation that needs a 2D reduction.
	ErrNotTwoDimensional = errors.New("contour: reduced likelihood is not two dimensional")

	// ErrArity indicates a coordinate tuple whose length differs from the grid dimensionality.
	ErrArity = errors.New("contour: wrong number of coordinates")

	// ErrBadWhich indicates an unknown Maximum selector.
	ErrBadWhich = errors.New("contour: which must be either 'full' or 'reduced'")

	// ErrNilGrid indicates a nil grid or registry passed to New.
	ErrNilGrid = errors.New("contour: nil grid or registry")

	// ErrNilFunc indicates a nil ParameterFunc.
	ErrNilFunc = errors.New("contour: nil parameter function")
)

// Re-exported sentinels.
var (
	ErrConfiguration    = axes.ErrConfiguration
	ErrUnknownParameter = axes.ErrUnknownParameter
	ErrOutOfBounds      = axes.ErrOutOfBounds
	ErrNotNormalized    = level.ErrNotNormalized
)
