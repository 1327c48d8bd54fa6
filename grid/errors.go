// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All functions return these sentinels (optionally wrapped with an operation
// tag through %w); tests match them with errors.Is.

package grid

import "errors"

var (
	// ErrBadShape is returned when a shape is empty or has a non-positive extent,
	// or when a data buffer does not match the shape.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates an index outside the grid along some axis, or an
	// index tuple with the wrong number of coordinates.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBadAxis indicates an axis number outside [0, NDim) or a reduction that
	// would leave no axis at all.
	ErrBadAxis = errors.New("grid: invalid axis")

	// ErrNaNInf signals a NaN or ±Inf weight under the validating numeric policy.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative weight under the validating numeric policy.
	ErrNegativeWeight = errors.New("grid: negative weight")

	// ErrZeroSum is returned by Normalized when the weights sum to zero.
	ErrZeroSum = errors.New("grid: weights sum to zero")

	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("grid: nil grid")
)
