// SPDX-License-Identifier: MIT

// Package grid - dense C-ordered storage & safe accessors.
//
// Purpose:
//   - Provide a flat buffer with the explicit offset formula Σ idx[d]*stride[d].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed C-order traversal, no map iteration).
//   - Enforce the numeric policy (finite, non-negative weights) from a single place.
//
// Complexity quicksheet:
//   - New/FromSlice: O(n); At/Set: O(ndim); Clone: O(n); Sum/Max/ArgMax: O(n).

package grid

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromFort = "FromFortran"
)

// gridErrorf wraps a sentinel with a uniform Grid context tag.
func gridErrorf(method string, err error) error {
	return fmt.Errorf("Grid.%s: %w", method, err)
}

// Grid is an N-dimensional array of likelihood weights in C order.
//   - shape holds the extent of each axis (every extent >= 1).
//   - strides[d] is the flat distance between neighbours along axis d.
//   - data has len == Π shape.
type Grid struct {
	shape    []int
	strides  []int
	data     []float64
	validate bool
}

var _ fmt.Stringer = (*Grid)(nil)

// New allocates a zero-filled grid of the given shape.
//
// Errors:
//   - ErrBadShape when shape is empty or any extent is < 1.
func New(shape []int, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	n, err := checkShape(shape)
	if err != nil {
		return nil, gridErrorf(ctxNew, err)
	}

	return &Grid{
		shape:    append([]int(nil), shape...),
		strides:  stridesOf(shape),
		data:     make([]float64, n),
		validate: o.validate,
	}, nil
}

// FromSlice builds a grid over a copy of data, which must be laid out in C
// order and hold exactly Π shape values.
//
// Errors:
//   - ErrBadShape on an invalid shape or length mismatch.
//   - ErrNaNInf / ErrNegativeWeight under the validating policy.
func FromSlice(shape []int, data []float64, opts ...Option) (*Grid, error) {
	g, err := New(shape, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(g.data) {
		return nil, gridErrorf(ctxNew, ErrBadShape)
	}
	if g.validate {
		for _, v := range data {
			if err = checkWeight(v); err != nil {
				return nil, gridErrorf(ctxNew, err)
			}
		}
	}
	copy(g.data, data)

	return g, nil
}

// FromFortran builds a grid from a column-major (first axis fastest) buffer,
// reordering it into C order. NumPy writes such buffers when
// fortran_order is True.
func FromFortran(shape []int, data []float64, opts ...Option) (*Grid, error) {
	g, err := New(shape, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(g.data) {
		return nil, gridErrorf(ctxFromFort, ErrBadShape)
	}

	// Column-major strides: axis 0 is contiguous.
	fstrides := make([]int, len(shape))
	acc := 1
	for d := range shape {
		fstrides[d] = acc
		acc *= shape[d]
	}

	idx := make([]int, len(shape))
	for off := range g.data {
		g.unravelInto(off, idx)
		src := 0
		for d, i := range idx {
			src += i * fstrides[d]
		}
		v := data[src]
		if g.validate {
			if err = checkWeight(v); err != nil {
				return nil, gridErrorf(ctxFromFort, err)
			}
		}
		g.data[off] = v
	}

	return g, nil
}

// Shape returns a copy of the grid shape.
func (g *Grid) Shape() []int { return append([]int(nil), g.shape...) }

// NDim returns the number of axes.
func (g *Grid) NDim() int { return len(g.shape) }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Dim returns the extent along axis, or 0 when axis is invalid.
func (g *Grid) Dim(axis int) int {
	if axis < 0 || axis >= len(g.shape) {
		return 0
	}

	return g.shape[axis]
}

// Data returns a copy of the flat C-ordered buffer.
func (g *Grid) Data() []float64 { return append([]float64(nil), g.data...) }

// RawData exposes the flat buffer without copying. Callers must not modify it.
func (g *Grid) RawData() []float64 { return g.data }

// Clone returns a deep copy with the same numeric policy.
func (g *Grid) Clone() *Grid {
	return &Grid{
		shape:    append([]int(nil), g.shape...),
		strides:  append([]int(nil), g.strides...),
		data:     append([]float64(nil), g.data...),
		validate: g.validate,
	}
}

// Offset maps an index tuple to the flat buffer position.
func (g *Grid) Offset(idx ...int) (int, error) {
	if len(idx) != len(g.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= g.shape[d] {
			return 0, ErrOutOfRange
		}
		off += i * g.strides[d]
	}

	return off, nil
}

// Unravel maps a flat offset back to its index tuple.
func (g *Grid) Unravel(off int) ([]int, error) {
	if off < 0 || off >= len(g.data) {
		return nil, ErrOutOfRange
	}
	idx := make([]int, len(g.shape))
	g.unravelInto(off, idx)

	return idx, nil
}

func (g *Grid) unravelInto(off int, idx []int) {
	for d := range g.shape {
		idx[d] = off / g.strides[d]
		off %= g.strides[d]
	}
}

// At returns the weight at idx.
func (g *Grid) At(idx ...int) (float64, error) {
	off, err := g.Offset(idx...)
	if err != nil {
		return 0, gridErrorf(ctxAt, err)
	}

	return g.data[off], nil
}

// Set writes v at idx, applying the numeric policy.
func (g *Grid) Set(v float64, idx ...int) error {
	off, err := g.Offset(idx...)
	if err != nil {
		return gridErrorf(ctxSet, err)
	}
	if g.validate {
		if err = checkWeight(v); err != nil {
			return gridErrorf(ctxSet, err)
		}
	}
	g.data[off] = v

	return nil
}

// Sum returns the total weight.
func (g *Grid) Sum() float64 { return floats.Sum(g.data) }

// Max returns the largest weight.
func (g *Grid) Max() float64 { return floats.Max(g.data) }

// ArgMax returns the index tuple of the largest weight. Ties resolve to the
// first cell in C order.
func (g *Grid) ArgMax() []int {
	idx := make([]int, len(g.shape))
	g.unravelInto(floats.MaxIdx(g.data), idx)

	return idx
}

// String renders the shape and total weight; the buffer itself can be huge.
func (g *Grid) String() string {
	parts := make([]string, len(g.shape))
	for d, n := range g.shape {
		parts[d] = fmt.Sprint(n)
	}

	return fmt.Sprintf("Grid(%s, sum=%g)", strings.Join(parts, "×"), g.Sum())
}

// ---------- helpers ----------

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, s := range shape {
		if s < 1 {
			return 0, ErrBadShape
		}
		n *= s
	}

	return n, nil
}

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}

	return strides
}

func checkWeight(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeWeight
	}

	return nil
}
