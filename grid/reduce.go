// SPDX-License-Identifier: MIT
// Package grid: reductions.
//
// Purpose:
//   - Collapse one axis (SumAxis), keep one axis (SumAllBut), fix one axis
//     (SliceAxis), or rescale to unit mass (Normalized).
//
// Layout note:
//   - For an axis a the C-ordered buffer factors as [outer][n][inner] with
//     outer = Π shape[:a], n = shape[a], inner = Π shape[a+1:]. All kernels
//     below walk that factorisation in a fixed order, so results are
//     bit-for-bit reproducible.

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opNormalized = "Normalized"
	opSumAxis    = "SumAxis"
	opSumAllBut  = "SumAllBut"
	opSliceAxis  = "SliceAxis"
)

func reduceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// factor splits the buffer around axis into (outer, n, inner).
func (g *Grid) factor(axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for d := 0; d < axis; d++ {
		outer *= g.shape[d]
	}
	for d := axis + 1; d < len(g.shape); d++ {
		inner *= g.shape[d]
	}

	return outer, g.shape[axis], inner
}

// without returns shape with axis removed.
func (g *Grid) without(axis int) []int {
	out := make([]int, 0, len(g.shape)-1)
	out = append(out, g.shape[:axis]...)

	return append(out, g.shape[axis+1:]...)
}

// Normalized returns a copy scaled so that its weights sum to 1.
//
// Errors:
//   - ErrZeroSum when the total weight is zero.
func (g *Grid) Normalized() (*Grid, error) {
	total := g.Sum()
	if total == 0 {
		return nil, reduceErrorf(opNormalized, ErrZeroSum)
	}
	out := g.Clone()
	floats.Scale(1/total, out.data)

	return out, nil
}

// SumAxis sums the grid over axis, returning an (N-1)-D grid. The result is
// not normalised.
//
// Errors:
//   - ErrBadAxis when axis is invalid or the grid is 1D.
func (g *Grid) SumAxis(axis int) (*Grid, error) {
	if axis < 0 || axis >= len(g.shape) || len(g.shape) < 2 {
		return nil, reduceErrorf(opSumAxis, ErrBadAxis)
	}
	outer, n, inner := g.factor(axis)
	out, err := New(g.without(axis), WithNoValidation())
	if err != nil {
		return nil, reduceErrorf(opSumAxis, err)
	}
	out.validate = g.validate

	var o, k, i, src, dst int
	for o = 0; o < outer; o++ {
		dst = o * inner
		for k = 0; k < n; k++ {
			src = (o*n + k) * inner
			for i = 0; i < inner; i++ {
				out.data[dst+i] += g.data[src+i]
			}
		}
	}

	return out, nil
}

// SumAllBut sums over every axis except axis and returns the resulting
// 1D profile of length shape[axis]. For a 1D grid it is a copy of the data.
func (g *Grid) SumAllBut(axis int) ([]float64, error) {
	if axis < 0 || axis >= len(g.shape) {
		return nil, reduceErrorf(opSumAllBut, ErrBadAxis)
	}
	outer, n, inner := g.factor(axis)
	out := make([]float64, n)

	var o, k, src int
	for o = 0; o < outer; o++ {
		for k = 0; k < n; k++ {
			src = (o*n + k) * inner
			out[k] += floats.Sum(g.data[src : src+inner])
		}
	}

	return out, nil
}

// SliceAxis extracts the (N-1)-D hyperplane at index along axis. The result
// is not normalised.
//
// Errors:
//   - ErrBadAxis when axis is invalid or the grid is 1D.
//   - ErrOutOfRange when index is outside [0, shape[axis]).
func (g *Grid) SliceAxis(axis, index int) (*Grid, error) {
	if axis < 0 || axis >= len(g.shape) || len(g.shape) < 2 {
		return nil, reduceErrorf(opSliceAxis, ErrBadAxis)
	}
	if index < 0 || index >= g.shape[axis] {
		return nil, reduceErrorf(opSliceAxis, ErrOutOfRange)
	}
	outer, n, inner := g.factor(axis)
	out, err := New(g.without(axis), WithNoValidation())
	if err != nil {
		return nil, reduceErrorf(opSliceAxis, err)
	}
	out.validate = g.validate

	for o := 0; o < outer; o++ {
		copy(out.data[o*inner:(o+1)*inner], g.data[(o*n+index)*inner:(o*n+index+1)*inner])
	}

	return out, nil
}
