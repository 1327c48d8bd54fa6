// SPDX-License-Identifier: MIT
package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lenscontour/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumAxis(t *testing.T) {
	// 2×3×2 grid holding 0..11.
	g, err := grid.FromSlice([]int{2, 3, 2}, seq(12))
	require.NoError(t, err)

	cases := []struct {
		axis  int
		shape []int
		want  []float64
	}{
		{0, []int{3, 2}, []float64{6, 8, 10, 12, 14, 16}},
		{1, []int{2, 2}, []float64{6, 9, 24, 27}},
		{2, []int{2, 3}, []float64{1, 5, 9, 13, 17, 21}},
	}
	for _, tc := range cases {
		out, err := g.SumAxis(tc.axis)
		require.NoError(t, err, "axis %d", tc.axis)
		assert.Equal(t, tc.shape, out.Shape(), "axis %d", tc.axis)
		assert.Equal(t, tc.want, out.Data(), "axis %d", tc.axis)
	}

	_, err = g.SumAxis(3)
	assert.ErrorIs(t, err, grid.ErrBadAxis)
	line, _ := grid.FromSlice([]int{3}, seq(3))
	_, err = line.SumAxis(0)
	assert.ErrorIs(t, err, grid.ErrBadAxis)
}

func TestSumAllBut(t *testing.T) {
	g, err := grid.FromSlice([]int{2, 3, 2}, seq(12))
	require.NoError(t, err)

	p, err := g.SumAllBut(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{14, 22, 30}, p)

	p, err = g.SumAllBut(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{15, 51}, p)

	line, _ := grid.FromSlice([]int{3}, []float64{1, 2, 3})
	p, err = line.SumAllBut(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, p)

	_, err = g.SumAllBut(-1)
	assert.ErrorIs(t, err, grid.ErrBadAxis)
}

func TestSliceAxis(t *testing.T) {
	g, err := grid.FromSlice([]int{2, 3, 2}, seq(12))
	require.NoError(t, err)

	s, err := g.SliceAxis(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, s.Shape())
	assert.Equal(t, []float64{4, 5, 10, 11}, s.Data())

	s, err = g.SliceAxis(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 7, 8, 9, 10, 11}, s.Data())

	_, err = g.SliceAxis(1, 3)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.SliceAxis(5, 0)
	assert.ErrorIs(t, err, grid.ErrBadAxis)
}

func TestNormalized(t *testing.T) {
	g, _ := grid.FromSlice([]int{2, 2}, []float64{1, 1, 2, 4})
	n, err := g.Normalized()
	require.NoError(t, err)
	want := []float64{0.125, 0.125, 0.25, 0.5}
	if diff := cmp.Diff(want, n.Data(), cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("normalized mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1.0, n.Sum(), 1e-12)
	// Source untouched.
	assert.Equal(t, 8.0, g.Sum())

	zero, _ := grid.New([]int{3})
	_, err = zero.Normalized()
	assert.ErrorIs(t, err, grid.ErrZeroSum)
}
