package contour_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lenscontour/axes"
	"github.com/katalvlaran/lenscontour/contour"
	"github.com/katalvlaran/lenscontour/grid"
	"github.com/katalvlaran/lenscontour/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Separable factors of the test likelihood L(x,y,w) = fx(x)·fy(y)·fw(w).
var (
	fx = []float64{1, 2, 3, 2, 1} // x ∈ [0,4], unit 1
	fy = []float64{1, 3, 3, 1}    // y ∈ [-1.5,1.5], unit 1
	fw = []float64{1, 2, 1}       // w ∈ [-2,0], unit 1
)

// separable builds the 5×4×3 engine over fx⊗fy⊗fw.
func separable(t *testing.T, opts ...contour.Option) *contour.Engine {
	t.Helper()
	data := make([]float64, 0, len(fx)*len(fy)*len(fw))
	for _, a := range fx {
		for _, b := range fy {
			for _, c := range fw {
				data = append(data, a*b*c)
			}
		}
	}
	g, err := grid.FromSlice([]int{5, 4, 3}, data)
	require.NoError(t, err)

	reg, err := axes.FromAxes(g.Shape(), map[string]int{"x": 0, "y": 1, "w": 2})
	require.NoError(t, err)
	require.NoError(t, reg.Calibrate("x", 0, 4, 5))
	require.NoError(t, reg.Calibrate("y", -1.5, 1.5, 4))
	require.NoError(t, reg.Calibrate("w", -2, 0, 3))

	eng, err := contour.New(g, reg, opts...)
	require.NoError(t, err)

	return eng
}

// plane builds a 2D engine over data with both axes spanning [0, n-1].
func plane(t *testing.T, rows, cols int, data []float64) *contour.Engine {
	t.Helper()
	g, err := grid.FromSlice([]int{rows, cols}, data)
	require.NoError(t, err)
	reg, err := axes.FromAxes(g.Shape(), map[string]int{"a": 0, "b": 1})
	require.NoError(t, err)
	require.NoError(t, reg.Calibrate("a", 0, float64(rows-1), rows))
	require.NoError(t, reg.Calibrate("b", 0, float64(cols-1), cols))
	eng, err := contour.New(g, reg)
	require.NoError(t, err)

	return eng
}

func TestNew_Validation(t *testing.T) {
	g, _ := grid.New([]int{3, 4})

	_, err := contour.New(nil, nil)
	assert.ErrorIs(t, err, contour.ErrNilGrid)

	reg, _ := axes.FromAxes([]int{3, 4}, map[string]int{"a": 0, "b": 1})
	require.NoError(t, reg.Calibrate("a", 0, 1, 3))
	_, err = contour.New(g, reg)
	assert.ErrorIs(t, err, contour.ErrConfiguration, "uncalibrated axis")

	require.NoError(t, reg.Calibrate("b", 0, 1, 4))
	other, _ := grid.New([]int{4, 3})
	_, err = contour.New(other, reg)
	assert.ErrorIs(t, err, contour.ErrConfiguration, "shape mismatch")

	eng, err := contour.New(g, reg)
	require.NoError(t, err)
	assert.Equal(t, contour.DefaultTitle, eng.Title())
	assert.Equal(t, "a", eng.Label("a"))
}

func TestOptions_TitleAndLabels(t *testing.T) {
	eng := separable(t, contour.WithTitle("conv"), contour.WithLabel("x", "M_200"), nil)
	assert.Equal(t, "conv", eng.Title())
	assert.Equal(t, "M_200", eng.Label("x"))
	assert.Equal(t, "y", eng.Label("y"))
}

func TestReduced_RequiresReduction(t *testing.T) {
	eng := separable(t)

	_, err := eng.Reduced()
	assert.ErrorIs(t, err, contour.ErrNoReduction)
	_, err = eng.LikelihoodValues(level.StandardLevels)
	assert.ErrorIs(t, err, contour.ErrNoReduction)
	_, err = eng.ReducedMatrix()
	assert.ErrorIs(t, err, contour.ErrNoReduction)
	_, err = eng.Maximum(contour.Reduced)
	assert.ErrorIs(t, err, contour.ErrNoReduction)
	_, _, err = eng.Point(0, 0)
	assert.ErrorIs(t, err, contour.ErrNoReduction)
	_, err = eng.Regions(0, contour.Conn8)
	assert.ErrorIs(t, err, contour.ErrNoReduction)
}

func TestMarginalize_Extent(t *testing.T) {
	eng := separable(t)
	require.NoError(t, eng.Marginalize("w"))

	red, err := eng.Reduced()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, red.Parameters)
	require.True(t, red.HasExtent)
	assert.Equal(t, contour.Extent{MinX: 0, MaxX: 4, MinY: -1.5, MaxY: 1.5}, red.Extent)
	assert.Equal(t, []int{5, 4}, red.Grid.Shape())
	assert.InDelta(t, 1.0, red.Grid.Sum(), 1e-12)

	require.NoError(t, eng.Marginalize("x"))
	red, _ = eng.Reduced()
	assert.Equal(t, []string{"y", "w"}, red.Parameters)
	assert.Equal(t, contour.Extent{MinX: -1.5, MaxX: 1.5, MinY: -2, MaxY: 0}, red.Extent)

	assert.ErrorIs(t, eng.Marginalize("nope"), contour.ErrUnknownParameter)
}

func TestReduced_ReturnsCopy(t *testing.T) {
	eng := separable(t)
	require.NoError(t, eng.Marginalize("w"))
	before, err := eng.LikelihoodValues([]float64{0.5})
	require.NoError(t, err)

	red, err := eng.Reduced()
	require.NoError(t, err)
	require.NoError(t, red.Grid.Set(100, 0, 0))
	red.Parameters[0] = "w"

	after, err := eng.LikelihoodValues([]float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	fresh, err := eng.Reduced()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, fresh.Parameters)
	assert.InDelta(t, 1.0, fresh.Grid.Sum(), 1e-12)

	best, err := eng.Maximum(contour.Reduced)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 2, "y": -0.5}, best)

	full := eng.Grid()
	require.NoError(t, full.Set(1e6, 0, 0, 0))
	v, err := eng.Grid().At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestExtent_FollowsSampledRange(t *testing.T) {
	g, err := grid.FromSlice([]int{3, 4}, []float64{1, 2, 1, 1, 2, 4, 2, 1, 1, 2, 1, 1})
	require.NoError(t, err)
	reg, err := axes.FromAxes(g.Shape(), map[string]int{"a": 0, "b": 1})
	require.NoError(t, err)
	require.NoError(t, reg.Calibrate("a", 0, 2, 3))
	// The declared max of 10 disagrees with 1+0.5*(4-1).
	require.NoError(t, reg.SetUnits("b", 1, 10, 0.5))
	eng, err := contour.New(g, reg)
	require.NoError(t, err)

	require.NoError(t, eng.Marginalize("a"))
	red, err := eng.Reduced()
	require.NoError(t, err)
	assert.Equal(t, contour.Extent{MinX: 0, MaxX: 2, MinY: 1, MaxY: 2.5}, red.Extent)
	assert.ErrorIs(t, eng.Slice("b", 3), contour.ErrOutOfBounds)
}

func TestSlice_MatchesMarginalizeOnSeparable(t *testing.T) {
	marg := separable(t)
	require.NoError(t, marg.Marginalize("w"))
	mred, _ := marg.Reduced()

	for _, w := range []float64{-2, -1, 0, -0.6} {
		sl := separable(t)
		require.NoError(t, sl.Slice("w", w))
		sred, _ := sl.Reduced()
		assert.Equal(t, mred.Parameters, sred.Parameters)
		if diff := cmp.Diff(mred.Grid.Data(), sred.Grid.Data(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Fatalf("slice w=%g differs from marginal (-marg +slice):\n%s", w, diff)
		}
	}
}

func TestSlice_Errors(t *testing.T) {
	eng := separable(t)
	assert.ErrorIs(t, eng.Slice("w", 100), contour.ErrOutOfBounds)
	assert.ErrorIs(t, eng.Slice("w", -2.6), contour.ErrOutOfBounds)
	assert.ErrorIs(t, eng.Slice("nope", 0), contour.ErrUnknownParameter)

	g, _ := grid.FromSlice([]int{3}, []float64{1, 2, 1})
	reg, _ := axes.FromAxes([]int{3}, map[string]int{"z": 0})
	require.NoError(t, reg.Calibrate("z", 0, 2, 3))
	line, err := contour.New(g, reg)
	require.NoError(t, err)
	assert.ErrorIs(t, line.Slice("z", 1), contour.ErrConfiguration)
}

func TestMarginalize_TwoDimensionalIsIdempotent(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	eng := plane(t, 2, 3, data)

	require.NoError(t, eng.Marginalize("a"))
	first, _ := eng.Reduced()
	require.NoError(t, eng.Marginalize("b"))
	second, _ := eng.Reduced()

	assert.Equal(t, []string{"a", "b"}, first.Parameters)
	assert.Equal(t, first.Parameters, second.Parameters)
	assert.Equal(t, first.Grid.Data(), second.Grid.Data())
	assert.InDeltaSlice(t, []float64{1.0 / 21, 2.0 / 21, 3.0 / 21, 4.0 / 21, 5.0 / 21, 6.0 / 21}, first.Grid.Data(), 1e-15)
	// The full grid is left untouched.
	assert.Equal(t, data, eng.Grid().Data())
}

func TestReducedMatrix(t *testing.T) {
	eng := separable(t)
	require.NoError(t, eng.Marginalize("w"))

	m, err := eng.ReducedMatrix()
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 4, c)
	// fx⊗fy / (9·8).
	assert.InDelta(t, 9.0/72, m.At(2, 1), 1e-15)
	assert.InDelta(t, 1.0/72, m.At(0, 0), 1e-15)

	// The matrix is a copy.
	m.Set(0, 0, 42)
	red, _ := eng.Reduced()
	v, _ := red.Grid.At(0, 0)
	assert.InDelta(t, 1.0/72, v, 1e-15)
}

func TestReducedMatrix_OneDimensional(t *testing.T) {
	eng := plane(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, eng.Slice("a", 1))
	_, err := eng.ReducedMatrix()
	assert.ErrorIs(t, err, contour.ErrNotTwoDimensional)
}
