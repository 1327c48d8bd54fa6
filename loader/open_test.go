package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lenscontour/config"
	"github.com/katalvlaran/lenscontour/contour"
	"github.com/katalvlaran/lenscontour/grid"
	"github.com/katalvlaran/lenscontour/internal/logging"
	"github.com/katalvlaran/lenscontour/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsYAML = `
likelihood: likelihood_lens.npy
parameters:
  - {name: x, axis: 0, min: 0, max: 2, num_points: 3, label: "M"}
  - {name: y, axis: 1, min: -1, max: 1, num_points: 3}
  - {name: w, axis: 2, min: -2, max: 0, unit: 1}
reduce: {mode: marginalize, parameter: w}
`

// cube is a 3×3×2 likelihood peaking at (1, 1, *).
func cube() []float64 {
	out := make([]float64, 0, 18)
	f := []float64{1, 4, 1}
	for _, a := range f {
		for _, b := range f {
			out = append(out, a*b, 2*a*b)
		}
	}

	return out
}

func writeFixture(t *testing.T, settings string) string {
	t.Helper()
	dir := t.TempDir()
	raw := npyFile(t, "<f8", false, []int{3, 3, 2}, cube())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "likelihood_lens.npy"), raw, 0o600))
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settings), 0o600))

	return path
}

func TestOpen(t *testing.T) {
	var logged []string
	prev := logging.Logf
	logging.SetLogger(func(format string, _ ...interface{}) { logged = append(logged, format) })
	t.Cleanup(func() { logging.SetLogger(prev) })

	s, err := config.Load(writeFixture(t, settingsYAML))
	require.NoError(t, err)
	eng, err := loader.Open(s)
	require.NoError(t, err)
	assert.NotEmpty(t, logged)

	assert.Equal(t, "lens", eng.Title())
	assert.Equal(t, "M", eng.Label("x"))

	red, err := eng.Reduced()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, red.Parameters)
	assert.Equal(t, contour.Extent{MinX: 0, MaxX: 2, MinY: -1, MaxY: 1}, red.Extent)

	best, err := eng.Maximum(contour.Full)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 1, "y": 0, "w": -1}, best)
}

func TestOpen_Slice(t *testing.T) {
	s, err := config.Load(writeFixture(t, settingsYAML))
	require.NoError(t, err)
	s.Reduce = config.Reduce{Mode: config.ReduceSlice, Parameter: "x", Value: 0.9}

	eng, err := loader.Open(s)
	require.NoError(t, err)
	red, _ := eng.Reduced()
	assert.Equal(t, []string{"y", "w"}, red.Parameters)
}

func TestOpen_Errors(t *testing.T) {
	s, err := config.Load(writeFixture(t, settingsYAML))
	require.NoError(t, err)

	s.Reduce = config.Reduce{Mode: config.ReduceNone}
	_, err = loader.Open(s)
	assert.ErrorIs(t, err, loader.ErrNoReduction)

	s.Reduce = config.Reduce{Mode: config.ReduceSlice, Parameter: "w", Value: 100}
	_, err = loader.Open(s)
	assert.ErrorIs(t, err, contour.ErrOutOfBounds)

	s.Parameters[0].NumPoints = 4
	s.Reduce = config.Reduce{Mode: config.ReduceMarginalize, Parameter: "w"}
	_, err = loader.Open(s)
	assert.ErrorIs(t, err, contour.ErrConfiguration)

	s.Parameters = s.Parameters[:2]
	_, err = loader.Open(s)
	assert.ErrorIs(t, err, contour.ErrConfiguration)

	s.Likelihood = "missing.npy"
	_, err = loader.Open(s)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyReduction_NoneOnPlane(t *testing.T) {
	g, err := grid.FromSlice([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	s, err := config.Parse([]byte(`
likelihood: p.npy
parameters:
  - {name: a, axis: 0, min: 0, max: 1, num_points: 2}
  - {name: b, axis: 1, min: 0, max: 1, num_points: 2}
`))
	require.NoError(t, err)

	eng, err := loader.Build(g, s)
	require.NoError(t, err)
	require.NoError(t, loader.ApplyReduction(eng, s.Reduce))
	red, err := eng.Reduced()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, red.Grid.Data(), 1e-15)
}

func TestWriteReduced_RoundTrip(t *testing.T) {
	s, err := config.Load(writeFixture(t, settingsYAML))
	require.NoError(t, err)
	eng, err := loader.Open(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteReduced(&buf, eng))
	g, err := loader.ReadGrid(&buf)
	require.NoError(t, err)

	red, _ := eng.Reduced()
	assert.Equal(t, red.Grid.Shape(), g.Shape())
	assert.InDeltaSlice(t, red.Grid.Data(), g.Data(), 1e-15)

	// 1D reductions are written as vectors.
	plane, err := grid.FromSlice([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	ps, err := config.Parse([]byte(`
likelihood: p.npy
parameters:
  - {name: a, axis: 0, min: 0, max: 1, num_points: 2}
  - {name: b, axis: 1, min: 0, max: 1, num_points: 3}
`))
	require.NoError(t, err)
	line, err := loader.Build(plane, ps)
	require.NoError(t, err)
	require.NoError(t, line.Slice("a", 1))

	buf.Reset()
	require.NoError(t, loader.WriteReduced(&buf, line))
	g, err = loader.ReadGrid(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, g.Shape())
	assert.InDeltaSlice(t, []float64{4.0 / 15, 5.0 / 15, 6.0 / 15}, g.Data(), 1e-15)
}
