package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lenscontour/contour"
	"github.com/katalvlaran/lenscontour/grid"
	"github.com/sbinet/npyio/npy"
)

// float64 little-endian descriptors accepted in the npy header.
var float64Descrs = map[string]bool{"<f8": true, "f8": true, "float64": true}

// ReadGrid decodes a .npy stream into a grid.
func ReadGrid(r io.Reader, opts ...grid.Option) (*grid.Grid, error) {
	nr, err := npy.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("ReadGrid: %w", err)
	}
	descr := nr.Header.Descr
	if !float64Descrs[descr.Type] {
		return nil, fmt.Errorf("ReadGrid: dtype %q: %w", descr.Type, ErrUnsupportedDtype)
	}

	var data []float64
	if err = nr.Read(&data); err != nil {
		return nil, fmt.Errorf("ReadGrid: %w", err)
	}
	if descr.Fortran {
		return grid.FromFortran(descr.Shape, data, opts...)
	}

	return grid.FromSlice(descr.Shape, data, opts...)
}

// LoadGrid reads a .npy file.
func LoadGrid(path string, opts ...grid.Option) (*grid.Grid, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("LoadGrid: %w", err)
	}
	defer f.Close()

	g, err := ReadGrid(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadGrid(%s): %w", path, err)
	}

	return g, nil
}

// TitleFromPath derives the display title from a likelihood file name:
// "likelihood_conv.npy" → "conv".
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".npy")
	base = strings.TrimPrefix(base, "likelihood_")
	if base == "" {
		return contour.DefaultTitle
	}

	return base
}

// WriteReduced writes the current reduction of eng as .npy: a 2D reduction
// as a matrix, a 1D one as a vector.
func WriteReduced(w io.Writer, eng *contour.Engine) error {
	red, err := eng.Reduced()
	if err != nil {
		return fmt.Errorf("WriteReduced: %w", err)
	}
	if red.Grid.NDim() == 2 {
		m, err := eng.ReducedMatrix()
		if err != nil {
			return fmt.Errorf("WriteReduced: %w", err)
		}
		return npy.Write(w, m)
	}

	return npy.Write(w, red.Grid.Data())
}
