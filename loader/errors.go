package loader

import "errors"

var (
	// ErrUnsupportedDtype indicates a .npy payload other than little-endian float64.
	ErrUnsupportedDtype = errors.New("loader: unsupported npy dtype")

	// ErrNoReduction indicates a settings file without a reduction applied to a
	// grid of more than two dimensions.
	ErrNoReduction = errors.New("loader: grid has more than two axes and no reduction was configured")
)
