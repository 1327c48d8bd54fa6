// Package loader connects persisted likelihood grids and settings files to
// the contour engine.
//
// Likelihood grids are NumPy .npy files with a little-endian float64
// payload, in C or Fortran order. Open reads the file named by a
// config.Settings, builds and calibrates the axes.Registry, applies the
// configured reduction and returns a ready contour.Engine. WriteReduced
// exports the current reduction back to .npy for a rendering layer.
package loader
