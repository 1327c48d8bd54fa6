// Package axes maps named physical parameters onto the axes of a likelihood
// grid and converts between physical coordinates and pixel indices.
//
// A Registry is created for one grid shape. Each parameter is first bound to
// an axis (Register) and then calibrated (Calibrate or SetUnits). The
// calibration fixes the sampling of the axis:
//
//	unit = (max - min) / (points - 1)
//	pixel(value) = round((value - min) / unit)
//	value(pixel) = pixel*unit + min
//
// The two conversions are exact inverses at integer pixels. Lookups are by
// name, so dropping an axis after a reduction never renumbers the others.
//
// Errors:
//
//   - ErrConfiguration: calibration does not match the grid, or a
//     registration conflicts with an earlier one.
//   - ErrUnknownParameter: the name was never registered.
//   - ErrOutOfBounds: a coordinate falls outside the sampled range.
package axes
