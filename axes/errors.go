package axes

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates a calibration/grid-shape mismatch or an
	// inconsistent registration. Fatal, never retried.
	ErrConfiguration = errors.New("axes: configuration error")

	// ErrUnknownParameter indicates a parameter name that is not registered.
	ErrUnknownParameter = errors.New("axes: unknown parameter")

	// ErrOutOfBounds indicates a coordinate outside the sampled range.
	ErrOutOfBounds = errors.New("axes: coordinate out of bounds")

	// ErrNotCalibrated indicates a conversion on a registered but uncalibrated
	// parameter. It wraps ErrConfiguration so either sentinel matches.
	ErrNotCalibrated = fmt.Errorf("%w: parameter not calibrated", ErrConfiguration)
)
