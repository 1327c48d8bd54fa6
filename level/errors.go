package level

import "errors"

var (
	// ErrNotNormalized indicates that the probabilities passed to Search do not
	// sum to 1 within the normalisation tolerance.
	ErrNotNormalized = errors.New("level: probabilities are not normalized")

	// ErrBadLevel indicates a target level outside the open interval (0,1).
	ErrBadLevel = errors.New("level: level must be in (0,1)")

	// ErrBadCount indicates a requested output count k outside [1, len(samples)].
	ErrBadCount = errors.New("level: invalid output count")

	// ErrEmpty indicates empty input samples.
	ErrEmpty = errors.New("level: empty input")

	// ErrLengthMismatch indicates parameter and likelihood slices of different length.
	ErrLengthMismatch = errors.New("level: length mismatch")

	// ErrZeroMass indicates a curve whose likelihoods sum to zero.
	ErrZeroMass = errors.New("level: likelihood sums to zero")

	// ErrNegativeWeight indicates a negative or non-finite likelihood sample.
	ErrNegativeWeight = errors.New("level: negative or non-finite likelihood")

	// ErrBadOption indicates invalid search parameters built without the
	// panicking WithX constructors (e.g. decoded from a settings file).
	ErrBadOption = errors.New("level: invalid search parameters")
)
