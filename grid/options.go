// SPDX-License-Identifier: MIT
// Package grid: functional options for the numeric policy.

package grid

// DefaultValidate toggles NaN/Inf/negative rejection on ingestion and Set.
const DefaultValidate = true

// Option mutates grid construction options.
type Option func(*options)

type options struct {
	validate bool
}

// WithValidation enables strict weight validation (the default).
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithNoValidation disables weight validation. Reductions still work, but
// Normalized may then produce NaN for pathological inputs.
func WithNoValidation() Option {
	return func(o *options) { o.validate = false }
}

func gatherOptions(opts ...Option) options {
	o := options{validate: DefaultValidate}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
