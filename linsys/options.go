// SPDX-License-Identifier: MIT

package linsys

// Option customizes an iterative run.
type Option func(*options)

type options struct {
	x0 []float64
}

// WithInitialGuess starts the iteration from x0 instead of the zero vector.
// The slice is copied; its length is checked against the system.
func WithInitialGuess(x0 []float64) Option {
	return func(o *options) {
		o.x0 = append([]float64(nil), x0...)
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
