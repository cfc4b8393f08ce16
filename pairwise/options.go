// SPDX-License-Identifier: MIT

// Package pairwise: functional configuration for the DTW builder.

package pairwise

// Defaults for the DTW kernel.
const (
	// DefaultWindow disables the Sakoe–Chiba band: any |i−j| deviation is
	// allowed. A positive window w restricts comparisons to |i−j| ≤ w.
	DefaultWindow = 0

	// DefaultSlopePenalty adds no cost to insertion/deletion steps.
	DefaultSlopePenalty = 0.0
)

// Option mutates DTW options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options carries the gathered DTW configuration.
type options struct {
	window       int
	slopePenalty float64
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{window: DefaultWindow, slopePenalty: DefaultSlopePenalty}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWindow constrains DTW to the Sakoe–Chiba band |i−j| ≤ w.
// Zero or negative w means no constraint.
func WithWindow(w int) Option {
	return func(o *options) { o.window = w }
}

// WithSlopePenalty adds a cost to non-diagonal (insertion/deletion) steps,
// discouraging excessive stretching. Panics on a negative penalty.
func WithSlopePenalty(p float64) Option {
	if p < 0 {
		panic("pairwise: WithSlopePenalty: penalty must be non-negative")
	}

	return func(o *options) { o.slopePenalty = p }
}
