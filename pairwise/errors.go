// SPDX-License-Identifier: MIT

// Package pairwise: sentinel error set.

package pairwise

import "errors"

var (
	// ErrNoSeries indicates that no input series were provided; a distance
	// matrix needs at least one sample.
	ErrNoSeries = errors.New("pairwise: at least one series is required")

	// ErrEmptySeries indicates that one of the input series has no values.
	ErrEmptySeries = errors.New("pairwise: series must be non-empty")

	// ErrLengthMismatch indicates that Euclidean received series of unequal
	// length; use DTW for series that differ in length.
	ErrLengthMismatch = errors.New("pairwise: series must have equal length")
)
