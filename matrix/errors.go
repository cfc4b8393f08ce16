// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All errors are package-level sentinels prefixed with "matrix: " and are
// matched by callers via errors.Is. Context (method, coordinates) is added
// with fmt.Errorf("...: %w", err) at the detection site.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows indicates that a nested-slice input has rows of unequal
	// length and cannot form a rectangular matrix.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)
