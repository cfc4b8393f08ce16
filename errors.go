// SPDX-License-Identifier: MIT

// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations return these sentinels and tests check them via
// errors.Is. Context (the offending label, the failed structural check) is
// added with fmt.Errorf("ctx: %w", ErrX) at the detection site.
//
// ERROR PRIORITY (enforced by the constructor, covered by tests):
// empty data -> duplicate IDs -> structural violations -> ID count mismatch.

package distmat

import "errors"

var (
	// ErrEmptyMatrix is returned when the data buffer is missing or would be
	// smaller than 1×1. Empty distance matrices are not supported.
	ErrEmptyMatrix = errors.New("distmat: data must be at least 1x1 in size")

	// ErrDuplicateSampleIDs signals that the sample ID sequence contains a
	// repeated label. Every sample must be uniquely addressable.
	ErrDuplicateSampleIDs = errors.New("distmat: sample IDs must be unique")

	// ErrInvalidDistanceMatrix groups the structural invariants: the buffer
	// must be 2-dimensional, square, symmetric, hollow, and contain only
	// finite floating point values. Wraps carry the specific failed check.
	ErrInvalidDistanceMatrix = errors.New("distmat: data must be square, symmetric, hollow, and contain only finite floating point values")

	// ErrSampleIDCountMismatch signals that the number of sample IDs does not
	// match the number of rows/columns in the data buffer.
	ErrSampleIDCountMismatch = errors.New("distmat: number of sample IDs must match the number of rows/columns in the data")

	// ErrMissingSampleID is returned by label-based lookup when the requested
	// sample ID is absent from the matrix. Wraps carry the offending label.
	ErrMissingSampleID = errors.New("distmat: sample ID is not in the distance matrix")

	// ErrCondensedLength signals that a condensed vector's length is not of
	// the form n·(n−1)/2 for any n ≥ 1 and cannot be expanded.
	ErrCondensedLength = errors.New("distmat: condensed vector length is not n*(n-1)/2")
)
