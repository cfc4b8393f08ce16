// SPDX-License-Identifier: MIT

// Package dmtext: sentinel error set for parse-time failures.
// Structural errors (symmetry, hollowness, finiteness, ID uniqueness) are
// NOT defined here: they belong to distmat and propagate through Read
// unchanged. Every sentinel below describes a defect of the text stream
// itself. Context (row numbers, expected vs actual counts) is added via
// fmt.Errorf("...: %w", err) wraps; match with errors.Is.

package dmtext

import "errors"

var (
	// ErrMissingHeader is returned when the stream ends before a non-blank,
	// non-comment header line carrying the sample IDs is found.
	ErrMissingHeader = errors.New("dmtext: could not find a header line containing sample IDs")

	// ErrMalformedRow is returned when a data row does not split into exactly
	// one sample ID plus N distances, or a distance field fails to parse as a
	// floating point number. Wraps carry the 1-based row number.
	ErrMalformedRow = errors.New("dmtext: malformed data row")

	// ErrSampleIDMismatch is returned when a data row's leading sample ID does
	// not equal the header ID at that row position.
	ErrSampleIDMismatch = errors.New("dmtext: mismatched sample IDs between header and row labels")

	// ErrExtraRows is returned when a non-blank data line appears after all N
	// rows announced by the header have been filled.
	ErrExtraRows = errors.New("dmtext: extra rows without corresponding sample IDs in the header")

	// ErrMissingData is returned when the stream ends before all N rows are
	// filled. Wraps carry the expected and actual row counts.
	ErrMissingData = errors.New("dmtext: missing data rows")
)
