// SPDX-License-Identifier: MIT

// Package distmat - the DistanceMatrix core type.
//
// A DistanceMatrix couples a square, symmetric, hollow buffer of finite
// float64 distances with an ordered sequence of unique sample IDs. Row i and
// column i both correspond to sampleIDs[i]. Instances are created only
// through New/NewFromRows (or factories that end in them), which form the
// single validation gate: an invalid matrix is never observable.

package distmat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/distmat/matrix"
)

// Formatting constants for the String summary.
const (
	// maxIDChars bounds the rendered sample ID list before truncation.
	maxIDChars = 80

	// idSeparator joins sample IDs in the summary.
	idSeparator = ", "

	// idEllipsis marks a truncated sample ID list.
	idEllipsis = "..."
)

// DistanceMatrix is a validated, labeled, symmetric, hollow distance matrix.
//
// The buffer is owned exclusively by the instance: accessors expose it
// without copying, but no public operation mutates it after construction.
// sampleIndex is a derived cache keyed to sampleIDs — rebuilt atomically on
// every ID replacement, never persisted or set independently.
type DistanceMatrix struct {
	data        *matrix.Dense  // square symmetric hollow buffer, exclusively owned
	sampleIDs   []string       // ordered unique labels, aligned with rows/cols
	sampleIndex map[string]int // label → position cache, derived from sampleIDs
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*DistanceMatrix)(nil)

// New constructs a DistanceMatrix from a dense buffer and sample IDs.
// Stage 1 (Validate): size → unique IDs → structure → ID count, in that
// order, short-circuiting at the first failure.
// Stage 2 (Commit): take ownership of data (no defensive copy — the caller
// transfers the buffer), copy the ID sequence, and build the label index.
// Errors: ErrEmptyMatrix, ErrDuplicateSampleIDs, ErrInvalidDistanceMatrix,
// ErrSampleIDCountMismatch.
// Complexity: O(n²) validation, O(n) index build.
func New(data *matrix.Dense, sampleIDs []string) (*DistanceMatrix, error) {
	if err := validate(data, sampleIDs); err != nil {
		return nil, err
	}

	// Copy the ID sequence so later caller mutations cannot bypass
	// validation; the buffer itself transfers ownership by contract.
	ids := make([]string, len(sampleIDs))
	copy(ids, sampleIDs)

	return &DistanceMatrix{
		data:        data,
		sampleIDs:   ids,
		sampleIndex: indexIDs(ids),
	}, nil
}

// NewFromRows constructs a DistanceMatrix from nested row slices, copying
// them into a fresh buffer first. Convenience for callers not holding a
// *matrix.Dense. Errors: matrix construction errors (ragged input collapses
// to ErrEmptyMatrix or ErrInvalidDistanceMatrix semantics via validation)
// plus the full New error set.
// Complexity: O(n²).
func NewFromRows(rows [][]float64, sampleIDs []string) (*DistanceMatrix, error) {
	data, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		// An empty or zero-width input is a size violation; ragged rows are a
		// structural one. Map buffer errors onto the constructor taxonomy.
		if errors.Is(err, matrix.ErrInvalidDimensions) {
			return nil, ErrEmptyMatrix
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidDistanceMatrix, err)
	}

	return New(data, sampleIDs)
}

// indexIDs builds the label → position cache. Complexity: O(n).
func indexIDs(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}

// Data returns the underlying buffer. A copy is NOT made: the returned
// value is the canonical storage and must be treated as read-only.
// Complexity: O(1).
func (m *DistanceMatrix) Data() *matrix.Dense { return m.data }

// RedundantForm returns the full N×N buffer — an alias for Data, named for
// symmetry with CondensedForm. No copy is made. Complexity: O(1).
func (m *DistanceMatrix) RedundantForm() *matrix.Dense { return m.data }

// SampleIDs returns a copy of the ordered sample ID sequence. The copy keeps
// the stored sequence immutable from the outside; replace IDs through
// SetSampleIDs so validation runs. Complexity: O(n).
func (m *DistanceMatrix) SampleIDs() []string {
	ids := make([]string, len(m.sampleIDs))
	copy(ids, m.sampleIDs)

	return ids
}

// SetSampleIDs atomically replaces the sample ID sequence.
// The new IDs are re-validated (uniqueness, count) against the existing
// buffer BEFORE any state changes: on error the matrix is untouched; on
// success both the sequence and the derived index are replaced together.
// Errors: ErrDuplicateSampleIDs, ErrSampleIDCountMismatch.
// Complexity: O(n²) (full validation gate) + O(n) index rebuild.
func (m *DistanceMatrix) SetSampleIDs(sampleIDs []string) error {
	if err := validate(m.data, sampleIDs); err != nil {
		return err
	}

	ids := make([]string, len(sampleIDs))
	copy(ids, sampleIDs)
	m.sampleIDs = ids
	m.sampleIndex = indexIDs(ids)

	return nil
}

// NumSamples returns N, the number of samples (rows/columns).
// Complexity: O(1).
func (m *DistanceMatrix) NumSamples() int { return len(m.sampleIDs) }

// Shape returns the buffer dimensions. As the matrix is guaranteed square,
// both values are equal. Complexity: O(1).
func (m *DistanceMatrix) Shape() (rows, cols int) { return m.data.Rows(), m.data.Cols() }

// Size returns the total number of elements, N². Complexity: O(1).
func (m *DistanceMatrix) Size() int { return m.data.Rows() * m.data.Cols() }

// Transpose returns the receiver itself: a symmetric matrix is its own
// transpose, so no allocation or copy is performed. Complexity: O(1).
func (m *DistanceMatrix) Transpose() *DistanceMatrix { return m }

// Copy returns a deep copy: an independently owned buffer and ID sequence.
// Mutating the copy never affects the original. Invariants hold on the
// source, so the copy is rebuilt without re-running the validation gate.
// Complexity: O(n²).
func (m *DistanceMatrix) Copy() *DistanceMatrix {
	ids := make([]string, len(m.sampleIDs))
	copy(ids, m.sampleIDs)

	return &DistanceMatrix{
		data:        m.data.Clone(),
		sampleIDs:   ids,
		sampleIndex: indexIDs(ids),
	}
}

// ByLabel returns the full row of distances for the given sample ID.
// The lookup is O(1) via the derived index; the returned slice is a view
// into the buffer, not a copy, and must be treated as read-only.
// Errors: ErrMissingSampleID, wrapped with the offending label.
func (m *DistanceMatrix) ByLabel(sampleID string) ([]float64, error) {
	i, ok := m.sampleIndex[sampleID]
	if !ok {
		return nil, fmt.Errorf("sample ID %q: %w", sampleID, ErrMissingSampleID)
	}
	row, err := m.data.Row(i)
	if err != nil {
		return nil, err // unreachable after validation; kept for safety
	}

	return row, nil
}

// Row returns the i-th row as a read-only view — the positional counterpart
// of ByLabel. Index semantics (and errors) pass through verbatim to the
// underlying buffer. Complexity: O(1).
func (m *DistanceMatrix) Row(i int) ([]float64, error) { return m.data.Row(i) }

// At returns the distance between samples at positions (i, j), passing the
// indices through verbatim to the underlying buffer. Complexity: O(1).
func (m *DistanceMatrix) At(i, j int) (float64, error) { return m.data.At(i, j) }

// Equal reports whether m and other are equal: same shape, same sample IDs
// in the same order, and element-wise equal buffers. Equality is total — a
// nil argument is simply unequal, never an error or panic.
// Complexity: O(n²) worst case; shape and ID checks bail out earlier.
func (m *DistanceMatrix) Equal(other *DistanceMatrix) bool {
	if other == nil {
		return false
	}
	// Shape first: the cheapest rejection.
	if m.data.Rows() != other.data.Rows() || m.data.Cols() != other.data.Cols() {
		return false
	}
	// IDs next, order-sensitive.
	for i, id := range m.sampleIDs {
		if other.sampleIDs[i] != id {
			return false
		}
	}

	// Buffers last: the O(n²) comparison.
	return m.data.Equal(other.data)
}

// String returns a bounded-width summary: dimensions, the (truncated) sample
// ID list, and the buffer's own rendering. Complexity: O(n²).
func (m *DistanceMatrix) String() string {
	return fmt.Sprintf("%dx%d distance matrix\nSample IDs:\n%s\nData:\n%s",
		m.data.Rows(), m.data.Cols(), m.pprintSampleIDs(), m.data)
}

// pprintSampleIDs joins the IDs and truncates the result at maxIDChars,
// cutting at a separator boundary and appending an ellipsis.
func (m *DistanceMatrix) pprintSampleIDs() string {
	joined := strings.Join(m.sampleIDs, idSeparator)
	if len(joined) <= maxIDChars {
		return joined
	}

	// Keep only whole IDs: cut just past the budget, then drop the last
	// (possibly partial) field.
	fields := strings.Split(joined[:maxIDChars+1], idSeparator)
	fields = fields[:len(fields)-1]

	return strings.Join(fields, idSeparator) + idSeparator + idEllipsis
}
