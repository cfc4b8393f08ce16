// SPDX-License-Identifier: MIT

// Package distmat - redundant ↔ condensed format conversion.
//
// The condensed form is the standard N·(N−1)/2-length vector holding only
// the strict upper triangle of a distance matrix, in row-major order of
// increasing (i, j) with i < j. Since a DistanceMatrix is symmetric and
// hollow, the two forms carry identical information.

package distmat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/distmat/matrix"
)

// CondensedForm returns the strict upper triangle of the matrix as a
// vector: element k corresponds to the pair (i, j), i < j, enumerated in
// row-major order. The vector is computed on demand and never cached; a
// 1×1 matrix yields an empty (non-nil) vector.
// Complexity: O(n²) time and O(n²) space for the result.
func (m *DistanceMatrix) CondensedForm() []float64 {
	n := m.data.Rows()
	out := make([]float64, 0, n*(n-1)/2)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = m.data.At(i, j) // indices in range after validation
			out = append(out, v)
		}
	}

	return out
}

// FromCondensed expands a condensed vector back into a full DistanceMatrix,
// the exact inverse of CondensedForm for the given sample IDs.
// Stage 1 (Validate): recover n from len(condensed) == n·(n−1)/2; reject
// lengths that fit no n.
// Stage 2 (Expand): mirror each element into (i,j) and (j,i); the diagonal
// stays zero, so symmetry and hollowness hold by construction.
// Stage 3 (Gate): hand the buffer to New — the single validation gate still
// runs (finiteness, IDs).
// Errors: ErrCondensedLength plus the full New error set.
// Complexity: O(n²).
func FromCondensed(condensed []float64, sampleIDs []string) (*DistanceMatrix, error) {
	n, err := sidesFromCondensedLen(len(condensed))
	if err != nil {
		return nil, err
	}

	data, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err // unreachable: n >= 1 by recovery above
	}

	k := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			_ = data.Set(i, j, condensed[k])
			_ = data.Set(j, i, condensed[k])
			k++
		}
	}

	return New(data, sampleIDs)
}

// sidesFromCondensedLen recovers n from L = n·(n−1)/2 by the quadratic
// formula, then verifies the candidate reproduces L exactly (guards against
// floating-point drift for large L). L == 0 maps to n == 1.
func sidesFromCondensedLen(length int) (int, error) {
	if length == 0 {
		return 1, nil
	}

	n := int(math.Round((1 + math.Sqrt(1+8*float64(length))) / 2))
	if n < 2 || n*(n-1)/2 != length {
		return 0, fmt.Errorf("length %d: %w", length, ErrCondensedLength)
	}

	return n, nil
}
