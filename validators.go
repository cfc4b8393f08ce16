// SPDX-License-Identifier: MIT

// Package distmat: the single source of truth for structural validation.
// validate is invoked from every construction path and from SetSampleIDs;
// no other component (including the dmtext codec) re-implements these checks.
//
// Determinism:
//   - Checks run in a fixed order (size → uniqueness → structure → count) so
//     that an input violating several invariants always reports the same one.
//   - Symmetry and hollowness are exact comparisons: distances are stored
//     verbatim, so a valid matrix round-trips without any epsilon policy.

package distmat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/distmat/matrix"
)

// validate runs the full invariant suite against a candidate (data, IDs)
// pair. It accepts arguments instead of inspecting instance state so that no
// invalid DistanceMatrix is ever observable, even partially constructed.
// Complexity: O(n²) dominated by the symmetry scan.
func validate(data *matrix.Dense, sampleIDs []string) error {
	// Size: nil or sub-1×1 data is rejected before anything else.
	if data == nil || data.Rows() < 1 || data.Cols() < 1 {
		return ErrEmptyMatrix
	}

	// Uniqueness: every sample ID must occur exactly once.
	if err := validateUniqueIDs(sampleIDs); err != nil {
		return err
	}

	// Structure: square, symmetric, hollow, finite — reported jointly.
	if err := validateStructure(data); err != nil {
		return err
	}

	// Count: IDs must align one-to-one with rows/columns.
	if len(sampleIDs) != data.Rows() {
		return fmt.Errorf("got %d sample IDs for %d rows: %w",
			len(sampleIDs), data.Rows(), ErrSampleIDCountMismatch)
	}

	return nil
}

// validateUniqueIDs reports ErrDuplicateSampleIDs on the first repeated
// label. Complexity: O(n) time and space.
func validateUniqueIDs(sampleIDs []string) error {
	seen := make(map[string]struct{}, len(sampleIDs))
	for _, id := range sampleIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("sample ID %q occurs more than once: %w", id, ErrDuplicateSampleIDs)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validateStructure checks squareness, symmetry, hollowness and finiteness,
// short-circuiting at the first violation. All failures collapse to
// ErrInvalidDistanceMatrix; the wrap names the specific check for diagnostics.
// Complexity: O(n²), upper triangle plus diagonal.
func validateStructure(data *matrix.Dense) error {
	n := data.Rows()
	if n != data.Cols() {
		return fmt.Errorf("not square (%dx%d): %w", n, data.Cols(), ErrInvalidDistanceMatrix)
	}

	var i, j int
	var vij, vji float64
	for i = 0; i < n; i++ {
		// Hollow: the diagonal must be exactly zero.
		vij, _ = data.At(i, i)
		if vij != 0 {
			return fmt.Errorf("nonzero diagonal at (%d,%d): %w", i, i, ErrInvalidDistanceMatrix)
		}
		// Symmetric & finite: scan the strict upper triangle once.
		// A NaN entry fails the symmetry comparison (NaN != NaN), so the
		// explicit finiteness check only needs to catch ±Inf pairs.
		for j = i + 1; j < n; j++ {
			vij, _ = data.At(i, j)
			vji, _ = data.At(j, i)
			if vij != vji {
				return fmt.Errorf("asymmetric at (%d,%d): %w", i, j, ErrInvalidDistanceMatrix)
			}
			if math.IsInf(vij, 0) || math.IsNaN(vij) {
				return fmt.Errorf("non-finite value at (%d,%d): %w", i, j, ErrInvalidDistanceMatrix)
			}
		}
	}

	return nil
}
