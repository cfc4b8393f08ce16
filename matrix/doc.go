// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric buffer underlying distance
// matrices.
//
// The matrix package offers:
//
//   - Dense — a row-major, flat-slice matrix of float64 values with
//     bounds-checked accessors that return errors instead of panicking.
//   - No-copy row views (Row) for cheap per-sample access.
//   - Deep cloning (Clone) for independent lifetimes.
//
// The package is intentionally small: it is a storage capability, not a
// linear-algebra library. Structural semantics (symmetry, hollowness,
// label alignment) belong to the distmat package built on top of it.
//
// Complexity quicksheet:
//
//	NewDense: O(r·c) zero-init; At/Set/Row: O(1); Clone/Equal: O(r·c).
package matrix
