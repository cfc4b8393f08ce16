// SPDX-License-Identifier: MIT

// Package pairwise builds distance matrices from raw numeric series.
//
// Both builders fill only the strictly-lower triangle and mirror it upward,
// so the resulting matrix is symmetric and hollow by construction and always
// passes the distmat validation gate.
//
//   - Euclidean — L2 distance over equal-length vectors. O(n²·d).
//   - DTW — Dynamic Time Warping distance for series of unequal length,
//     with an optional Sakoe–Chiba window (|i−j| ≤ w) and a slope penalty
//     for non-diagonal steps. The kernel keeps only two DP rows, so memory
//     per pair is O(min(len(a), len(b))). O(n²·L²) overall.
//
// Usage:
//
//	m, err := pairwise.DTW(series, ids, pairwise.WithWindow(10))
//	if err != nil { ... }
//	fmt.Println(m.CondensedForm())
package pairwise
