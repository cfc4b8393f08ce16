// Package distmat models labeled, symmetric, hollow distance matrices —
// pairwise dissimilarities between a finite set of named samples — together
// with a compact delimited text format for them.
//
// 🚀 What is distmat?
//
//	A small, strict library that brings together:
//		• DistanceMatrix: a validated square float64 buffer + ordered sample IDs
//		• O(1) label-based row access layered over positional access
//		• Redundant (N×N) ↔ condensed (N·(N−1)/2 vector) conversions
//		• A streaming reader/writer for delimited text (dmtext subpackage)
//		• Distance-matrix builders from raw series (pairwise subpackage)
//
// ✨ Why choose distmat?
//
//   - One validation gate – every instance is square, symmetric, hollow and
//     finite, or it does not exist
//   - Rock-solid errors – package-level sentinels, matched with errors.Is
//   - Pure Go core – the library performs no I/O beyond caller-supplied streams
//
// Everything is organized under a small set of packages:
//
//	distmat      — the DistanceMatrix core (this package)
//	matrix/      — dense row-major float64 buffer storage
//	dmtext/      — streaming delimited-text reader & writer
//	pairwise/    — Euclidean & DTW distance-matrix builders
//	cmd/distmat/ — command-line front end
//
// Quick example:
//
//	m, err := distmat.NewFromRows(
//		[][]float64{{0, 1}, {1, 0}},
//		[]string{"a", "b"},
//	)
//	if err != nil { ... }
//	row, _ := m.ByLabel("a") // []float64{0, 1}
//
// All public operations are read-only with respect to the buffer; the only
// mutator, SetSampleIDs, must be externally synchronized if an instance is
// shared across goroutines.
package distmat
