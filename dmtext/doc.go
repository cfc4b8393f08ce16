// SPDX-License-Identifier: MIT

// Package dmtext reads and writes distance matrices in delimited text form.
//
// The format (default delimiter is a horizontal tab):
//
//	<delim>a<delim>b
//	a<delim>0.0<delim>1.0
//	b<delim>1.0<delim>0.0
//
// The first non-blank, non-comment line is the header and carries all sample
// IDs. Each subsequent line carries a sample ID followed by that sample's N
// distances. Blank lines are skipped anywhere; comment lines (first
// non-blank character '#') are recognized only before the header.
//
// The reader is a streaming single pass: it never materializes the input in
// memory, line-buffering into a pre-sized N×N buffer instead, so memory
// scales with the matrix (O(N²)), not the file. Structural validation
// (symmetry, hollowness, finiteness) is NOT performed here — the parsed
// buffer is handed to distmat.New, the single validation gate, and any of
// its errors propagate unchanged.
//
// Reader and writer accept the same delimiters symmetrically, so a write
// followed by a read with matching options yields an equal matrix.
package dmtext
