// SPDX-License-Identifier: MIT

// Package dmtext - writer.
//
// Write emits exactly the structure Read expects: a header line of
// delimiter-joined sample IDs (led by one delimiter), then one
// newline-terminated line per sample. Round-trip fidelity is a hard
// contract, so distances are rendered with the shortest representation that
// parses back to the identical float64.

package dmtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/distmat"
)

// Write serializes m to w in delimited text form.
// The stream is written sequentially; flushing the internal buffer is the
// only finalization — the codec never closes w.
// Errors: any I/O error from the stream, surfaced on the first failing write
// or on the final flush.
// Complexity: O(N²).
func Write(m *distmat.DistanceMatrix, w io.Writer, opts ...Option) error {
	o := gatherOptions(opts)
	bw := bufio.NewWriter(w)

	// Header: <delim><id1><delim><id2>...<delim><idN>.
	sampleIDs := m.SampleIDs()
	for _, id := range sampleIDs {
		if _, err := bw.WriteString(o.delimiter + id); err != nil {
			return fmt.Errorf("dmtext: write header: %w", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("dmtext: write header: %w", err)
	}

	// Data rows: <id><delim><d1><delim>...<delim><dN>.
	for i, id := range sampleIDs {
		row, err := m.Row(i)
		if err != nil {
			return err // unreachable: i ranges over the matrix's own IDs
		}
		if _, err = bw.WriteString(id); err != nil {
			return fmt.Errorf("dmtext: write row %d: %w", i+1, err)
		}
		for _, v := range row {
			if _, err = bw.WriteString(o.delimiter + formatDistance(v)); err != nil {
				return fmt.Errorf("dmtext: write row %d: %w", i+1, err)
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("dmtext: write row %d: %w", i+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dmtext: flush: %w", err)
	}

	return nil
}

// formatDistance renders v with the minimal digits that round-trip exactly
// through strconv.ParseFloat.
func formatDistance(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
