// SPDX-License-Identifier: MIT

// Package dmtext - streaming reader.
//
// Read parses the delimited text format in a single forward pass over the
// stream: find the header, pre-size an N×N buffer, fill it row by row, and
// hand the result to the distmat constructor. The stream is consumed
// sequentially and linearly — no seeking, no backtracking, no full-file
// buffering. Opening and closing the stream is the caller's responsibility.

package dmtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/distmat"
	"github.com/katalvlaran/distmat/matrix"
)

// Read parses a distance matrix from r.
// Stage 1 (Header): skip blank and comment lines, split the first real line
// on the delimiter to obtain the ordered sample IDs.
// Stage 2 (Fill): for each non-blank line, require exactly N+1 fields, a row
// label matching the header at the current position, and N parseable
// distances; store them into the pre-sized buffer.
// Stage 3 (Gate): hand (buffer, IDs) to distmat.New; structural errors
// propagate unchanged — the codec never re-validates symmetry or diagonal.
// Errors: ErrMissingHeader, ErrMalformedRow, ErrSampleIDMismatch,
// ErrExtraRows, ErrMissingData, the distmat constructor set, and any I/O
// error from the stream.
// Complexity: O(N²) time and memory for the output buffer; O(line) scratch.
func Read(r io.Reader, opts ...Option) (*distmat.DistanceMatrix, error) {
	o := gatherOptions(opts)
	br := bufio.NewReader(r)

	sampleIDs, err := parseHeader(br, o.delimiter)
	if err != nil {
		return nil, err
	}

	n := len(sampleIDs)
	data, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err // unreachable: a found header yields n >= 1
	}

	rowIdx := 0
	vals := make([]float64, n) // reused scratch row
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("dmtext: read: %w", readErr)
		}

		if line := strings.TrimSpace(raw); line != "" {
			if err = fillRow(data, vals, line, sampleIDs, rowIdx, o.delimiter); err != nil {
				return nil, err
			}
			rowIdx++
		}

		if readErr != nil { // io.EOF after consuming any trailing bytes
			break
		}
	}

	if rowIdx != n {
		return nil, fmt.Errorf("expected %d row(s) of data, but found %d: %w",
			n, rowIdx, ErrMissingData)
	}

	return distmat.New(data, sampleIDs)
}

// parseHeader scans forward for the first non-blank, non-comment line and
// splits it into sample IDs. Comments are only meaningful here — once the
// header is found, '#' has no special meaning.
func parseHeader(br *bufio.Reader, delimiter string) ([]string, error) {
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("dmtext: read: %w", readErr)
		}

		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, commentPrefix) {
			// The header leads with one delimiter (the empty corner above the
			// row labels). Whitespace delimiters vanish with TrimSpace; any
			// other delimiter must be stripped explicitly so that reader and
			// writer stay symmetric for every delimiter choice.
			return strings.Split(strings.TrimPrefix(line, delimiter), delimiter), nil
		}

		if readErr != nil {
			return nil, ErrMissingHeader
		}
	}
}

// fillRow validates one data line and writes its distances into row rowIdx.
// vals is caller-provided scratch of length n, overwritten on every call.
func fillRow(data *matrix.Dense, vals []float64, line string, sampleIDs []string, rowIdx int, delimiter string) error {
	n := len(sampleIDs)
	if rowIdx >= n {
		return ErrExtraRows
	}

	tokens := strings.Split(line, delimiter)
	// +1 because the first field carries the sample ID.
	if len(tokens) != n+1 {
		return fmt.Errorf("row number %d has %d value(s), want %d: %w",
			rowIdx+1, len(tokens)-1, n, ErrMalformedRow)
	}

	if tokens[0] != sampleIDs[rowIdx] {
		return fmt.Errorf("row number %d is labeled %q, header says %q: %w",
			rowIdx+1, tokens[0], sampleIDs[rowIdx], ErrSampleIDMismatch)
	}

	for k, tok := range tokens[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return fmt.Errorf("row number %d, value %d: %q is not a number: %w",
				rowIdx+1, k+1, tok, ErrMalformedRow)
		}
		vals[k] = v
	}

	return data.SetRow(rowIdx, vals)
}
