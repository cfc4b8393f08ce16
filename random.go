// SPDX-License-Identifier: MIT

// Package distmat - random distance matrix generation.
//
// Random draws entries for the strictly-lower triangle only and mirrors them
// upward (M = L + Lᵀ), so symmetry and a zero diagonal hold by construction
// rather than by post-hoc repair.

package distmat

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/distmat/matrix"
)

// RandomOption configures Random. Option constructors panic only on
// nonsensical values (programmer error); all runtime failures surface as
// errors from Random itself.
type RandomOption func(*randomOptions)

// randomOptions carries the gathered Random configuration.
type randomOptions struct {
	rng       *rand.Rand // nil means the shared top-level source
	sampleIDs []string   // nil means default "1".."n"
}

// WithRand makes Random draw from the given source instead of the shared
// top-level one, for reproducible matrices. Panics if rng is nil.
func WithRand(rng *rand.Rand) RandomOption {
	if rng == nil {
		panic("distmat: WithRand: rng must be non-nil")
	}

	return func(o *randomOptions) { o.rng = rng }
}

// WithSampleIDs sets explicit sample IDs for the generated matrix; their
// count must equal n (validated by the constructor gate).
func WithSampleIDs(sampleIDs ...string) RandomOption {
	return func(o *randomOptions) { o.sampleIDs = sampleIDs }
}

// Random returns an n×n DistanceMatrix populated with distances drawn
// independently and uniformly from [0, 1).
// Stage 1 (Prepare): gather options; default IDs are "1".."n" (1-indexed).
// Stage 2 (Draw): fill the strictly-lower triangle, mirroring each draw into
// the upper triangle; the diagonal stays zero.
// Stage 3 (Gate): construct through New so the usual invariants run.
// Errors: ErrEmptyMatrix for n < 1; ErrSampleIDCountMismatch or
// ErrDuplicateSampleIDs when explicit IDs do not fit.
// Complexity: O(n²).
func Random(n int, opts ...RandomOption) (*DistanceMatrix, error) {
	if n < 1 {
		return nil, ErrEmptyMatrix
	}

	var o randomOptions
	for _, opt := range opts {
		opt(&o)
	}

	uniform := rand.Float64
	if o.rng != nil {
		uniform = o.rng.Float64
	}

	data, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err // unreachable: n >= 1 checked above
	}
	var i, j int
	var v float64
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			v = uniform()
			_ = data.Set(i, j, v)
			_ = data.Set(j, i, v)
		}
	}

	ids := o.sampleIDs
	if ids == nil {
		ids = make([]string, n)
		for i = 0; i < n; i++ {
			ids[i] = strconv.Itoa(i + 1)
		}
	}

	return New(data, ids)
}
