// SPDX-License-Identifier: MIT

// Package pairwise - distance-matrix builders.

package pairwise

import (
	"math"
	"strconv"

	"github.com/katalvlaran/distmat"
	"github.com/katalvlaran/distmat/matrix"
)

// Euclidean returns the matrix of L2 distances between the given series,
// which must all share the same positive length d.
// Errors: ErrNoSeries, ErrEmptySeries, ErrLengthMismatch, plus the distmat
// constructor set (e.g. duplicate or miscounted sample IDs).
// Complexity: O(n²·d).
func Euclidean(series [][]float64, sampleIDs []string) (*distmat.DistanceMatrix, error) {
	if err := checkSeries(series); err != nil {
		return nil, err
	}
	d := len(series[0])
	for _, s := range series {
		if len(s) != d {
			return nil, ErrLengthMismatch
		}
	}

	return build(len(series), sampleIDs, func(i, j int) float64 {
		var sum, diff float64
		for k := 0; k < d; k++ {
			diff = series[i][k] - series[j][k]
			sum += diff * diff
		}

		return math.Sqrt(sum)
	})
}

// DTW returns the matrix of Dynamic Time Warping distances between the
// given series, which may differ in length. The kernel keeps two DP rows
// per pair, so scratch memory is O(max series length).
//
// A window (WithWindow) that makes some pair unalignable yields a +Inf
// distance, which the distmat validation gate then rejects as non-finite;
// choose w ≥ the largest length difference to stay feasible.
// Errors: ErrNoSeries, ErrEmptySeries, plus the distmat constructor set.
// Complexity: O(n²·L²) for series of length ≤ L.
func DTW(series [][]float64, sampleIDs []string, opts ...Option) (*distmat.DistanceMatrix, error) {
	if err := checkSeries(series); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	return build(len(series), sampleIDs, func(i, j int) float64 {
		return dtwDistance(series[i], series[j], o.window, o.slopePenalty)
	})
}

// checkSeries rejects an empty collection and any empty member.
func checkSeries(series [][]float64) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	for _, s := range series {
		if len(s) == 0 {
			return ErrEmptySeries
		}
	}

	return nil
}

// build fills the strictly-lower triangle with dist(i,j), mirrors it upward
// and constructs the matrix through the distmat gate. Nil sampleIDs default
// to "1".."n", matching distmat.Random.
func build(n int, sampleIDs []string, dist func(i, j int) float64) (*distmat.DistanceMatrix, error) {
	data, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err // unreachable: n >= 1 after checkSeries
	}

	var i, j int
	var v float64
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			v = dist(i, j)
			_ = data.Set(i, j, v)
			_ = data.Set(j, i, v)
		}
	}

	if sampleIDs == nil {
		sampleIDs = make([]string, n)
		for i = 0; i < n; i++ {
			sampleIDs[i] = strconv.Itoa(i + 1)
		}
	}

	return distmat.New(data, sampleIDs)
}

// dtwDistance computes the DTW distance between a and b with a rolling
// two-row DP. window <= 0 disables the Sakoe–Chiba constraint.
func dtwDistance(a, b []float64, window int, penalty float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	// prev holds DP row i-1, curr row i; index 0 is the alignment boundary.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var cost, best float64
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if window > 0 && absInt(i-j) > window {
				curr[j] = inf
				continue
			}
			cost = math.Abs(a[i-1] - b[j-1])
			best = min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	// After the final swap, prev holds row n.
	return prev[m]
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
