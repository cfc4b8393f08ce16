// SPDX-License-Identifier: MIT

package distmat_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distmat"
	"github.com/katalvlaran/distmat/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// mustMatrix builds a valid DistanceMatrix or fails the test.
func mustMatrix(t *testing.T, rows [][]float64, ids []string) *distmat.DistanceMatrix {
	t.Helper()
	m, err := distmat.New(mustDense(t, rows), ids)
	require.NoError(t, err)

	return m
}

// threeByThree is the canonical fixture used across tests.
func threeByThree(t *testing.T) *distmat.DistanceMatrix {
	t.Helper()

	return mustMatrix(t, [][]float64{
		{0, 0.5, 2},
		{0.5, 0, 3.5},
		{2, 3.5, 0},
	}, []string{"a", "b", "c"})
}

// TestNew_Valid verifies construction for N = 1 and N = 3 and that the
// committed buffer equals the input with an all-zero diagonal.
func TestNew_Valid(t *testing.T) {
	one, err := distmat.New(mustDense(t, [][]float64{{0}}), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 1, one.NumSamples())

	m := threeByThree(t)
	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 9, m.Size())
	assert.Equal(t, []string{"a", "b", "c"}, m.SampleIDs())

	for i := 0; i < 3; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		assert.Zero(t, v, "diagonal must be hollow")
	}
}

// TestNew_InvariantOrder walks every rejection class of the constructor and
// pins the short-circuit order: size → uniqueness → structure → count.
func TestNew_InvariantOrder(t *testing.T) {
	square := [][]float64{{0, 1}, {1, 0}}

	t.Run("nil data", func(t *testing.T) {
		_, err := distmat.New(nil, []string{"a"})
		assert.ErrorIs(t, err, distmat.ErrEmptyMatrix)
	})

	t.Run("duplicate IDs", func(t *testing.T) {
		_, err := distmat.New(mustDense(t, square), []string{"a", "a"})
		assert.ErrorIs(t, err, distmat.ErrDuplicateSampleIDs)
	})

	t.Run("duplicate IDs win over bad structure", func(t *testing.T) {
		// Asymmetric AND duplicated: uniqueness is checked first.
		_, err := distmat.New(mustDense(t, [][]float64{{0, 1}, {2, 0}}), []string{"a", "a"})
		assert.ErrorIs(t, err, distmat.ErrDuplicateSampleIDs)
	})

	t.Run("not square", func(t *testing.T) {
		_, err := distmat.New(mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), []string{"a", "b"})
		assert.ErrorIs(t, err, distmat.ErrInvalidDistanceMatrix)
	})

	t.Run("asymmetric", func(t *testing.T) {
		_, err := distmat.New(mustDense(t, [][]float64{{0, 1}, {2, 0}}), []string{"a", "b"})
		assert.ErrorIs(t, err, distmat.ErrInvalidDistanceMatrix)
	})

	t.Run("nonzero diagonal", func(t *testing.T) {
		_, err := distmat.New(mustDense(t, [][]float64{{1, 1}, {1, 0}}), []string{"a", "b"})
		assert.ErrorIs(t, err, distmat.ErrInvalidDistanceMatrix)
	})

	t.Run("non-finite values", func(t *testing.T) {
		inf := math.Inf(1)
		_, err := distmat.New(mustDense(t, [][]float64{{0, inf}, {inf, 0}}), []string{"a", "b"})
		assert.ErrorIs(t, err, distmat.ErrInvalidDistanceMatrix)

		nan := math.NaN()
		_, err = distmat.New(mustDense(t, [][]float64{{0, nan}, {nan, 0}}), []string{"a", "b"})
		assert.ErrorIs(t, err, distmat.ErrInvalidDistanceMatrix)
	})

	t.Run("ID count mismatch", func(t *testing.T) {
		_, err := distmat.New(mustDense(t, square), []string{"a", "b", "c"})
		assert.ErrorIs(t, err, distmat.ErrSampleIDCountMismatch)
	})
}

// TestNewFromRows verifies the nested-slice coercion path.
func TestNewFromRows(t *testing.T) {
	m, err := distmat.NewFromRows([][]float64{{0, 1}, {1, 0}}, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumSamples())

	_, err = distmat.NewFromRows(nil, nil)
	assert.ErrorIs(t, err, distmat.ErrEmptyMatrix)

	_, err = distmat.NewFromRows([][]float64{{0, 1}, {1}}, []string{"a", "b"})
	assert.ErrorIs(t, err, distmat.ErrInvalidDistanceMatrix)
}

// TestByLabel verifies O(1) label lookup parity with positional rows and the
// missing-label error carrying the offending ID.
func TestByLabel(t *testing.T) {
	m := threeByThree(t)

	for i, id := range m.SampleIDs() {
		byLabel, err := m.ByLabel(id)
		require.NoError(t, err)
		byPos, err := m.Row(i)
		require.NoError(t, err)
		assert.Equal(t, byPos, byLabel, "label %q must alias row %d", id, i)
	}

	_, err := m.ByLabel("nope")
	assert.ErrorIs(t, err, distmat.ErrMissingSampleID)
	assert.Contains(t, err.Error(), `"nope"`, "error must name the offending label")
}

// TestPositionalAccess verifies the raw pass-through semantics of Row/At.
func TestPositionalAccess(t *testing.T) {
	m := threeByThree(t)

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = m.At(0, 9)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "buffer errors pass through verbatim")
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetSampleIDs verifies atomic replacement and rejection semantics.
func TestSetSampleIDs(t *testing.T) {
	m := threeByThree(t)

	require.NoError(t, m.SetSampleIDs([]string{"x", "y", "z"}))
	assert.Equal(t, []string{"x", "y", "z"}, m.SampleIDs())

	row, err := m.ByLabel("y") // the index must be rebuilt
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 3.5}, row)

	_, err = m.ByLabel("a")
	assert.ErrorIs(t, err, distmat.ErrMissingSampleID, "old labels must be gone")

	// Rejection leaves prior state untouched.
	assert.ErrorIs(t, m.SetSampleIDs([]string{"p", "q"}), distmat.ErrSampleIDCountMismatch)
	assert.ErrorIs(t, m.SetSampleIDs([]string{"x", "x", "z"}), distmat.ErrDuplicateSampleIDs)
	assert.Equal(t, []string{"x", "y", "z"}, m.SampleIDs())
}

// TestCopy verifies deep-copy independence in both directions.
func TestCopy(t *testing.T) {
	m := threeByThree(t)
	cp := m.Copy()

	require.True(t, m.Equal(cp))

	// Mutating the copy's buffer must not leak into the original.
	require.NoError(t, cp.Data().Set(0, 1, 9))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	assert.False(t, m.Equal(cp))

	// Replacing the copy's labels must not leak either.
	cp2 := m.Copy()
	require.NoError(t, cp2.SetSampleIDs([]string{"x", "y", "z"}))
	assert.Equal(t, []string{"a", "b", "c"}, m.SampleIDs())
}

// TestTranspose verifies the self-transpose identity (no copy, no alloc).
func TestTranspose(t *testing.T) {
	m := threeByThree(t)
	assert.Same(t, m, m.Transpose(), "a symmetric matrix is its own transpose")
}

// TestEqual covers the total, never-failing equality contract.
func TestEqual(t *testing.T) {
	a := threeByThree(t)
	b := threeByThree(t)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(nil), "nil is simply unequal")

	// Same data, different labels.
	c := mustMatrix(t, [][]float64{
		{0, 0.5, 2},
		{0.5, 0, 3.5},
		{2, 3.5, 0},
	}, []string{"a", "b", "z"})
	assert.False(t, a.Equal(c))

	// Same labels, different data.
	d := mustMatrix(t, [][]float64{
		{0, 0.5, 2},
		{0.5, 0, 4},
		{2, 4, 0},
	}, []string{"a", "b", "c"})
	assert.False(t, a.Equal(d))

	// Different shape.
	e := mustMatrix(t, [][]float64{{0, 1}, {1, 0}}, []string{"a", "b"})
	assert.False(t, a.Equal(e))
}

// TestString verifies the bounded-width summary, including ID truncation at
// the fixed character budget.
func TestString(t *testing.T) {
	m := mustMatrix(t, [][]float64{{0, 1}, {1, 0}}, []string{"a", "b"})
	s := m.String()
	assert.Contains(t, s, "2x2 distance matrix")
	assert.Contains(t, s, "a, b")
	assert.Contains(t, s, "[0, 1]")

	// Long labels: the rendered list is cut at whole IDs and ends in "...".
	long := mustMatrix(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}, []string{
		strings.Repeat("x", 40),
		strings.Repeat("y", 40),
		strings.Repeat("z", 40),
	})
	ls := long.String()
	assert.Contains(t, ls, "...")
	assert.NotContains(t, ls, strings.Repeat("z", 40), "truncated list must drop trailing IDs")
}

// TestRedundantForm verifies the no-copy contract of Data/RedundantForm.
func TestRedundantForm(t *testing.T) {
	m := threeByThree(t)
	assert.Same(t, m.Data(), m.RedundantForm(), "both accessors expose the canonical buffer")
}
