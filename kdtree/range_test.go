package kdtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/collections"
	"github.com/hupe1980/collections/testutil"
)

func TestRange(t *testing.T) {
	t.Run("Corners", func(t *testing.T) {
		tree := cornerTree(t)

		values, err := tree.RangeValues([]float64{0, 0}, []float64{5, 10})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, values)

		ids, err := tree.Range([]float64{9, 9}, []float64{9, 9})
		require.NoError(t, err)
		assert.Equal(t, []uint32{1}, ids.ToArray())

		ids, err = tree.Range([]float64{2, 2}, []float64{8, 8})
		require.NoError(t, err)
		assert.True(t, ids.IsEmpty())
	})

	t.Run("MatchesBruteForce", func(t *testing.T) {
		rng := testutil.NewRNG(4711)

		for _, points := range [][][]float64{
			rng.UniformPoints(500, 2),
			rng.UniformPoints(300, 3),
			rng.GridPoints(400, 2, 5), // many duplicates and ties on thresholds
		} {
			dims := len(points[0])
			tree := buildFrom(t, points)

			for range 25 {
				a := make([]float64, dims)
				b := make([]float64, dims)
				rng.FillUniformRange(a, -0.5, 5)
				rng.FillUniformRange(b, -0.5, 5)
				lo := make([]float64, dims)
				hi := make([]float64, dims)
				for d := range dims {
					lo[d], hi[d] = min(a[d], b[d]), max(a[d], b[d])
				}

				ids, err := tree.Range(lo, hi)
				require.NoError(t, err)
				assert.ElementsMatch(t, testutil.BoxFilter(points, lo, hi), ids.ToArray())
			}

			// integer boxes hit thresholds exactly on the grid data
			ids, err := tree.Range(make([]float64, dims), filled(dims, 2))
			require.NoError(t, err)
			assert.ElementsMatch(t, testutil.BoxFilter(points, make([]float64, dims), filled(dims, 2)), ids.ToArray())
		}
	})

	t.Run("EmptyTree", func(t *testing.T) {
		tree, err := New[string](2)
		require.NoError(t, err)

		ids, err := tree.Range([]float64{0, 0}, []float64{1, 1})
		require.NoError(t, err)
		assert.True(t, ids.IsEmpty())
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		tree := cornerTree(t)

		_, err := tree.Range([]float64{0}, []float64{1, 1})
		assert.ErrorIs(t, err, collections.ErrInvalidArgument)

		_, err = tree.Range([]float64{0, 0}, []float64{1, 1, 1})
		assert.ErrorIs(t, err, collections.ErrInvalidArgument)

		_, err = tree.RangeValues([]float64{0, 5}, []float64{1, 1})
		var ir *collections.ErrInvalidRange
		require.ErrorAs(t, err, &ir)
		assert.Equal(t, 1, ir.Dimension)
		assert.ErrorIs(t, err, collections.ErrInvalidArgument)

		_, err = tree.Range([]float64{0, math.NaN()}, []float64{1, 1})
		var ic *collections.ErrInvalidCoordinate
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 1, ic.Dimension)

		_, err = tree.Range([]float64{0, 0}, []float64{math.NaN(), 1})
		assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	})

	t.Run("UnboundedBox", func(t *testing.T) {
		tree := cornerTree(t)

		values, err := tree.RangeValues([]float64{math.Inf(-1), 5}, []float64{math.Inf(1), math.Inf(1)})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, values)
	})
}

func TestPoint(t *testing.T) {
	tree := cornerTree(t)

	p, ok := tree.Point(2)
	require.True(t, ok)
	assert.Equal(t, "c", p.Value)
	assert.Equal(t, []float64{1, 9}, p.Coordinates())

	_, ok = tree.Point(4)
	assert.False(t, ok)
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
