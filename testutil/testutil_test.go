package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 3)

	require.Len(t, p, 8)
	assert.Len(t, p[0], 3)
	for _, pt := range p {
		for _, c := range pt {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.Less(t, c, 1.0)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	first := NewRNG(4711).Ints(16, 100)
	second := NewRNG(4711).Ints(16, 100)

	assert.Equal(t, first, second)
	for _, v := range first {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(4711)

	dst := make([]float64, 64)
	rng.FillUniformRange(dst, -2, 2)

	for _, v := range dst {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 2.0)
	}
}

func TestGridPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.GridPoints(32, 2, 4)

	require.Len(t, p, 32)
	for _, pt := range p {
		for _, c := range pt {
			assert.Contains(t, []float64{0, 1, 2, 3}, c)
		}
	}
}

func TestBoxFilter(t *testing.T) {
	points := [][]float64{
		{0, 0},
		{1, 1},
		{2, 2},
		{1, 3},
	}

	ids := BoxFilter(points, []float64{1, 1}, []float64{2, 2})
	assert.Equal(t, []uint32{1, 2}, ids)

	assert.Empty(t, BoxFilter(points, []float64{5, 5}, []float64{6, 6}))
}

func TestSorted(t *testing.T) {
	in := []int{3, 1, 2}
	assert.Equal(t, []int{1, 2, 3}, Sorted(in))
	assert.Equal(t, []int{3, 1, 2}, in)
}
