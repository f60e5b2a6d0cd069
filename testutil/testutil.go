package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Ints returns num pseudo-random ints in [0, n).
func (r *RNG) Ints(num, n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(n)
	}
	return out
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GridPoints generates points with small integer coordinates in [0, side).
// Duplicate coordinates are likely, which exercises tie handling.
func (r *RNG) GridPoints(num, dimensions, side int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = float64(r.rand.Intn(side))
		}
		points[i] = p
	}

	return points
}

// BoxFilter returns, in ascending order, the indexes of points inside the closed box [lo, hi].
func BoxFilter(points [][]float64, lo, hi []float64) []uint32 {
	var ids []uint32
	for i, p := range points {
		inside := true
		for d := range p {
			if p[d] < lo[d] || p[d] > hi[d] {
				inside = false
				break
			}
		}
		if inside {
			ids = append(ids, uint32(i))
		}
	}
	return ids
}

// Sorted returns a sorted copy of values.
func Sorted(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
