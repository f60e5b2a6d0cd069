package kdtree

import "slices"

// Point is a payload together with its position. Points are immutable: the
// coordinates are copied on Add and only handed out as copies.
type Point[V any] struct {
	Value  V
	coords []float64
}

// Coordinates returns a copy of the point's coordinates.
func (p Point[V]) Coordinates() []float64 {
	return slices.Clone(p.coords)
}

// Coordinate returns the coordinate in dimension d.
func (p Point[V]) Coordinate(d int) float64 {
	return p.coords[d]
}

// Dimensions returns the number of coordinates.
func (p Point[V]) Dimensions() int {
	return len(p.coords)
}

// inBox reports whether p lies inside the closed box [lo, hi].
func (p Point[V]) inBox(lo, hi []float64) bool {
	for d, c := range p.coords {
		if c < lo[d] || c > hi[d] {
			return false
		}
	}
	return true
}
