package kdtree

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/collections"
)

// Range returns the ids of all built points inside the closed box [lo, hi].
// Bounds may be infinite; a NaN bound is an *collections.ErrInvalidCoordinate.
// Unlike Nearest the result is exact: every subtree that can intersect the
// box is visited.
func (t *Tree[V]) Range(lo, hi []float64) (*roaring.Bitmap, error) {
	start := time.Now()

	ids, err := t.rangeQuery(lo, hi)

	matches := 0
	if err == nil {
		matches = int(ids.GetCardinality())
	}
	t.opts.metricsCollector.RecordRange(matches, time.Since(start), err)
	t.opts.logger.LogRange(context.Background(), matches, err)

	return ids, err
}

// RangeValues returns the payloads of Range in id order.
func (t *Tree[V]) RangeValues(lo, hi []float64) ([]V, error) {
	ids, err := t.Range(lo, hi)
	if err != nil {
		return nil, err
	}

	values := make([]V, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		values = append(values, t.points[it.Next()].Value)
	}
	return values, nil
}

func (t *Tree[V]) rangeQuery(lo, hi []float64) (*roaring.Bitmap, error) {
	if err := collections.CheckQuery(lo, t.dims); err != nil {
		return nil, err
	}
	if err := collections.CheckQuery(hi, t.dims); err != nil {
		return nil, err
	}
	for d := range lo {
		if lo[d] > hi[d] {
			return nil, &collections.ErrInvalidRange{Dimension: d, Lo: lo[d], Hi: hi[d]}
		}
	}

	ids := roaring.New()
	if len(t.nodes) == 0 {
		return ids, nil
	}

	// Left subtrees hold coordinates <= threshold, right subtrees >= threshold.
	stack := []int32{0}
	for len(stack) > 0 {
		slot := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[slot]
		if nd.isLeaf() {
			if t.points[nd.point].inBox(lo, hi) {
				ids.Add(uint32(nd.point))
			}
			continue
		}
		if hi[nd.dim] >= nd.threshold {
			stack = append(stack, nd.right)
		}
		if lo[nd.dim] <= nd.threshold {
			stack = append(stack, nd.left)
		}
	}

	return ids, nil
}
