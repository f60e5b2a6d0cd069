package kdtree

import (
	"cmp"
	"context"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
)

const noChild int32 = -1

// node is one arena slot. A leaf has point >= 0 and no children; an internal
// node has point == -1 and both children set.
type node struct {
	threshold float64
	dim       int32
	left      int32
	right     int32
	point     int32
}

func (n *node) isLeaf() bool {
	return n.point >= 0
}

// builder partitions a point snapshot into an arena. Recursive calls write
// disjoint slot ranges of nodes and sort disjoint ranges of order, so two
// subtrees can be built concurrently.
type builder[V any] struct {
	ctx         context.Context
	points      []Point[V]
	dims        int
	order       []int32 // point ids, sorted in place per subtree
	nodes       []node
	group       *errgroup.Group // nil for sequential builds
	minParallel int
}

// buildArena returns the pre-order arena for points. An empty snapshot yields
// an empty arena (absent root).
func buildArena[V any](ctx context.Context, points []Point[V], dims int, opts options) ([]node, error) {
	n := len(points)
	if n == 0 {
		return nil, nil
	}

	b := &builder[V]{
		ctx:    ctx,
		points: points,
		dims:   dims,
		order:  make([]int32, n),
		nodes:  make([]node, 2*n-1),
	}
	for i := range b.order {
		b.order[i] = int32(i)
	}

	if opts.workers > 1 && n >= opts.parallelMinPoints {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.workers)
		b.ctx = gctx
		b.group = g
		b.minParallel = opts.parallelMinPoints

		err := b.build(0, 0, n, 0)
		if werr := g.Wait(); err == nil {
			err = werr
		}
		if err != nil {
			return nil, err
		}
		return b.nodes, nil
	}

	if err := b.build(0, 0, n, 0); err != nil {
		return nil, err
	}
	return b.nodes, nil
}

// build fills the subtree for order[lo:hi] starting at slot.
func (b *builder[V]) build(slot int32, lo, hi, depth int) error {
	if err := b.ctx.Err(); err != nil {
		return err
	}

	n := hi - lo
	if n == 1 {
		b.nodes[slot] = node{dim: -1, left: noChild, right: noChild, point: b.order[lo]}
		return nil
	}

	dim := depth % b.dims
	ids := b.order[lo:hi]
	slices.SortStableFunc(ids, func(x, y int32) int {
		return cmp.Compare(b.points[x].coords[dim], b.points[y].coords[dim])
	})

	half := n / 2
	left := slot + 1
	right := slot + int32(2*half)

	b.nodes[slot] = node{
		threshold: b.median(ids, dim),
		dim:       int32(dim),
		left:      left,
		right:     right,
		point:     -1,
	}

	if b.group != nil && n >= b.minParallel {
		if b.group.TryGo(func() error { return b.build(left, lo, lo+half, depth+1) }) {
			return b.build(right, lo+half, hi, depth+1)
		}
	}

	if err := b.build(left, lo, lo+half, depth+1); err != nil {
		return err
	}
	return b.build(right, lo+half, hi, depth+1)
}

// median returns the split value of ids, which are sorted by dim: the middle
// coordinate for an odd count, the mean of the two middle coordinates otherwise.
func (b *builder[V]) median(ids []int32, dim int) float64 {
	n := len(ids)
	if n%2 == 1 {
		return b.points[ids[n/2]].coords[dim]
	}
	m1 := b.points[ids[n/2-1]].coords[dim]
	m2 := b.points[ids[n/2]].coords[dim]
	mid := (m1 + m2) / 2
	if math.IsInf(mid, 0) {
		// m1+m2 overflowed
		mid = m1/2 + m2/2
	}
	return mid
}

// arenaDepth returns the number of edges on the longest root-to-leaf path.
func arenaDepth(nodes []node) int {
	if len(nodes) == 0 {
		return 0
	}

	type frame struct {
		slot  int32
		depth int
	}

	deepest := 0
	stack := []frame{{slot: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &nodes[f.slot]
		if nd.isLeaf() {
			deepest = max(deepest, f.depth)
			continue
		}
		stack = append(stack, frame{nd.left, f.depth + 1}, frame{nd.right, f.depth + 1})
	}
	return deepest
}
