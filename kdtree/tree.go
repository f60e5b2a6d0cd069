package kdtree

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/collections"
)

// MaxPoints is the largest number of points a tree can hold; the arena of a
// tree over n points has 2n-1 int32-addressed slots.
const MaxPoints = (math.MaxInt32 + 1) / 2

// ErrTooManyPoints is returned by Add once MaxPoints points are pending.
var ErrTooManyPoints = errors.New("kdtree: too many points")

// maxPoints is MaxPoints; tests lower it.
var maxPoints = MaxPoints

// Tree is a static k-d tree over points carrying payloads of type V.
type Tree[V any] struct {
	dims     int
	nillable bool

	pending []Point[V] // everything added so far

	// Built state, replaced as a whole by Build.
	points []Point[V] // snapshot the arena was built from; index = point id
	nodes  []node     // pre-order arena; empty means the tree is empty
	depth  int

	opts options
}

// Stats describes the shape of the built tree.
type Stats struct {
	Points        int
	Leaves        int
	InternalNodes int
	Depth         int
}

// New creates an empty tree for points with the given number of dimensions.
// It returns an *collections.ErrInvalidDimension if dimensions < 2.
func New[V any](dimensions int, optFns ...Option) (*Tree[V], error) {
	if dimensions < 2 {
		return nil, &collections.ErrInvalidDimension{Dimension: dimensions}
	}

	opts := applyOptions(optFns)
	opts.logger = opts.logger.WithDimension(dimensions)

	return &Tree[V]{
		dims:     dimensions,
		nillable: collections.Nillable[V](),
		opts:     opts,
	}, nil
}

// Dimensions returns the number of coordinates every point must have.
func (t *Tree[V]) Dimensions() int {
	return t.dims
}

// Len returns the number of points in the built tree.
func (t *Tree[V]) Len() int {
	return len(t.points)
}

// Pending returns the number of points that the next Build will use.
func (t *Tree[V]) Pending() int {
	return len(t.pending)
}

// Add records a point for the next Build. The coordinates are copied.
// It returns collections.ErrNilValue for a nil value, an
// *collections.ErrDimensionMismatch for a coordinate vector of the wrong length,
// an *collections.ErrInvalidCoordinate for a NaN or infinite coordinate and
// ErrTooManyPoints once MaxPoints points are pending.
func (t *Tree[V]) Add(value V, coordinates []float64) error {
	err := t.add(value, coordinates)
	t.opts.metricsCollector.RecordAdd(err)
	t.opts.logger.LogAdd(context.Background(), len(t.pending), err)
	return err
}

func (t *Tree[V]) add(value V, coordinates []float64) error {
	if t.nillable && collections.IsNil(value) {
		return collections.ErrNilValue
	}
	if err := collections.CheckCoordinates(coordinates, t.dims); err != nil {
		return err
	}
	if len(t.pending) >= maxPoints {
		return ErrTooManyPoints
	}

	t.pending = append(t.pending, Point[V]{
		Value:  value,
		coords: slices.Clone(coordinates),
	})
	return nil
}

// Build constructs the tree from every point added so far, discarding the
// previous tree. It cannot fail: the only error source of BuildContext is
// cancellation.
func (t *Tree[V]) Build() {
	_ = t.BuildContext(context.Background())
}

// BuildContext is Build with cancellation. If ctx is done before the build
// completes, the previous tree is kept and ctx's error is returned.
func (t *Tree[V]) BuildContext(ctx context.Context) error {
	start := time.Now()

	snapshot := slices.Clone(t.pending)
	nodes, err := buildArena(ctx, snapshot, t.dims, t.opts)

	elapsed := time.Since(start)
	if err == nil {
		t.points = snapshot
		t.nodes = nodes
		t.depth = arenaDepth(nodes)
	}

	t.opts.metricsCollector.RecordBuild(len(snapshot), elapsed, err)
	t.opts.logger.LogBuild(ctx, len(snapshot), t.depth, elapsed, err)

	return err
}

// Nearest returns the payload of the leaf reached by descending from the root:
// at each split the query goes left if its coordinate is less than the
// threshold, otherwise right. The second result is false if the tree is empty.
//
// The descent follows a single path and does not backtrack, so the result is
// an approximation near split boundaries.
func (t *Tree[V]) Nearest(coordinates []float64) (V, bool, error) {
	start := time.Now()

	v, ok, err := t.nearest(coordinates)

	t.opts.metricsCollector.RecordNearest(time.Since(start), ok, err)
	t.opts.logger.LogNearest(context.Background(), ok, err)

	return v, ok, err
}

func (t *Tree[V]) nearest(coordinates []float64) (V, bool, error) {
	var zero V
	if err := collections.CheckQuery(coordinates, t.dims); err != nil {
		return zero, false, err
	}
	if len(t.nodes) == 0 {
		return zero, false, nil
	}

	slot := int32(0)
	for {
		nd := &t.nodes[slot]
		if nd.isLeaf() {
			return t.points[nd.point].Value, true, nil
		}
		if coordinates[nd.dim] < nd.threshold {
			slot = nd.left
		} else {
			slot = nd.right
		}
	}
}

// Point returns the built point with the given id. Ids are assigned in Add
// order and are the values Range reports.
func (t *Tree[V]) Point(id uint32) (Point[V], bool) {
	if int(id) >= len(t.points) {
		return Point[V]{}, false
	}
	return t.points[id], true
}

// Stats returns the shape of the built tree.
func (t *Tree[V]) Stats() Stats {
	n := len(t.points)
	return Stats{
		Points:        n,
		Leaves:        n,
		InternalNodes: max(n-1, 0),
		Depth:         t.depth,
	}
}

// String returns a textual rendering of the tree. Warning: output can be huge!
func (t *Tree[V]) String() string {
	if len(t.nodes) == 0 {
		return "<empty>\n"
	}

	var sb strings.Builder
	var render func(slot int32, depth int)
	render = func(slot int32, depth int) {
		nd := &t.nodes[slot]
		sb.WriteString(strings.Repeat("  ", depth))
		if nd.isLeaf() {
			p := t.points[nd.point]
			fmt.Fprintf(&sb, "leaf #%d %v %v\n", nd.point, p.coords, p.Value)
			return
		}
		fmt.Fprintf(&sb, "split dim %d at %g\n", nd.dim, nd.threshold)
		render(nd.left, depth+1)
		render(nd.right, depth+1)
	}
	render(0, 0)

	return sb.String()
}
