// Package heap implements a generic array-backed binary heap.
//
// The heap is 1-indexed: slot 0 of the backing slice is an unused sentinel and
// the children of slot i live at 2i and 2i+1. The ordering strategy is a less
// function, so the same type serves as a min-heap (New), a max-heap (NewMax)
// or any custom priority queue (NewFunc).
//
// A Heap is not safe for concurrent use.
package heap

import (
	"cmp"
	"iter"

	"github.com/hupe1980/collections"
)

// initialCapacity counts the sentinel slot.
const initialCapacity = 2

// Heap is a binary heap ordered by a less function. The element for which
// less reports true against every other element sits at the root.
type Heap[T any] struct {
	less     func(a, b T) bool
	items    []T // items[0] is unused
	size     int
	nillable bool // T can hold nil; Insert must reject it
}

// New creates an empty min-heap for an ordered type.
func New[T cmp.Ordered]() *Heap[T] {
	return newHeap(cmp.Less[T], initialCapacity)
}

// NewMax creates an empty max-heap for an ordered type.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return newHeap(greater[T], initialCapacity)
}

// NewFunc creates an empty heap ordered by less.
// It returns collections.ErrNilLess if less is nil.
func NewFunc[T any](less func(a, b T) bool) (*Heap[T], error) {
	if less == nil {
		return nil, collections.ErrNilLess
	}
	return newHeap(less, initialCapacity), nil
}

// From creates a min-heap holding a copy of src. The heap is built with a
// single bottom-up pass, which is O(n).
func From[T cmp.Ordered](src []T) *Heap[T] {
	h := newHeap(cmp.Less[T], len(src)+1)
	h.load(src)
	return h
}

// FromFunc creates a heap ordered by less holding a copy of src.
// It fails with collections.ErrNilLess or collections.ErrNilValue without
// allocating the heap.
func FromFunc[T any](src []T, less func(a, b T) bool) (*Heap[T], error) {
	if less == nil {
		return nil, collections.ErrNilLess
	}
	if collections.Nillable[T]() {
		for _, e := range src {
			if collections.IsNil(e) {
				return nil, collections.ErrNilValue
			}
		}
	}
	h := newHeap(less, len(src)+1)
	h.load(src)
	return h, nil
}

func newHeap[T any](less func(a, b T) bool, capacity int) *Heap[T] {
	return &Heap[T]{
		less:     less,
		items:    make([]T, max(capacity, initialCapacity)),
		nillable: collections.Nillable[T](),
	}
}

func (h *Heap[T]) load(src []T) {
	copy(h.items[1:], src)
	h.size = len(src)
	h.buildHeap()
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.size
}

// Cap returns the number of elements the heap can hold before it grows.
func (h *Heap[T]) Cap() int {
	return len(h.items) - 1
}

// Insert adds e to the heap. It returns collections.ErrNilValue if e is a nil
// pointer, map, slice, channel, func or interface.
// The backing array doubles when full, so Insert is amortized O(log n).
func (h *Heap[T]) Insert(e T) error {
	if h.nillable && collections.IsNil(e) {
		return collections.ErrNilValue
	}

	if h.size == len(h.items)-1 {
		h.grow()
	}

	h.size++
	pos := h.size

	// Move parents down until e's slot is found.
	for pos > 1 && h.less(e, h.items[pos/2]) {
		h.items[pos] = h.items[pos/2]
		pos /= 2
	}

	h.items[pos] = e

	return nil
}

// Peek returns the root element without removing it.
// The second result is false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.size == 0 {
		var zero T
		return zero, false
	}
	return h.items[1], true
}

// Pop removes and returns the root element.
// The second result is false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if h.size == 0 {
		return zero, false
	}

	top := h.items[1]
	h.items[1] = h.items[h.size]
	h.items[h.size] = zero
	h.size--

	h.siftDown(1)

	return top, true
}

// Reset removes all elements but keeps the backing array for reuse.
func (h *Heap[T]) Reset() {
	clear(h.items[1 : h.size+1])
	h.size = 0
}

// All returns an iterator over the held elements in backing-array order,
// which is not sorted order.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 1; i <= h.size; i++ {
			if !yield(h.items[i]) {
				return
			}
		}
	}
}

func (h *Heap[T]) grow() {
	items := make([]T, len(h.items)*2)
	copy(items, h.items[:h.size+1])
	h.items = items
}

// buildHeap restores the heap invariant over the whole array, walking from
// the last parent up to the root.
func (h *Heap[T]) buildHeap() {
	for i := h.size / 2; i > 0; i-- {
		h.siftDown(i)
	}
}

// siftDown moves the element at index i down the heap until the heap invariant is restored.
func (h *Heap[T]) siftDown(i int) {
	for {
		child := 2 * i
		if child > h.size {
			return
		}
		if child+1 <= h.size && h.less(h.items[child+1], h.items[child]) {
			child++
		}
		if !h.less(h.items[child], h.items[i]) {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}

func greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}
