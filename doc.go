// Package collections holds the shared pieces of a small generic-collections library:
// the error taxonomy, a structured logger and a metrics collector.
//
// The data structures live in subpackages:
//
//   - heap: an array-backed binary heap with a pluggable ordering (min-heap by default)
//   - kdtree: a static k-d tree with single-path nearest lookup and box range queries
//
// # Quick Start
//
//	h := heap.New[int]()
//	_ = h.Insert(9)
//	_ = h.Insert(2)
//	v, _ := h.Pop() // 2
//
//	t, _ := kdtree.New[string](2)
//	_ = t.Add("a", []float64{1, 2})
//	_ = t.Add("b", []float64{5, 7})
//	t.Build()
//	name, ok, _ := t.Nearest([]float64{4, 6}) // "b", true
//
// # Errors
//
// Every validation failure wraps ErrInvalidArgument and is raised before any state
// changes. Empty results (Peek/Pop on an empty heap, Nearest on an empty tree) are
// not errors; they return the zero value and false.
//
// Neither structure is safe for concurrent use.
package collections
