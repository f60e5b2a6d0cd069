// Package kdtree implements a static k-d tree over labeled points.
//
// Points are collected with Add and the tree is built once with Build. Each
// internal node splits its points at the median of one coordinate, cycling
// through the dimensions by depth; each leaf holds exactly one point.
//
// Nearest descends a single root-to-leaf path and returns the payload of the
// leaf it reaches. It never backtracks, so near a split plane the answer can
// differ from the true geometric nearest point. Range returns every point in
// an axis-aligned box and is exact.
//
// The nodes live in a flat arena laid out in pre-order: the subtree over m
// points occupies exactly 2m-1 consecutive slots, so subtrees can be built in
// parallel (see WithParallelBuild) without coordination.
//
// A Tree is not safe for concurrent use.
package kdtree
