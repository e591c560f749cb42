// Package spatial indexes built points by position so callers can turn a
// world position into a PointID: the nearest point, the nearest point that
// is still enabled in the graph, or every point inside a bound.
//
// The index is an R-tree (github.com/dhconnelly/rtreego) over 2D positions
// (github.com/paulmach/orb). It is independent of the graph store: removing
// a point from a core.Graph does not remove it from the index. Use Remove,
// or NearestEnabled which consults the graph on every candidate.
//
// Concurrency: reads (Nearest, NearestEnabled, NearestEach, Within, Position)
// may run concurrently with each other; Insert and Remove must not overlap
// with any other call.
package spatial
