// Package influencemap is the graph substrate for multi-source shortest-path
// ("influence map") computation in interactive applications such as game AI.
//
// It stores a weighted, directed graph of caller-labeled points with
// per-point terrain tags and an enabled/disabled mask, and keeps a forward
// and a reverse adjacency view in lockstep so a pathfinding engine can ask
// both "where can I go from X" and "who reaches X" in O(degree).
//
// Packages:
//
//	core/    — the graph store: points, connections, terrain, disabled set, SyncGraph
//	builder/ — square and hexagonal grid constructors with position layouts
//	spatial/ — R-tree lookup from world positions to point ids
//
// Quick ASCII example (square grid with diagonals, ids row-major):
//
//	0───1───2
//	│ ╳ │ ╳ │
//	3───4───5
//
// The shortest-path relaxation itself is not part of this module; it reads
// the store through core.Graph's query surface and writes its ordering back
// through SetSortedPoints.
package influencemap
