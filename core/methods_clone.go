// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing the store.
// Notes:
//   - Clone shares the logger; every map and slice is copied.
//   - Clear keeps options (logger, capacity) and drops all state.

package core

import "go.uber.org/zap"

// Clone returns a deep copy of the store: points, connections, terrain,
// disabled set and the sorted-points slot.
//
// Implementation:
//   - Stage 1: Allocate a Graph with the same logger and capacity.
//   - Stage 2: Copy forward and reverse buckets entry by entry.
//   - Stage 3: Copy terrain, disabled ids and sorted points.
//
// Behavior highlights:
//   - The clone is independent: mutating it never affects g, and vice versa.
//   - Useful as a consistent snapshot for a pathfinding run.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{log: g.log, capacity: g.capacity}
	c.reset()

	for id, out := range g.forward {
		c.forward[id] = copyBucket(out)
	}
	for id, in := range g.reverse {
		c.reverse[id] = copyBucket(in)
	}
	for id, t := range g.terrain {
		c.terrain[id] = t
	}
	c.disabled.Add(g.disabled.Values()...)
	c.edgeCount = g.edgeCount
	if g.sortedPoints != nil {
		c.sortedPoints = append([]PointID(nil), g.sortedPoints...)
	}

	return c
}

// Clear resets the store to the empty graph: no points, connections,
// disabled points, terrain records or sorted points. It always succeeds.
// Complexity: O(1) plus garbage collection of the old maps.
func (g *Graph) Clear() {
	points, edges := len(g.forward), g.edgeCount
	g.reset()
	g.log.Debug("graph cleared", zap.Int("points", points), zap.Int("connections", edges))
}

func copyBucket(b map[PointID]Weight) map[PointID]Weight {
	out := make(map[PointID]Weight, len(b))
	for k, w := range b {
		out[k] = w
	}

	return out
}
