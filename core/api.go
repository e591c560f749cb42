// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and the sorted-points slot shared with the
//       downstream pathfinding engine.
// Policy:
//   - No algorithms here; the store never computes or validates an ordering.

package core

// GraphStats is a point-in-time summary of the store.
type GraphStats struct {
	PointCount      int
	ConnectionCount int
	DisabledCount   int

	// TerrainCounts maps each terrain present to the number of points carrying it.
	TerrainCounts map[TerrainType]int
}

// Stats summarizes the store.
//
// Complexity:
//   - Time O(V), Space O(T), T = number of distinct terrains.
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		PointCount:      len(g.forward),
		ConnectionCount: g.edgeCount,
		DisabledCount:   g.disabled.Size(),
		TerrainCounts:   make(map[TerrainType]int),
	}
	for _, t := range g.terrain {
		s.TerrainCounts[t]++
	}

	return s
}

// SortedPoints returns a copy of the ordering last stored by SetSortedPoints,
// or nil if none was stored since creation or the last Clear.
func (g *Graph) SortedPoints() []PointID {
	if g.sortedPoints == nil {
		return nil
	}

	return append([]PointID(nil), g.sortedPoints...)
}

// SetSortedPoints stores a copy of an ordering computed by the pathfinding
// engine. The store does not check that the ids exist, and point removal does
// not rewrite the slot; it is the engine's responsibility to refresh it.
func (g *Graph) SetSortedPoints(ids []PointID) {
	if ids == nil {
		g.sortedPoints = nil
		return
	}
	g.sortedPoints = append(make([]PointID, 0, len(ids)), ids...)
}
