// SPDX-License-Identifier: MIT
//
// File: methods_points.go
// Role: Point lifecycle (AddPoint/RemovePoint), existence queries and enumeration.
//
// Determinism:
//   - Points() returns ids sorted ascending.
//
// Invariants maintained here:
//   - forward, reverse and terrain always share one key set.
//   - RemovePoint cascades: no connection may reference a removed point in either direction.

package core

import (
	"sort"

	"go.uber.org/zap"
)

// AddPoint inserts a new point with the given terrain.
//
// Implementation:
//   - Stage 1: Reject an id that is already present (ErrDuplicateID), leaving the store untouched.
//   - Stage 2: Create empty forward and reverse buckets and record the terrain.
//
// Behavior highlights:
//   - New points are enabled and carry no connections.
//   - Ids of removed points may be reused.
//
// Errors:
//   - ErrDuplicateID: a point with this id already exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddPoint(id PointID, terrain TerrainType) error {
	if g.HasPoint(id) {
		g.log.Debug("add point rejected", zap.Int64("point", int64(id)), zap.Error(ErrDuplicateID))
		return ErrDuplicateID
	}

	g.forward[id] = make(map[PointID]Weight)
	g.reverse[id] = make(map[PointID]Weight)
	g.terrain[id] = terrain
	g.log.Debug("point added", zap.Int64("point", int64(id)), zap.Stringer("terrain", terrain))

	return nil
}

// RemovePoint deletes a point together with every connection incident to it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrUnknownPoint).
//   - Stage 2: Drop the point from the disabled set.
//   - Stage 3: For every target the point connects to, delete reverse[target][id].
//   - Stage 4: For every source connecting to the point, delete forward[source][id].
//   - Stage 5: Erase the point's own forward/reverse buckets and terrain record.
//
// Behavior highlights:
//   - Full cascade; self-loops are handled by the same two passes.
//   - Never removes any other point.
//
// Errors:
//   - ErrUnknownPoint: the id does not exist; the store is left unmodified.
//
// Complexity:
//   - Time O(in(id)+out(id)), Space O(1).
func (g *Graph) RemovePoint(id PointID) error {
	out, ok := g.forward[id]
	if !ok {
		g.log.Debug("remove point rejected", zap.Int64("point", int64(id)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}
	g.disabled.Remove(id)

	// Outgoing side: targets forget us as a source.
	delete(g.forward, id)
	for target := range out {
		if in, exists := g.reverse[target]; exists {
			delete(in, id)
		}
		g.edgeCount--
	}

	// Incoming side: sources forget us as a target. A self-loop entry was
	// already dropped from reverse[id] by the pass above.
	in := g.reverse[id]
	delete(g.reverse, id)
	for source := range in {
		if fwd, exists := g.forward[source]; exists {
			delete(fwd, id)
		}
		g.edgeCount--
	}

	delete(g.terrain, id)
	g.log.Debug("point removed",
		zap.Int64("point", int64(id)),
		zap.Int("outgoing", len(out)),
		zap.Int("incoming", len(in)),
	)

	return nil
}

// HasPoint reports whether a point with the given id exists.
// Complexity: O(1).
func (g *Graph) HasPoint(id PointID) bool {
	_, ok := g.forward[id]

	return ok
}

// Points returns all point ids in ascending order.
//
// Determinism:
//   - Sorted ascending; safe for golden tests and reproducible engine seeding.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Points() []PointID {
	ids := make([]PointID, 0, len(g.forward))
	for id := range g.forward {
		ids = append(ids, id)
	}
	sortPointIDs(ids)

	return ids
}

// PointCount returns the number of points. O(1).
func (g *Graph) PointCount() int {
	return len(g.forward)
}

// sortPointIDs sorts ids ascending in place.
func sortPointIDs(ids []PointID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
