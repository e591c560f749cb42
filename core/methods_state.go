// SPDX-License-Identifier: MIT
//
// File: methods_state.go
// Role: Per-point state: enabled/disabled masking and terrain classification.
//
// State machine (per point): Enabled <-> Disabled, initial Enabled.
// Removal deletes the point; it is not a state transition.

package core

import "go.uber.org/zap"

// DisablePoint excludes id from downstream pathfinding. The point keeps all
// of its connections. Disabling a disabled point is a no-op.
//
// Errors:
//   - ErrUnknownPoint: id does not exist.
//
// Complexity:
//   - Time O(log D), D = number of disabled points.
func (g *Graph) DisablePoint(id PointID) error {
	if !g.HasPoint(id) {
		g.log.Debug("disable rejected", zap.Int64("point", int64(id)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}
	g.disabled.Add(id)
	g.log.Debug("point disabled", zap.Int64("point", int64(id)))

	return nil
}

// EnablePoint re-enables id. Enabling an enabled point is a no-op.
//
// Errors:
//   - ErrUnknownPoint: id does not exist.
func (g *Graph) EnablePoint(id PointID) error {
	if !g.HasPoint(id) {
		g.log.Debug("enable rejected", zap.Int64("point", int64(id)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}
	g.disabled.Remove(id)
	g.log.Debug("point enabled", zap.Int64("point", int64(id)))

	return nil
}

// IsPointDisabled reports whether id is disabled. Unknown ids are reported as
// not disabled.
func (g *Graph) IsPointDisabled(id PointID) bool {
	return g.disabled.Contains(id)
}

// DisabledPoints returns the disabled ids in ascending order.
func (g *Graph) DisabledPoints() []PointID {
	ids := make([]PointID, 0, g.disabled.Size())
	for _, v := range g.disabled.Values() {
		ids = append(ids, v.(PointID))
	}

	return ids
}

// SetTerrainForPoint overwrites the terrain of id unconditionally.
//
// Errors:
//   - ErrUnknownPoint: id does not exist.
func (g *Graph) SetTerrainForPoint(id PointID, terrain TerrainType) error {
	if !g.HasPoint(id) {
		g.log.Debug("set terrain rejected", zap.Int64("point", int64(id)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}
	g.terrain[id] = terrain
	g.log.Debug("terrain set", zap.Int64("point", int64(id)), zap.Stringer("terrain", terrain))

	return nil
}

// TerrainForPoint returns the terrain of id. Unlike the other per-point reads
// it reports unknown ids as an error, since no terrain is a sensible default.
//
// Errors:
//   - ErrUnknownPoint: id does not exist.
func (g *Graph) TerrainForPoint(id PointID) (TerrainType, error) {
	t, ok := g.terrain[id]
	if !ok {
		return TerrainType{}, ErrUnknownPoint
	}

	return t, nil
}

// PointsWithTerrain returns the ids carrying terrain t, ascending. O(V log V).
func (g *Graph) PointsWithTerrain(t TerrainType) []PointID {
	var ids []PointID
	for id, pt := range g.terrain {
		if pt == t {
			ids = append(ids, id)
		}
	}
	sortPointIDs(ids)

	return ids
}
