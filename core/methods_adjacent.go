// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood reads for the downstream engine: outgoing/incoming
//       connections of a point and neighbour ids.
//
// Determinism:
//   - All results are sorted by neighbour id ascending.
//
// Notes:
//   - Results are copies; mutating them never touches the store.

package core

import "sort"

// OutgoingConnections returns every connection leaving id, sorted by target.
//
// Implementation:
//   - Stage 1: Look up forward[id] (ErrUnknownPoint if absent).
//   - Stage 2: Copy each (target, weight) into a Connection value.
//   - Stage 3: Sort by target ascending.
//
// Errors:
//   - ErrUnknownPoint: id does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), d = out-degree.
func (g *Graph) OutgoingConnections(id PointID) ([]Connection, error) {
	out, ok := g.forward[id]
	if !ok {
		return nil, ErrUnknownPoint
	}

	conns := make([]Connection, 0, len(out))
	for target, w := range out {
		conns = append(conns, Connection{From: id, To: target, Weight: w})
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i].To < conns[j].To })

	return conns, nil
}

// IncomingConnections returns every connection arriving at id, sorted by source.
// It reads the reverse index, so it costs O(d log d) in the in-degree d rather
// than a scan of all points.
//
// Errors:
//   - ErrUnknownPoint: id does not exist.
func (g *Graph) IncomingConnections(id PointID) ([]Connection, error) {
	in, ok := g.reverse[id]
	if !ok {
		return nil, ErrUnknownPoint
	}

	conns := make([]Connection, 0, len(in))
	for source, w := range in {
		conns = append(conns, Connection{From: source, To: id, Weight: w})
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i].From < conns[j].From })

	return conns, nil
}

// NeighborIDs returns the ids id connects to, ascending.
func (g *Graph) NeighborIDs(id PointID) ([]PointID, error) {
	out, ok := g.forward[id]
	if !ok {
		return nil, ErrUnknownPoint
	}

	return sortedKeys(out), nil
}

// PredecessorIDs returns the ids that connect to id, ascending.
func (g *Graph) PredecessorIDs(id PointID) ([]PointID, error) {
	in, ok := g.reverse[id]
	if !ok {
		return nil, ErrUnknownPoint
	}

	return sortedKeys(in), nil
}

// Degree returns the in- and out-degree of id. A self-connection counts once
// on each side.
func (g *Graph) Degree(id PointID) (in, out int, err error) {
	fwd, ok := g.forward[id]
	if !ok {
		return 0, 0, ErrUnknownPoint
	}

	return len(g.reverse[id]), len(fwd), nil
}

// sortedKeys returns the keys of a neighbour bucket ascending.
func sortedKeys(bucket map[PointID]Weight) []PointID {
	ids := make([]PointID, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sortPointIDs(ids)

	return ids
}
