// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// layout.go — position ↔ PointID bookkeeping for built points.

package builder

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/influencemap/core"
)

// Layout records where each built point sits. It is filled by constructors
// and read-only for callers.
type Layout struct {
	byPos map[orb.Point]core.PointID
	byID  map[core.PointID]orb.Point
}

func newLayout() *Layout {
	return &Layout{
		byPos: make(map[orb.Point]core.PointID),
		byID:  make(map[core.PointID]orb.Point),
	}
}

// put records id at p. A later constructor placing a point on an occupied
// position takes over the position lookup; the id lookup keeps both.
func (l *Layout) put(p orb.Point, id core.PointID) {
	l.byPos[p] = id
	l.byID[id] = p
}

// ID returns the point built at p.
func (l *Layout) ID(p orb.Point) (core.PointID, bool) {
	id, ok := l.byPos[p]
	return id, ok
}

// Position returns where id was built.
func (l *Layout) Position(id core.PointID) (orb.Point, bool) {
	p, ok := l.byID[id]
	return p, ok
}

// Len returns the number of built points.
func (l *Layout) Len() int { return len(l.byID) }

// IDs returns all built ids ascending.
func (l *Layout) IDs() []core.PointID {
	ids := make([]core.PointID, 0, len(l.byID))
	for id := range l.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Bound returns the smallest bound enclosing every built position.
// The zero Bound is returned for an empty layout.
func (l *Layout) Bound() orb.Bound {
	if len(l.byID) == 0 {
		return orb.Bound{}
	}
	var b orb.Bound
	first := true
	for _, p := range l.byID {
		if first {
			b = p.Bound()
			first = false
			continue
		}
		b = b.Extend(p)
	}

	return b
}
