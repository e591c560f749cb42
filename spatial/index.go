// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: R-tree position index over built points: nearest, nearest enabled,
//       and bound queries.
// Notes:
//   - Each point is stored as a tiny box so rtreego can hold it.
//   - The index does not follow graph mutations; NearestEnabled consults the
//     graph for every candidate.

package spatial

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/influencemap/builder"
	"github.com/katalvlaran/influencemap/core"
)

// ErrEmptyIndex is returned by nearest-point queries on an index without
// (eligible) points.
var ErrEmptyIndex = errors.New("spatial: no eligible point in index")

// R-tree shape: 2D, node fill between minChildren and maxChildren.
const (
	dims        = 2
	minChildren = 25
	maxChildren = 50

	// pointTol is the half-side of the box stored for each point.
	pointTol = 1e-9
)

// PointFilter is the view of a graph NearestEnabled needs. Both *core.Graph
// and *core.SyncGraph satisfy it.
type PointFilter interface {
	HasPoint(id core.PointID) bool
	IsPointDisabled(id core.PointID) bool
}

// entry is one indexed point.
type entry struct {
	id   core.PointID
	pos  orb.Point
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Index maps positions to point ids.
type Index struct {
	tree    *rtreego.Rtree
	entries map[core.PointID]*entry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		tree:    rtreego.NewTree(dims, minChildren, maxChildren),
		entries: make(map[core.PointID]*entry),
	}
}

// FromLayout indexes every point of a builder layout.
func FromLayout(l *builder.Layout) *Index {
	idx := NewIndex()
	for _, id := range l.IDs() {
		p, _ := l.Position(id)
		idx.Insert(id, p)
	}

	return idx
}

// Insert indexes id at p, replacing any previous position of id.
func (x *Index) Insert(id core.PointID, p orb.Point) {
	if old, ok := x.entries[id]; ok {
		x.tree.Delete(old)
	}
	e := &entry{id: id, pos: p, rect: toPoint(p).ToRect(pointTol)}
	x.entries[id] = e
	x.tree.Insert(e)
}

// Remove drops id from the index and reports whether it was present.
func (x *Index) Remove(id core.PointID) bool {
	e, ok := x.entries[id]
	if !ok {
		return false
	}
	delete(x.entries, id)

	return x.tree.Delete(e)
}

// Len returns the number of indexed points.
func (x *Index) Len() int { return len(x.entries) }

// Position returns the indexed position of id.
func (x *Index) Position(id core.PointID) (orb.Point, bool) {
	e, ok := x.entries[id]
	if !ok {
		return orb.Point{}, false
	}

	return e.pos, true
}

// Nearest returns the indexed point closest to p.
func (x *Index) Nearest(p orb.Point) (core.PointID, error) {
	if len(x.entries) == 0 {
		return 0, ErrEmptyIndex
	}
	s := x.tree.NearestNeighbor(toPoint(p))
	if s == nil {
		return 0, ErrEmptyIndex
	}

	return s.(*entry).id, nil
}

// NearestEnabled returns the point closest to p that still exists in g and
// is not disabled there.
func (x *Index) NearestEnabled(g PointFilter, p orb.Point) (core.PointID, error) {
	skip := func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		id := obj.(*entry).id
		return !g.HasPoint(id) || g.IsPointDisabled(id), false
	}
	for _, s := range x.tree.NearestNeighbors(1, toPoint(p), skip) {
		if s != nil {
			return s.(*entry).id, nil
		}
	}

	return 0, ErrEmptyIndex
}

// Within returns the ids positioned inside b (edges included), ascending.
func (x *Index) Within(b orb.Bound) ([]core.PointID, error) {
	lengths := []float64{
		b.Max.X() - b.Min.X() + 2*pointTol,
		b.Max.Y() - b.Min.Y() + 2*pointTol,
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min.X() - pointTol, b.Min.Y() - pointTol}, lengths)
	if err != nil {
		return nil, fmt.Errorf("spatial: Within(%v): %w", b, err)
	}

	found := x.tree.SearchIntersect(rect)
	ids := make([]core.PointID, 0, len(found))
	for _, s := range found {
		e := s.(*entry)
		if b.Contains(e.pos) {
			ids = append(ids, e.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

func toPoint(p orb.Point) rtreego.Point { return rtreego.Point{p.X(), p.Y()} }
