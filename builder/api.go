// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// api.go - thin public entry-points for the builder package.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/influencemap/core"
)

// BuildState is threaded through the constructors of one call: the resolved
// options, the next id to hand out and the layout collected so far.
// It is opaque; constructors written outside this package use NewPoint and
// Link so ids, terrain and weights follow the call's options.
type BuildState struct {
	cfg    builderConfig
	next   core.PointID
	layout *Layout
}

// newPoint adds the next point at p and records it in the layout.
func (s *BuildState) newPoint(g *core.Graph, method string, p orb.Point) (core.PointID, error) {
	id := s.next
	if err := g.AddPoint(id, s.cfg.terrain); err != nil {
		return 0, builderErrorf(method, fmt.Sprintf("AddPoint(%d) at %v", id, p), err)
	}
	s.next++
	s.layout.put(p, id)

	return id, nil
}

// NewPoint adds the next point of the id sequence at p, with the configured
// terrain, and records it in the layout. Errors from core are wrapped.
func (s *BuildState) NewPoint(g *core.Graph, p orb.Point) (core.PointID, error) {
	return s.newPoint(g, "NewPoint", p)
}

// Link connects u and v in both directions at the orthogonal weight, or at
// the diagonal weight when diagonal is true and WithDiagonalWeight was given.
// It reports false without connecting when a diagonal link is requested but
// diagonals are disabled.
func (s *BuildState) Link(g *core.Graph, u, v core.PointID, diagonal bool) (bool, error) {
	w := s.cfg.orthogonal
	if diagonal {
		if !s.cfg.withDiagonals {
			return false, nil
		}
		w = s.cfg.diagonal
	}
	if err := link(g, "Link", u, v, w); err != nil {
		return false, err
	}

	return true, nil
}

// Constructor adds one topology to g. Constructors must not panic and must
// return errors wrapped with their method name. Custom constructors create
// points and connections through s.
type Constructor func(g *core.Graph, s *BuildState) error

// BuildGraph creates a new core.Graph with graph options gopts and applies all
// constructors in order. Any constructor error is wrapped with "BuildGraph: %w"
// and returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - O(Σ constructor cost); every constructor here is linear in cell count.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, *Layout, error) {
	g := core.NewGraph(gopts...)
	l, err := apply("BuildGraph", g, bopts, cons)
	if err != nil {
		return nil, nil, err
	}

	return g, l, nil
}

// AddToGraph applies constructors to an existing graph. Ids start at the
// WithIDOffset value, so pick an offset that cannot collide with points the
// graph already holds; a collision fails with core.ErrDuplicateID.
// On error the partially built layout is returned alongside the error.
func AddToGraph(g *core.Graph, bopts []Option, cons ...Constructor) (*Layout, error) {
	if g == nil {
		return nil, fmt.Errorf("AddToGraph: nil graph: %w", ErrConstructFailed)
	}

	return apply("AddToGraph", g, bopts, cons)
}

func apply(method string, g *core.Graph, bopts []Option, cons []Constructor) (*Layout, error) {
	cfg := newBuilderConfig(bopts...)
	s := &BuildState{cfg: cfg, next: cfg.idOffset, layout: newLayout()}

	for i, fn := range cons {
		if fn == nil {
			return s.layout, fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, s); err != nil {
			return s.layout, fmt.Errorf("%s: %w", method, err)
		}
	}

	return s.layout, nil
}
