// SPDX-License-Identifier: MIT
//
// File: invariants.go
// Role: Structural self-check used by tests and by hosts that want to assert
//       store health after bulk mutation.

package core

import "fmt"

// CheckInvariants verifies the structural invariants of the store:
//
//   - forward, reverse and terrain have identical key sets;
//   - forward[a][b] == w if and only if reverse[b][a] == w;
//   - every disabled id is a point;
//   - the cached connection count matches the forward index.
//
// It returns nil when all hold, otherwise ErrInvariantViolated wrapped with the
// first offending ids found.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) CheckInvariants() error {
	if len(g.forward) != len(g.reverse) || len(g.forward) != len(g.terrain) {
		return fmt.Errorf("%w: key set sizes forward=%d reverse=%d terrain=%d",
			ErrInvariantViolated, len(g.forward), len(g.reverse), len(g.terrain))
	}

	edges := 0
	for a, out := range g.forward {
		if _, ok := g.reverse[a]; !ok {
			return fmt.Errorf("%w: point %d missing from reverse index", ErrInvariantViolated, a)
		}
		if _, ok := g.terrain[a]; !ok {
			return fmt.Errorf("%w: point %d has no terrain", ErrInvariantViolated, a)
		}
		for b, w := range out {
			rw, ok := g.reverse[b][a]
			if !ok {
				return fmt.Errorf("%w: %d->%d has no reverse entry", ErrInvariantViolated, a, b)
			}
			if rw != w {
				return fmt.Errorf("%w: %d->%d weight %g, reverse weight %g",
					ErrInvariantViolated, a, b, float64(w), float64(rw))
			}
			edges++
		}
	}

	for b, in := range g.reverse {
		for a := range in {
			if _, ok := g.forward[a][b]; !ok {
				return fmt.Errorf("%w: reverse entry %d<-%d has no forward entry", ErrInvariantViolated, b, a)
			}
		}
	}

	for _, v := range g.disabled.Values() {
		if id := v.(PointID); !g.HasPoint(id) {
			return fmt.Errorf("%w: disabled id %d is not a point", ErrInvariantViolated, id)
		}
	}

	if edges != g.edgeCount {
		return fmt.Errorf("%w: connection count %d, forward index holds %d",
			ErrInvariantViolated, g.edgeCount, edges)
	}

	return nil
}
