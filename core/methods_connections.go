// SPDX-License-Identifier: MIT
//
// File: methods_connections.go
// Role: Connection lifecycle (ConnectPoints/RemoveConnection) and connection queries.
//
// Contract:
//   - A bidirectional call is two unidirectional steps: source→target, then
//     target→source only if the first step succeeded.
//   - There is no rollback: if the second step fails, the first step's effect
//     stays in the store and the call reports the error.
//   - Every step writes forward and reverse together, so the store stays
//     internally consistent even after a partial failure.

package core

import "go.uber.org/zap"

// ConnectPoints connects source to target.
//
// Defaults: weight DefaultWeight (1.0), bidirectional. Use WithWeight and
// Unidirectional to override.
//
// Implementation:
//   - Stage 1: Resolve options.
//   - Stage 2: Connect source→target.
//   - Stage 3: If bidirectional and Stage 2 succeeded, connect target→source with the same weight.
//
// Behavior highlights:
//   - Re-connecting an existing pair overwrites its weight (last write wins).
//   - Self-connections (source == target) are accepted.
//
// Errors:
//   - ErrUnknownPoint: source or target does not exist.
//
// Complexity:
//   - Time O(1), Space O(1) amortized.
func (g *Graph) ConnectPoints(source, target PointID, opts ...ConnectOption) error {
	cfg := resolveConnect(opts)
	if err := g.connect(source, target, cfg.weight); err != nil {
		return err
	}
	if !cfg.bidirectional {
		return nil
	}

	return g.connect(target, source, cfg.weight)
}

// connect performs the unidirectional a→b step.
func (g *Graph) connect(a, b PointID, w Weight) error {
	out, ok := g.forward[a]
	if !ok {
		g.log.Debug("connect rejected", zap.Int64("source", int64(a)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}
	in, ok := g.reverse[b]
	if !ok {
		g.log.Debug("connect rejected", zap.Int64("target", int64(b)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}

	if _, exists := out[b]; !exists {
		g.edgeCount++
	}
	out[b] = w
	in[a] = w
	g.log.Debug("points connected",
		zap.Int64("source", int64(a)),
		zap.Int64("target", int64(b)),
		zap.Float64("weight", float64(w)),
	)

	return nil
}

// RemoveConnection removes the connection from source to target and, unless
// Unidirectional is given, the connection from target to source.
//
// Implementation:
//   - Stage 1: Remove source→target.
//   - Stage 2: If bidirectional and Stage 1 succeeded, remove target→source.
//
// Behavior highlights:
//   - Removing a connection that does not exist between existing points is a no-op.
//   - Never removes a point.
//
// Errors:
//   - ErrUnknownPoint: the source of a step does not exist. For a bidirectional
//     call with an unknown target, the first step is a no-op and the second
//     step reports the error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) RemoveConnection(source, target PointID, opts ...ConnectOption) error {
	cfg := resolveConnect(opts)
	if err := g.disconnect(source, target); err != nil {
		return err
	}
	if !cfg.bidirectional {
		return nil
	}

	return g.disconnect(target, source)
}

// disconnect performs the unidirectional a→b removal. Only a is required to
// exist; the reverse entry is removed from b's bucket so both views stay mirrored.
func (g *Graph) disconnect(a, b PointID) error {
	out, ok := g.forward[a]
	if !ok {
		g.log.Debug("disconnect rejected", zap.Int64("source", int64(a)), zap.Error(ErrUnknownPoint))
		return ErrUnknownPoint
	}
	if _, exists := out[b]; !exists {
		return nil
	}

	delete(out, b)
	if in, exists := g.reverse[b]; exists {
		delete(in, a)
	}
	g.edgeCount--
	g.log.Debug("points disconnected", zap.Int64("source", int64(a)), zap.Int64("target", int64(b)))

	return nil
}

// HasConnection reports whether the directed connection source→target exists.
// Unknown points yield false. O(1).
func (g *Graph) HasConnection(source, target PointID) bool {
	_, ok := g.forward[source][target]

	return ok
}

// ConnectionWeight returns the weight of source→target and whether it exists.
// O(1).
func (g *Graph) ConnectionWeight(source, target PointID) (Weight, bool) {
	w, ok := g.forward[source][target]

	return w, ok
}

// ConnectionCount returns the number of directed connections.
// A bidirectional pair counts as two. O(1).
func (g *Graph) ConnectionCount() int {
	return g.edgeCount
}
