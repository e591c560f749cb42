// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for influencemap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep assertion failures short: every helper prefixes the failing operation.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/influencemap/core"
)

// Common point ids used across core tests.
const (
	ID0 core.PointID = 0
	ID1 core.PointID = 1
	ID2 core.PointID = 2
	ID3 core.PointID = 3

	IDMissing core.PointID = 99
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	WeightZero core.Weight = 0
	WeightHalf core.Weight = 0.5
	Weight2    core.Weight = 2
	Weight7    core.Weight = 7.25
)

// Common sizes for concurrency and randomized tests.
const (
	NWriters      = 16
	NReaders      = 16
	NOpsPerWorker = 200
	NRandomOps    = 2000
	NRandomIDs    = 24
	RandomSeed    = 42
)

// setupAdd012 RETURNS a graph holding points 0, 1, 2 with the default terrain.
func setupAdd012(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []core.PointID{ID0, ID1, ID2} {
		MustNoError(t, g.AddPoint(id, core.DefaultTerrain()), "AddPoint")
	}

	return g
}

// setupChain012 RETURNS setupAdd012 with 0↔1 and 1↔2 connected at the default weight.
func setupChain012(t *testing.T) *core.Graph {
	t.Helper()

	g := setupAdd012(t)
	MustNoError(t, g.ConnectPoints(ID0, ID1), "ConnectPoints(0,1)")
	MustNoError(t, g.ConnectPoints(ID1, ID2), "ConnectPoints(1,2)")

	return g
}

// MustNoError FAILS the test immediately if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		t.Fatalf("%s: want true; got false", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		t.Fatalf("%s: want false; got true", op)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got != want {
		t.Fatalf("%s: got %d; want %d", op, got, want)
	}
}

// MustConsistent FAILS the test if the store's invariants do not hold.
func MustConsistent(t *testing.T, g *core.Graph, op string) {
	t.Helper()

	if err := g.CheckInvariants(); err != nil {
		t.Fatalf("%s: %v", op, err)
	}
}

// MustNoDanglingRefs FAILS the test if any remaining point still references id
// in its outgoing or incoming connections.
func MustNoDanglingRefs(t *testing.T, g *core.Graph, id core.PointID, op string) {
	t.Helper()

	for _, p := range g.Points() {
		out, err := g.OutgoingConnections(p)
		MustNoError(t, err, op)
		for _, c := range out {
			if c.To == id {
				t.Fatalf("%s: %v still points to removed %d", op, c, id)
			}
		}
		in, err := g.IncomingConnections(p)
		MustNoError(t, err, op)
		for _, c := range in {
			if c.From == id {
				t.Fatalf("%s: %v still comes from removed %d", op, c, id)
			}
		}
	}
}
