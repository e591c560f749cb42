// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Declares PointID, Weight, Connection, Graph, GraphOption, ConnectOption,
//       sentinel errors and the NewGraph constructor.
// Policy:
//   - Graph is NOT synchronized; wrap it in SyncGraph when shared across goroutines.
//   - Option constructors validate and panic on meaningless input; Graph methods never panic.
//
// Errors:
//
//	ErrDuplicateID       - AddPoint with an id that already exists.
//	ErrUnknownPoint      - an operation referenced an id that does not exist.
//	ErrInvariantViolated - CheckInvariants found forward/reverse/terrain disagreement.
package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"go.uber.org/zap"
)

// Sentinel errors for graph store operations.
var (
	// ErrDuplicateID indicates an attempt to add a point whose id is already present.
	ErrDuplicateID = errors.New("core: point id already exists")

	// ErrUnknownPoint indicates an operation referenced a point id that is not present.
	ErrUnknownPoint = errors.New("core: unknown point")

	// ErrInvariantViolated indicates that the forward, reverse and terrain structures disagree.
	// Only CheckInvariants returns it; seeing it means the store was corrupted.
	ErrInvariantViolated = errors.New("core: graph invariant violated")
)

// PointID is an opaque, caller-supplied point handle.
// It is unique among existing points and may be reused after removal.
type PointID int64

// Weight is the non-negative cost of a connection.
type Weight float64

// DefaultWeight is the weight used by ConnectPoints when WithWeight is not given.
const DefaultWeight Weight = 1.0

// Connection is a copy of one directed, weighted edge as seen from the store.
type Connection struct {
	// From is the source point.
	From PointID

	// To is the target point.
	To PointID

	// Weight is the connection cost.
	Weight Weight
}

// String renders the connection as "from->to(weight)".
func (c Connection) String() string {
	return fmt.Sprintf("%d->%d(%g)", c.From, c.To, float64(c.Weight))
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger attaches a structured logger. Mutations and rejected calls are
// logged at Debug level. Panics on nil; use zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(g *Graph) { g.log = l }
}

// WithCapacity pre-sizes the internal maps for n points.
// Panics on negative n.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(negative)")
	}
	return func(g *Graph) { g.capacity = n }
}

// connectConfig holds the resolved arguments of ConnectPoints/RemoveConnection.
type connectConfig struct {
	weight        Weight
	bidirectional bool
}

// ConnectOption customizes a single ConnectPoints or RemoveConnection call.
type ConnectOption func(*connectConfig)

// WithWeight sets the connection weight (default DefaultWeight).
// Zero, fractional and +Inf weights are valid. Panics on negative or NaN weights.
// RemoveConnection ignores it.
func WithWeight(w Weight) ConnectOption {
	if math.IsNaN(float64(w)) || w < 0 {
		panic(fmt.Sprintf("core: WithWeight(%v): weight must be a non-negative number", float64(w)))
	}
	return func(c *connectConfig) { c.weight = w }
}

// Unidirectional restricts the call to the source→target direction only.
// Without it both directions are connected (or removed).
func Unidirectional() ConnectOption {
	return func(c *connectConfig) { c.bidirectional = false }
}

// resolveConnect applies opts over the defaults {DefaultWeight, bidirectional}.
func resolveConnect(opts []ConnectOption) connectConfig {
	cfg := connectConfig{weight: DefaultWeight, bidirectional: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Graph is the influence-map graph store.
//
// forward[a][b] = w  ⇔  reverse[b][a] = w, and forward, reverse and terrain
// always share the same key set. disabled is a subset of that key set.
// sortedPoints is an opaque slot owned by the downstream pathfinding engine.
type Graph struct {
	log      *zap.Logger
	capacity int

	// forward[source][target] = weight
	forward map[PointID]map[PointID]Weight
	// reverse[target][source] = weight
	reverse map[PointID]map[PointID]Weight

	terrain  map[PointID]TerrainType
	disabled *treeset.Set // of PointID, ordered ascending

	edgeCount    int
	sortedPoints []PointID
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity) when WithCapacity is given, O(1) otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g
}

// reset allocates fresh, empty storage honoring the configured capacity.
func (g *Graph) reset() {
	g.forward = make(map[PointID]map[PointID]Weight, g.capacity)
	g.reverse = make(map[PointID]map[PointID]Weight, g.capacity)
	g.terrain = make(map[PointID]TerrainType, g.capacity)
	g.disabled = treeset.NewWith(comparePointIDs)
	g.edgeCount = 0
	g.sortedPoints = nil
}

// comparePointIDs orders PointID values ascending for the disabled set.
func comparePointIDs(a, b interface{}) int {
	x, y := a.(PointID), b.(PointID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
