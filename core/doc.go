// Package core provides the influence-map graph store: a weighted, directed
// graph of caller-labeled points that a multi-source shortest-path engine
// reads from.
//
// The store keeps two adjacency views that always agree:
//
//	forward[source][target] = weight   // who does X point to
//	reverse[target][source] = weight   // who points to X
//
// plus a terrain tag per point and a set of disabled points. Every mutation
// updates both views, so "outgoing" and "incoming" queries cost O(degree) and
// cascade deletion never scans the whole graph.
//
// Points:
//
//	AddPoint(id PointID, terrain TerrainType) error   // ErrDuplicateID
//	RemovePoint(id PointID) error                     // ErrUnknownPoint; drops every incident connection
//	HasPoint(id PointID) bool
//	Points() []PointID                                // ascending
//
// Connections:
//
//	ConnectPoints(source, target PointID, opts ...ConnectOption) error
//	RemoveConnection(source, target PointID, opts ...ConnectOption) error
//	HasConnection(source, target PointID) bool
//	OutgoingConnections(id) / IncomingConnections(id) ([]Connection, error)
//
// ConnectPoints defaults to weight 1.0 in both directions; WithWeight and
// Unidirectional override that. A bidirectional call is two unidirectional
// steps: the reverse step runs only if the forward step succeeded, and a
// failing reverse step does not undo the forward step.
//
// Per-point state:
//
//	DisablePoint(id) / EnablePoint(id) error          // idempotent, points start enabled
//	IsPointDisabled(id) bool                          // unknown ⇒ false
//	SetTerrainForPoint(id, terrain) error
//	TerrainForPoint(id) (TerrainType, error)          // unknown ⇒ ErrUnknownPoint
//
// Concurrency:
//
// Graph is not synchronized. Hosts sharing a store across goroutines should
// use SyncGraph, which puts the whole store behind one sync.RWMutex.
//
// Errors:
//
//	ErrDuplicateID       – AddPoint with an existing id
//	ErrUnknownPoint      – operation referenced a missing id
//	ErrInvariantViolated – CheckInvariants found the views out of sync
package core
