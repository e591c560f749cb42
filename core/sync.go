// SPDX-License-Identifier: MIT
//
// File: sync.go
// Role: SyncGraph, a single mutual-exclusion boundary around Graph for hosts
//       that share one store across goroutines.
//
// Concurrency:
//   - One sync.RWMutex guards the whole store. Mutations take the write lock,
//     queries the read lock. Operations are short, so there is no finer locking.
//   - View/Update run a caller function under one lock acquisition, for
//     consistent multi-call reads and batched writes.

package core

import "sync"

// SyncGraph wraps a Graph behind a single RWMutex. Every mutation and the
// per-point and neighbourhood reads have locked pass-throughs; use View for
// any other read or for several reads that must see one state.
// The zero value is not usable; construct with NewSyncGraph or Synchronized.
type SyncGraph struct {
	mu sync.RWMutex
	g  *Graph
}

// NewSyncGraph creates an empty, synchronized store.
func NewSyncGraph(opts ...GraphOption) *SyncGraph {
	return &SyncGraph{g: NewGraph(opts...)}
}

// Synchronized takes ownership of g. The caller must not use g directly afterwards.
func Synchronized(g *Graph) *SyncGraph {
	return &SyncGraph{g: g}
}

// View runs fn with read access to the store. fn must not mutate the graph
// and must not retain it after returning.
func (s *SyncGraph) View(fn func(g *Graph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Update runs fn with exclusive access to the store and returns its error.
// Mutations made by fn before it fails are kept.
func (s *SyncGraph) Update(fn func(g *Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.g)
}

// Snapshot returns an independent deep copy taken under the read lock.
func (s *SyncGraph) Snapshot() *Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}

// AddPoint is the synchronized Graph.AddPoint.
func (s *SyncGraph) AddPoint(id PointID, terrain TerrainType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddPoint(id, terrain)
}

// RemovePoint is the synchronized Graph.RemovePoint.
func (s *SyncGraph) RemovePoint(id PointID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemovePoint(id)
}

// ConnectPoints is the synchronized Graph.ConnectPoints. Both directions of a
// bidirectional call happen under one lock acquisition.
func (s *SyncGraph) ConnectPoints(source, target PointID, opts ...ConnectOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.ConnectPoints(source, target, opts...)
}

// RemoveConnection is the synchronized Graph.RemoveConnection.
func (s *SyncGraph) RemoveConnection(source, target PointID, opts ...ConnectOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveConnection(source, target, opts...)
}

// DisablePoint is the synchronized Graph.DisablePoint.
func (s *SyncGraph) DisablePoint(id PointID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.DisablePoint(id)
}

// EnablePoint is the synchronized Graph.EnablePoint.
func (s *SyncGraph) EnablePoint(id PointID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.EnablePoint(id)
}

// SetTerrainForPoint is the synchronized Graph.SetTerrainForPoint.
func (s *SyncGraph) SetTerrainForPoint(id PointID, terrain TerrainType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.SetTerrainForPoint(id, terrain)
}

// Clear is the synchronized Graph.Clear.
func (s *SyncGraph) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Clear()
}

// HasPoint is the synchronized Graph.HasPoint.
func (s *SyncGraph) HasPoint(id PointID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasPoint(id)
}

// HasConnection is the synchronized Graph.HasConnection.
func (s *SyncGraph) HasConnection(source, target PointID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasConnection(source, target)
}

// IsPointDisabled is the synchronized Graph.IsPointDisabled.
func (s *SyncGraph) IsPointDisabled(id PointID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.IsPointDisabled(id)
}

// TerrainForPoint is the synchronized Graph.TerrainForPoint.
func (s *SyncGraph) TerrainForPoint(id PointID) (TerrainType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.TerrainForPoint(id)
}

// Points is the synchronized Graph.Points.
func (s *SyncGraph) Points() []PointID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Points()
}

// OutgoingConnections is the synchronized Graph.OutgoingConnections.
func (s *SyncGraph) OutgoingConnections(id PointID) ([]Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.OutgoingConnections(id)
}

// IncomingConnections is the synchronized Graph.IncomingConnections.
func (s *SyncGraph) IncomingConnections(id PointID) ([]Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.IncomingConnections(id)
}

// ConnectionWeight is the synchronized Graph.ConnectionWeight.
func (s *SyncGraph) ConnectionWeight(source, target PointID) (Weight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.ConnectionWeight(source, target)
}

// DisabledPoints is the synchronized Graph.DisabledPoints.
func (s *SyncGraph) DisabledPoints() []PointID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.DisabledPoints()
}

// PointsWithTerrain is the synchronized Graph.PointsWithTerrain.
func (s *SyncGraph) PointsWithTerrain(t TerrainType) []PointID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.PointsWithTerrain(t)
}
