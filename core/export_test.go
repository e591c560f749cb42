// SPDX-License-Identifier: MIT
// Test-only access to internals for invariant-checker tests.

package core

// DropReverseEntry deletes reverse[b][a] without touching forward, breaking the
// mirror invariant on purpose.
func DropReverseEntry(g *Graph, a, b PointID) {
	delete(g.reverse[b], a)
}

// DropTerrain deletes the terrain record of id, breaking the key-set invariant.
func DropTerrain(g *Graph, id PointID) {
	delete(g.terrain, id)
}
