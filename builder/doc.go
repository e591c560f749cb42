// Package builder populates a core.Graph with regular grid topologies and
// returns the position of every point it created.
//
// The package offers the following key components:
//
//   - Constructors (type Constructor):
//     – SquareGrid(bounds):  4-neighbourhood grid, plus diagonals when WithDiagonalWeight is set.
//     – HexGrid(bounds):     6-neighbourhood hexagonal grid in odd-row offset coordinates.
//   - Entry points:
//     – BuildGraph:  create a fresh core.Graph and apply constructors in order.
//     – AddToGraph:  apply constructors to an existing graph (e.g. next to hand-made points).
//   - Options (type Option):
//     – WithIDOffset, WithTerrain, WithOrthogonalWeight, WithDiagonalWeight.
//   - Layout: bidirectional position ↔ PointID lookup for everything built.
//   - BuildState: handed to every Constructor; custom constructors add points
//     and connections through NewPoint and Link.
//
// Cells are unit squares. A bound of width W and height H yields floor(W)
// columns and floor(H) rows; cell (c, r) sits at (Min.X+c, Min.Y+r).
// One grid holds at most MaxGridCells cells.
// Point ids are assigned consecutively from the offset in row-major order,
// continuing across constructors in one call.
//
// Guarantees:
//
//   - Deterministic: equal inputs give equal ids, positions and connections.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime failures (empty or oversized bounds, id collisions) are returned
//     as errors wrapped with the constructor name; errors.Is works against
//     ErrEmptyBounds, ErrBoundsTooLarge and the core sentinels.
//   - No partial cleanup: points and connections added before a failure stay.
package builder
