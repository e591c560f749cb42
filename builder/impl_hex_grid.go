// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// impl_hex_grid.go — HexGrid(bounds) constructor.
//
// Canonical model:
//   • Pointy-top hexagons in "odd-r" offset coordinates: odd rows are drawn
//     half a cell to the right. Layout positions are the integer offset
//     coordinates (Min.X+c, Min.Y+r), not the drawn centres.
//   • Neighbours of (c, r): (c±1, r); on even rows (c-1, r±1), (c, r±1);
//     on odd rows (c, r±1), (c+1, r±1).
//   • Every connection is bidirectional at the orthogonal weight.
//
// Complexity:
//   • Time O(cells), Space O(cells).

package builder

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/influencemap/core"
)

const methodHexGrid = "HexGrid"

// HexGrid returns a Constructor that lays a hexagonal grid over bounds.
func HexGrid(bounds orb.Bound) Constructor {
	return func(g *core.Graph, s *BuildState) error {
		cols, rows, err := gridDims(methodHexGrid, bounds)
		if err != nil {
			return err
		}
		ids, err := addCells(g, s, methodHexGrid, bounds, cols, rows)
		if err != nil {
			return err
		}

		w := s.cfg.orthogonal
		for r := 0; r < rows; r++ {
			// Column shift of the two lower neighbours relative to c.
			lo, hi := -1, 0
			if r%2 == 1 {
				lo, hi = 0, 1
			}
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := link(g, methodHexGrid, u, ids[r*cols+c+1], w); err != nil {
						return err
					}
				}
				if r+1 >= rows {
					continue
				}
				for _, dc := range [2]int{lo, hi} {
					nc := c + dc
					if nc < 0 || nc >= cols {
						continue
					}
					if err := link(g, methodHexGrid, u, ids[(r+1)*cols+nc], w); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
