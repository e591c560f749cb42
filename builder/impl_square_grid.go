// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// impl_square_grid.go — SquareGrid(bounds) constructor.
//
// Contract:
//   • One point per whole unit cell of bounds, row-major ids from the offset.
//   • Orthogonal neighbours (right, down) connected both ways at the orthogonal weight.
//   • With WithDiagonalWeight: down-right and down-left neighbours connected
//     both ways at the diagonal weight.
//
// Complexity:
//   • Time O(cells), Space O(cells) for the id table.

package builder

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/influencemap/core"
)

const methodSquareGrid = "SquareGrid"

// SquareGrid returns a Constructor that lays a square grid over bounds.
func SquareGrid(bounds orb.Bound) Constructor {
	return func(g *core.Graph, s *BuildState) error {
		cols, rows, err := gridDims(methodSquareGrid, bounds)
		if err != nil {
			return err
		}
		ids, err := addCells(g, s, methodSquareGrid, bounds, cols, rows)
		if err != nil {
			return err
		}

		ortho, diag := s.cfg.orthogonal, s.cfg.diagonal
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := link(g, methodSquareGrid, u, ids[r*cols+c+1], ortho); err != nil {
						return err
					}
				}
				if r+1 >= rows {
					continue
				}
				if err := link(g, methodSquareGrid, u, ids[(r+1)*cols+c], ortho); err != nil {
					return err
				}
				if !s.cfg.withDiagonals {
					continue
				}
				if c+1 < cols {
					if err := link(g, methodSquareGrid, u, ids[(r+1)*cols+c+1], diag); err != nil {
						return err
					}
				}
				if c > 0 {
					if err := link(g, methodSquareGrid, u, ids[(r+1)*cols+c-1], diag); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
