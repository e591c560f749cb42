// SPDX-License-Identifier: MIT
// Package: influencemap/builder
//
// helpers.go — shared grid helpers for the constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/influencemap/core"
)

func pointAt(x, y float64) orb.Point { return orb.Point{x, y} }

// gridDims returns the number of whole unit cells along each axis of b.
// Infinite extents and grids above MaxGridCells fail with ErrBoundsTooLarge;
// the cell count is checked in float64 before any int conversion.
func gridDims(method string, b orb.Bound) (cols, rows int, err error) {
	w, h := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	if math.IsNaN(w) || math.IsNaN(h) || w < 1 || h < 1 {
		return 0, 0, builderErrorf(method, fmt.Sprintf("bounds %vx%v", w, h), ErrEmptyBounds)
	}
	fc, fr := math.Floor(w), math.Floor(h)
	if math.IsInf(w, 0) || math.IsInf(h, 0) || fc*fr > MaxGridCells {
		return 0, 0, builderErrorf(method, fmt.Sprintf("bounds %vx%v", w, h), ErrBoundsTooLarge)
	}

	return int(fc), int(fr), nil
}

// addCells adds one point per cell in row-major order and returns their ids
// indexed [r*cols+c].
func addCells(g *core.Graph, s *BuildState, method string, b orb.Bound, cols, rows int) ([]core.PointID, error) {
	ids := make([]core.PointID, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id, err := s.newPoint(g, method, pointAt(b.Min.X()+float64(c), b.Min.Y()+float64(r)))
			if err != nil {
				return nil, err
			}
			ids[r*cols+c] = id
		}
	}

	return ids, nil
}

// link connects u and v in both directions at weight w.
func link(g *core.Graph, method string, u, v core.PointID, w core.Weight) error {
	if err := g.ConnectPoints(u, v, core.WithWeight(w)); err != nil {
		return builderErrorf(method, fmt.Sprintf("ConnectPoints(%d↔%d, w=%g)", u, v, float64(w)), err)
	}

	return nil
}
