// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: Batch nearest-point lookup fanned out over an errgroup.
// Concurrency:
//   - Workers are capped at GOMAXPROCS and write to disjoint result slots.

package spatial

import (
	"context"
	"fmt"
	"runtime"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/influencemap/core"
)

// NearestEach resolves the nearest point for every position in ps, in
// parallel, and returns the ids in the same order as ps. It stops early and
// returns ctx.Err() when ctx is cancelled. Typical use: turning a batch of
// world positions into the source points of one influence computation.
func (x *Index) NearestEach(ctx context.Context, ps []orb.Point) ([]core.PointID, error) {
	out := make([]core.PointID, len(ps))
	if len(ps) == 0 {
		return out, nil
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range ps {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id, err := x.Nearest(p)
			if err != nil {
				return fmt.Errorf("spatial: NearestEach[%d] %v: %w", i, p, err)
			}
			out[i] = id
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
