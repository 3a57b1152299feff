// Package engine - Batch computation
package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"datacenter-tco/core/types"
)

// ComputeBatch computes every scenario against the same base costs and
// deployment context, in parallel. Results keep the order of the input
// slice. The only error is context cancellation; individual computations
// cannot fail.
func (e *Engine) ComputeBatch(ctx context.Context, scenarios []types.ScenarioParameters, base types.BaseTCOInput, cctx types.ComputationContext) ([]*types.ComputationBreakdown, error) {
	results := make([]*types.ComputationBreakdown, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Compute(scenario, base, cctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
