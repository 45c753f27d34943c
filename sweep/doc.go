// Package sweep evaluates scalar functions over concentration grids and
// axes: the batch layer behind steady-state surfaces and flux-ratio curves.
//
// Every grid point is an independent pure evaluation, so Surface fans rows
// out across a bounded worker pool (golang.org/x/sync/errgroup). The first
// evaluation error cancels the batch and the remaining points are simply
// discarded; there is no shared mutable state beyond each worker's disjoint
// slice of the result.
//
// ⚙️ Usage:
//
//	xs, _ := sweep.Span(0, 5, 101)
//	ys, _ := sweep.Span(0, 5, 101)
//	grid, err := sweep.Surface(ctx, func(a, b float64) (float64, error) {
//	  return ratelaw.At(p, map[string]float64{"A": a, "B": b, "C": 0.1, "D": 0.1})
//	}, xs, ys, sweep.DefaultOptions())
//
// Grid exposes Dims/X/Y/Z and therefore plugs directly into
// gonum.org/v1/plot's plotter.HeatMap.
package sweep
