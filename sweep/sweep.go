package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNilFunc indicates a nil evaluation function.
	ErrNilFunc = errors.New("sweep: evaluation function must not be nil")

	// ErrEmptyAxis indicates an empty axis slice.
	ErrEmptyAxis = errors.New("sweep: axis must be non-empty")

	// ErrTooFewPoints indicates a Span request with fewer than two points.
	ErrTooFewPoints = errors.New("sweep: span needs at least two points")
)

// Span returns n evenly spaced values from lo to hi inclusive.
func Span(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n = %d", ErrTooFewPoints, n)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// Func2 evaluates a scalar at one (x, y) grid point.
type Func2 func(x, y float64) (float64, error)

// Options configures batch evaluation.
//   - Workers — upper bound on concurrent row evaluations; values < 1 fall
//     back to GOMAXPROCS.
type Options struct {
	Workers int
}

// DefaultOptions returns the sweep defaults: one worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Grid is a dense row-major surface z(x, y). It satisfies gonum/plot's
// plotter.GridXYZ, with X as columns and Y as rows.
type Grid struct {
	xs, ys []float64
	z      []float64
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// X returns the x coordinate of column c.
func (g *Grid) X(c int) float64 { return g.xs[c] }

// Y returns the y coordinate of row r.
func (g *Grid) Y(r int) float64 { return g.ys[r] }

// Z returns the value at column c, row r.
func (g *Grid) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }

// Surface evaluates f at every (x, y) of the Cartesian grid xs × ys. Rows
// are evaluated in parallel; the first error cancels the whole batch.
func Surface(ctx context.Context, f Func2, xs, ys []float64, opts Options) (*Grid, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrEmptyAxis
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g := &Grid{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		z:  make([]float64, len(xs)*len(ys)),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for r := range g.ys {
		row := g.z[r*len(g.xs) : (r+1)*len(g.xs)]
		y := g.ys[r]
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for c, x := range g.xs {
				v, err := f(x, y)
				if err != nil {
					return fmt.Errorf("sweep: at (%g, %g): %w", x, y, err)
				}
				row[c] = v
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

// Curve evaluates f at every x of a 1-D axis, sequentially.
func Curve(f func(x float64) (float64, error), xs []float64) ([]float64, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if len(xs) == 0 {
		return nil, ErrEmptyAxis
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("sweep: at %g: %w", x, err)
		}
		out[i] = v
	}
	return out, nil
}
