package ode

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilFunc indicates a nil right-hand-side function.
	ErrNilFunc = errors.New("ode: right-hand side must not be nil")

	// ErrEmptyState indicates an empty initial state vector.
	ErrEmptyState = errors.New("ode: initial state must be non-empty")

	// ErrBadInterval indicates t1 ≤ t0.
	ErrBadInterval = errors.New("ode: integration interval must have t1 > t0")

	// ErrNonPositiveStep indicates Options.Step ≤ 0.
	ErrNonPositiveStep = errors.New("ode: step size must be positive")

	// ErrTooManySteps indicates the interval needs more than Options.MaxSteps
	// steps at the configured step size.
	ErrTooManySteps = errors.New("ode: step budget exceeded")

	// ErrInvalidState indicates NaN or Inf appeared in the state vector.
	ErrInvalidState = errors.New("ode: invalid state (NaN or Inf detected)")
)

// Func is the right-hand side of the system y′(t) = f(t, y). Implementations
// write the derivative into dydt and must not retain either slice.
type Func func(t float64, y, dydt []float64)

// Options configures Integrate.
//   - Step — fixed step size; the final step is shortened to land on t1.
//   - MaxSteps — hard budget on the number of steps, guarding against an
//     accidentally tiny Step over a long interval.
type Options struct {
	Step     float64
	MaxSteps int
}

// DefaultOptions returns the integration defaults: Step 1e-3 and a budget of
// ten million steps.
func DefaultOptions() Options {
	return Options{Step: 1e-3, MaxSteps: 10_000_000}
}

// Trajectory holds the sampled solution: T[i] is the time of sample i and
// Y[i] the state vector at that time. Y[0] is a copy of the initial state.
type Trajectory struct {
	T []float64
	Y [][]float64
}

// Dim returns the dimension of the integrated system.
func (tr Trajectory) Dim() int {
	if len(tr.Y) == 0 {
		return 0
	}
	return len(tr.Y[0])
}

// Component returns the time series of state component i across the
// trajectory.
func (tr Trajectory) Component(i int) []float64 {
	out := make([]float64, len(tr.Y))
	for k, y := range tr.Y {
		out[k] = y[i]
	}
	return out
}

// Integrate advances y′ = fn(t, y) from (t0, y0) to t1 with classical RK4
// and returns the full sampled trajectory. y0 is not mutated.
//
// The state is validated after every step; the run aborts with
// ErrInvalidState on the first NaN/Inf, and with ctx.Err() if the context is
// canceled between steps. No partial trajectory is returned on error.
func Integrate(ctx context.Context, fn Func, y0 []float64, t0, t1 float64, opts Options) (Trajectory, error) {
	if fn == nil {
		return Trajectory{}, ErrNilFunc
	}
	if len(y0) == 0 {
		return Trajectory{}, ErrEmptyState
	}
	if t1 <= t0 {
		return Trajectory{}, fmt.Errorf("%w: [%g, %g]", ErrBadInterval, t0, t1)
	}
	if opts.Step <= 0 {
		return Trajectory{}, fmt.Errorf("%w: %g", ErrNonPositiveStep, opts.Step)
	}
	if need := (t1 - t0) / opts.Step; opts.MaxSteps > 0 && need > float64(opts.MaxSteps) {
		return Trajectory{}, fmt.Errorf("%w: interval needs ~%.0f steps, budget %d",
			ErrTooManySteps, math.Ceil(need), opts.MaxSteps)
	}

	n := len(y0)
	y := make([]float64, n)
	copy(y, y0)

	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	traj := Trajectory{
		T: []float64{t0},
		Y: [][]float64{append([]float64(nil), y...)},
	}

	t := t0
	for t < t1 {
		if err := ctx.Err(); err != nil {
			return Trajectory{}, err
		}
		h := opts.Step
		if t+h > t1 {
			h = t1 - t
		}

		fn(t, y, k1)
		for i := 0; i < n; i++ {
			tmp[i] = y[i] + 0.5*h*k1[i]
		}
		fn(t+0.5*h, tmp, k2)
		for i := 0; i < n; i++ {
			tmp[i] = y[i] + 0.5*h*k2[i]
		}
		fn(t+0.5*h, tmp, k3)
		for i := 0; i < n; i++ {
			tmp[i] = y[i] + h*k3[i]
		}
		fn(t+h, tmp, k4)

		for i := 0; i < n; i++ {
			y[i] += h / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
			if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
				return Trajectory{}, fmt.Errorf("%w: component %d at t = %g",
					ErrInvalidState, i, t+h)
			}
		}
		t += h

		traj.T = append(traj.T, t)
		traj.Y = append(traj.Y, append([]float64(nil), y...))
	}
	return traj, nil
}
