package ode_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanguo13/TwoSubEnzyme/ode"
)

// TestIntegrate_ExponentialDecay checks RK4 against the closed-form solution
// of y′ = −y: the global error of RK4 at step h scales as O(h⁴).
func TestIntegrate_ExponentialDecay(t *testing.T) {
	fn := func(_ float64, y, dydt []float64) { dydt[0] = -y[0] }

	opts := ode.Options{Step: 0.01, MaxSteps: 1_000_000}
	traj, err := ode.Integrate(context.Background(), fn, []float64{1}, 0, 5, opts)
	require.NoError(t, err)

	last := traj.Y[len(traj.Y)-1][0]
	assert.InDelta(t, math.Exp(-5), last, 1e-9)
	assert.InDelta(t, 5.0, traj.T[len(traj.T)-1], 1e-12, "must land exactly on t1")
}

// TestIntegrate_Harmonic checks a 2-dimensional system (harmonic oscillator)
// and the Component accessor.
func TestIntegrate_Harmonic(t *testing.T) {
	fn := func(_ float64, y, dydt []float64) {
		dydt[0] = y[1]
		dydt[1] = -y[0]
	}
	opts := ode.Options{Step: 0.001, MaxSteps: 1_000_000}
	traj, err := ode.Integrate(context.Background(), fn, []float64{1, 0}, 0, 2*math.Pi, opts)
	require.NoError(t, err)

	assert.Equal(t, 2, traj.Dim())
	pos := traj.Component(0)
	assert.InDelta(t, 1.0, pos[len(pos)-1], 1e-8, "full period returns to start")
}

// TestIntegrate_InitialStateCopied verifies y0 is not mutated and that the
// first sample equals it.
func TestIntegrate_InitialStateCopied(t *testing.T) {
	fn := func(_ float64, y, dydt []float64) { dydt[0] = 1 }
	y0 := []float64{3}

	traj, err := ode.Integrate(context.Background(), fn, y0, 0, 1, ode.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3.0, y0[0], "caller's slice must be untouched")
	assert.Equal(t, 3.0, traj.Y[0][0])
	assert.InDelta(t, 4.0, traj.Y[len(traj.Y)-1][0], 1e-12)
}

// TestIntegrate_Rejections covers every precondition.
func TestIntegrate_Rejections(t *testing.T) {
	ctx := context.Background()
	fn := func(_ float64, y, dydt []float64) { dydt[0] = 0 }

	_, err := ode.Integrate(ctx, nil, []float64{1}, 0, 1, ode.DefaultOptions())
	assert.ErrorIs(t, err, ode.ErrNilFunc)

	_, err = ode.Integrate(ctx, fn, nil, 0, 1, ode.DefaultOptions())
	assert.ErrorIs(t, err, ode.ErrEmptyState)

	_, err = ode.Integrate(ctx, fn, []float64{1}, 1, 1, ode.DefaultOptions())
	assert.ErrorIs(t, err, ode.ErrBadInterval)

	_, err = ode.Integrate(ctx, fn, []float64{1}, 0, 1, ode.Options{Step: 0})
	assert.ErrorIs(t, err, ode.ErrNonPositiveStep)

	_, err = ode.Integrate(ctx, fn, []float64{1}, 0, 1, ode.Options{Step: 1e-9, MaxSteps: 10})
	assert.ErrorIs(t, err, ode.ErrTooManySteps)
}

// TestIntegrate_InvalidState ensures a diverging RHS is caught as
// ErrInvalidState rather than returning Inf silently.
func TestIntegrate_InvalidState(t *testing.T) {
	fn := func(_ float64, y, dydt []float64) { dydt[0] = y[0] * y[0] * 1e100 }
	_, err := ode.Integrate(context.Background(), fn, []float64{1e200}, 0, 1,
		ode.Options{Step: 0.1, MaxSteps: 100})
	assert.ErrorIs(t, err, ode.ErrInvalidState)
}

// TestIntegrate_Cancellation ensures a canceled context aborts the run with
// the context's error and no partial trajectory.
func TestIntegrate_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fn := func(_ float64, y, dydt []float64) { dydt[0] = 1 }
	traj, err := ode.Integrate(ctx, fn, []float64{0}, 0, 1, ode.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, traj.T)
}
