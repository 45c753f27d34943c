// Package ode integrates small non-stiff systems of ordinary differential
// equations with the classical fixed-step fourth-order Runge–Kutta method.
//
// It exists to drive time-course simulations of reaction networks whose
// right-hand sides are built from convenience-kinetics rate laws; it is not
// a general-purpose solver suite (no adaptive stepping, no stiff methods).
//
// ⚙️ Usage:
//
//	fn := func(t float64, y, dydt []float64) {
//	  v := rate(y) // net reaction velocity at the current state
//	  dydt[0], dydt[1] = -v, +v
//	}
//	traj, err := ode.Integrate(ctx, fn, []float64{1, 0}, 0, 50, ode.DefaultOptions())
//
// The integrator checks the state for NaN/Inf after every step and honors
// context cancellation between steps; a canceled run returns ctx.Err() and
// no partial trajectory.
//
// Errors:
//   - ErrNilFunc, ErrEmptyState, ErrBadInterval, ErrNonPositiveStep,
//     ErrTooManySteps — precondition violations
//   - ErrInvalidState — NaN or Inf detected mid-integration
package ode
