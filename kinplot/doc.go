// Package kinplot renders kinetics results — steady-state surfaces,
// flux-ratio curves, and time courses — with gonum.org/v1/plot.
//
// It is a one-way consumer: it reads numeric arrays produced by the sweep
// and ode packages and emits figures, feeding nothing back into the rate-law
// core.
//
// ⚙️ Usage:
//
//	p, err := kinplot.HeatMap(grid, kinplot.Config{
//	  Title: "steady-state rate", XLabel: "[A] mmol/L", YLabel: "[B] mmol/L",
//	})
//	if err == nil {
//	  err = kinplot.Save(p, "surface.png")
//	}
package kinplot
