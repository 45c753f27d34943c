// Package twosubenzyme derives and evaluates closed-form rate laws for
// reversible enzyme-catalyzed reactions using convenience kinetics
// (Liebermeister & Klipp 2006) — a generalized Michaelis–Menten-like
// formulation valid for arbitrary reaction stoichiometry.
//
// 🚀 What does it do?
//
//	Given the species, stoichiometric coefficients and half-saturation
//	constants of a reaction's two sides, it builds the symbolic convenience
//	rate law, enforces thermodynamic consistency through the Haldane
//	relationship (deriving the reverse catalytic constant from ΔG°′ or an
//	explicit equilibrium constant), and evaluates the result numerically —
//	single points, parallel concentration grids, or full ODE time courses.
//
// Everything is organized under small single-concern packages:
//
//	symexpr/ — minimal symbolic expression trees: rational constants,
//	           variables, +, ×, ^, substitution, evaluation, LaTeX
//	ratelaw/ — the convenience-kinetics rate-law builder and the
//	           activation/inhibition modulators
//	thermo/  — Keq from ΔG°′, the Haldane relationship, and the
//	           thermodynamic-consistency wrapper
//	ode/     — fixed-step RK4 integration for closed-system time courses
//	sweep/   — parallel batch evaluation over concentration grids and axes
//	kinplot/ — heat maps and line plots via gonum/plot
//
// ⚙️ Quick start:
//
//	res, err := thermo.ConsistentRate(thermo.Input{
//	  TemperatureK: 310.15, DeltaGPrime: -12.5,
//	  Left:  []ratelaw.Reactant{{Species: "A", Stoich: 1, Km: 0.5},
//	                            {Species: "B", Stoich: 1, Km: 1.5}},
//	  Right: []ratelaw.Reactant{{Species: "C", Stoich: 1, Km: 2.0},
//	                            {Species: "D", Stoich: 1, Km: 0.8}},
//	  KcatPlus: 25, Etot: 0.01,
//	})
//	v, err := res.Rate.Eval(map[string]float64{"A": 1, "B": 1, "C": 0.1, "D": 0.1})
//
// Every core operation is a pure function over immutable inputs: no global
// state, no caching, no I/O. Runnable demonstrations live under examples/.
//
//	go get github.com/ryanguo13/TwoSubEnzyme
package twosubenzyme
