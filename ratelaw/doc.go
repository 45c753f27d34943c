// Package ratelaw constructs convenience-kinetics rate laws for reversible
// enzyme-catalyzed reactions of arbitrary stoichiometry
// (Liebermeister & Klipp 2006).
//
// 🚀 What is convenience kinetics?
//
//	A generalized Michaelis–Menten-like rate law valid for any number of
//	substrates and products and any stoichiometric coefficients. For a
//	reaction  Σ nᵢ·Sᵢ ⇌ Σ mⱼ·Pⱼ  with normalized concentrations
//	xᵢ = [Sᵢ]/Kmᵢ the net velocity is
//
//	         kcat⁺·∏ xᵢ^nᵢ − kcat⁻·∏ xⱼ^mⱼ
//	  v = E ─────────────────────────────────
//	         ∏(1+xᵢ+…+xᵢ^nᵢ)·∏(1+xⱼ+…+xⱼ^mⱼ) − 1
//
//	The numerator is the mass-action-like driving force; each denominator
//	factor 1+x+…+x^n sums the enzyme-occupancy microstates for one species;
//	the −1 removes the double-counted fully-unbound state. At chemical
//	equilibrium the numerator, and therefore the rate, is exactly zero.
//
// ✨ Key features:
//   - Build: symbolic rate expression over symexpr, one variable per species
//   - At: direct numeric evaluation for a concentration map (no tree walk)
//   - activation/inhibition modulators composing multiplicatively
//   - strict validation before any computation — no partial results
//
// ⚙️ Usage:
//
//	import "github.com/ryanguo13/TwoSubEnzyme/ratelaw"
//
//	p := ratelaw.Params{
//	  Left:      []ratelaw.Reactant{{Species: "S", Stoich: 1, Km: 0.5}},
//	  Right:     []ratelaw.Reactant{{Species: "P", Stoich: 1, Km: 2.0}},
//	  KcatPlus:  10, KcatMinus: 1, Etot: 0.01,
//	}
//	expr, err := ratelaw.Build(p)   // symbolic, for rendering/substitution
//	v, err := ratelaw.At(p, map[string]float64{"S": 1.2, "P": 0.3})
//
// For stoichiometry 1 ⇌ 1 the law reduces to the reversible
// Michaelis–Menten form
// E·(kcat⁺·S/Ks − kcat⁻·P/Kp)/((1 + S/Ks)(1 + P/Kp) − 1).
//
// All functions are pure: no shared state, no caching, identical inputs give
// identical outputs. Grid or batch evaluation may therefore run each point
// in parallel (see the sweep package).
//
// Errors:
//   - ErrEmptySide, ErrZeroStoichiometry, ErrNegativeStoichiometry,
//     ErrDuplicateSpecies — malformed reaction sides
//   - ErrNonPositiveKm, ErrNonPositiveKcat, ErrNonPositiveEnzyme —
//     non-positive kinetic parameters
//   - ErrUnknownSpecies, ErrNegativeConcentration — malformed concentration
//     maps passed to At
//   - ErrZeroDenominator — numeric fault when every saturation polynomial is
//     exactly 1 (all concentrations zero)
//   - ErrNonPositiveConstant, ErrNegativeEffector — modulator preconditions
package ratelaw
