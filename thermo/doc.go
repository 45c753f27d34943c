// Package thermo enforces thermodynamic consistency on convenience-kinetics
// rate laws via the Haldane relationship.
//
// 🚀 Why does consistency matter?
//
//	Forward and reverse catalytic constants cannot be chosen independently:
//	at chemical equilibrium the net flux must vanish at exactly the
//	concentrations dictated by the reaction's equilibrium constant. The
//	Haldane relationship ties the kinetic parameters together:
//
//	  Keq = (kcat⁺ / kcat⁻) · ∏ Km_right^m / ∏ Km_left^n
//
//	Given a standard Gibbs free energy change ΔG°′ (or an explicit Keq
//	override) and a freely chosen kcat⁺, the reverse constant is derived as
//
//	  kcat⁻ = kcat⁺ · ∏ Km_right^m / (Keq · ∏ Km_left^n)
//
//	so the rate law respects the reaction's true thermodynamics regardless
//	of the arbitrarily chosen forward rate.
//
// ✨ Key features:
//   - EquilibriumConstant: Keq = exp(−ΔG°′/(R·T)), with overflow/underflow
//     surfaced as ErrKeqRange instead of silent saturation
//   - ReverseKcat: the Haldane relation solved for kcat⁻
//   - ConsistentRate: derives Keq and kcat⁻, delegates to ratelaw.Build, and
//     returns the derived parameters for caller audit
//
// ⚙️ Usage:
//
//	res, err := thermo.ConsistentRate(thermo.Input{
//	  TemperatureK: 298.15,
//	  DeltaGPrime:  -12.5, // kJ/mol
//	  Left:         left, Right: right,
//	  KcatPlus:     25, Etot: 0.01,
//	})
//	// res.Rate is the symbolic rate law, res.Keq and res.KcatMinus the
//	// derived thermodynamic parameters.
//
// All derived values are pure functions of their inputs, recomputed fresh on
// every call; there is no caching and no shared state.
package thermo
