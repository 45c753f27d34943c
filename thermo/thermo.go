package thermo

import (
	"errors"
	"fmt"
	"math"

	"github.com/ryanguo13/TwoSubEnzyme/ratelaw"
	"github.com/ryanguo13/TwoSubEnzyme/symexpr"
)

// GasConstant is the molar gas constant R in kJ/(mol·K) (CODATA 2018),
// matching ΔG°′ supplied in kJ/mol.
const GasConstant = 8.314462618e-3

var (
	// ErrNonPositiveTemperature indicates an absolute temperature ≤ 0 K.
	ErrNonPositiveTemperature = errors.New("thermo: temperature must be positive")

	// ErrNegativeOverride indicates an explicit Keq override < 0. A zero
	// override means "no override"; see Input.KeqOverride.
	ErrNegativeOverride = errors.New("thermo: Keq override must be positive")

	// ErrKeqRange is a numeric fault: the ΔG°′/T combination drove Keq to
	// overflow (+Inf) or underflow (0).
	ErrKeqRange = errors.New("thermo: equilibrium constant out of numeric range")

	// ErrNonPositiveKeq indicates a Keq ≤ 0 passed to ReverseKcat.
	ErrNonPositiveKeq = errors.New("thermo: equilibrium constant must be positive")

	// ErrKcatRange is a numeric fault: the derived kcat⁻ overflowed or
	// underflowed.
	ErrKcatRange = errors.New("thermo: derived kcat- out of numeric range")
)

// EquilibriumConstant derives Keq = exp(−ΔG°′/(R·T)) from a standard Gibbs
// free energy change (kJ/mol) and an absolute temperature (K).
//
// Errors: ErrNonPositiveTemperature; ErrKeqRange when the exponential
// overflows or underflows.
func EquilibriumConstant(deltaGPrime, temperatureK float64) (float64, error) {
	if temperatureK <= 0 {
		return 0, fmt.Errorf("%w: T = %g K", ErrNonPositiveTemperature, temperatureK)
	}
	keq := math.Exp(-deltaGPrime / (GasConstant * temperatureK))
	if keq == 0 || math.IsInf(keq, 1) {
		return 0, fmt.Errorf("%w: ΔG°′ = %g kJ/mol at T = %g K",
			ErrKeqRange, deltaGPrime, temperatureK)
	}
	return keq, nil
}

// ReverseKcat solves the Haldane relationship for the reverse catalytic
// constant:
//
//	kcat⁻ = kcat⁺ · ∏ Km_right^m / (Keq · ∏ Km_left^n)
//
// The reaction sides carry the same Reactant records handed to the rate-law
// builder, so the Km products use exactly the constants the rate law will.
//
// Errors: ErrNonPositiveKeq; ratelaw.ErrNonPositiveKcat for kcat⁺ ≤ 0; any
// side-validation error from ratelaw; ErrKcatRange when the quotient leaves
// the float64 range.
func ReverseKcat(keq, kcatPlus float64, left, right []ratelaw.Reactant) (float64, error) {
	if keq <= 0 {
		return 0, fmt.Errorf("%w: Keq = %g", ErrNonPositiveKeq, keq)
	}
	if kcatPlus <= 0 {
		return 0, fmt.Errorf("%w: kcat+ = %g", ratelaw.ErrNonPositiveKcat, kcatPlus)
	}
	probe := ratelaw.Params{
		Left: left, Right: right,
		KcatPlus: kcatPlus, KcatMinus: 1, Etot: 1,
	}
	if err := probe.Validate(); err != nil {
		return 0, err
	}

	kcatMinus := kcatPlus * kmProduct(right) / (keq * kmProduct(left))
	if kcatMinus <= 0 || math.IsInf(kcatMinus, 0) || math.IsNaN(kcatMinus) {
		return 0, fmt.Errorf("%w: %g", ErrKcatRange, kcatMinus)
	}
	return kcatMinus, nil
}

// kmProduct computes ∏ Km^stoich over one reaction side.
func kmProduct(side []ratelaw.Reactant) float64 {
	acc := 1.0
	for _, r := range side {
		for k := 0; k < r.Stoich; k++ {
			acc *= r.Km
		}
	}
	return acc
}

// Input parameterizes ConsistentRate.
//
//   - TemperatureK — absolute temperature in Kelvin; must be positive unless
//     KeqOverride is set.
//   - DeltaGPrime — standard Gibbs free energy change, kJ/mol; ignored when
//     KeqOverride is set.
//   - KeqOverride — if > 0, used directly as the equilibrium constant and
//     the ΔG°′/T derivation is skipped entirely. Zero means "derive from
//     ΔG°′"; negative values are rejected.
//   - Left, Right, KcatPlus, Etot — as in ratelaw.Params; kcat⁻ is derived,
//     never supplied.
type Input struct {
	TemperatureK float64
	DeltaGPrime  float64
	KeqOverride  float64

	Left  []ratelaw.Reactant
	Right []ratelaw.Reactant

	KcatPlus float64
	Etot     float64
}

// Result carries the built rate expression together with the derived
// thermodynamic parameters, so callers can audit the inputs that shaped the
// rate law without recomputing them.
type Result struct {
	Rate      symexpr.Expr
	Keq       float64
	KcatMinus float64
}

// ConsistentRate builds a thermodynamically consistent convenience rate law:
//
//  1. Keq := in.KeqOverride when set, else exp(−ΔG°′/(R·T)).
//  2. kcat⁻ := kcat⁺·∏Km_right^m / (Keq·∏Km_left^n)  (Haldane).
//  3. Delegate to ratelaw.Build with the derived kcat⁻.
//
// Errors: ErrNegativeOverride, ErrNonPositiveTemperature, ErrKeqRange,
// ErrKcatRange, plus every ratelaw validation error.
func ConsistentRate(in Input) (Result, error) {
	keq := in.KeqOverride
	switch {
	case keq < 0:
		return Result{}, fmt.Errorf("%w: %g", ErrNegativeOverride, keq)
	case keq == 0:
		derived, err := EquilibriumConstant(in.DeltaGPrime, in.TemperatureK)
		if err != nil {
			return Result{}, err
		}
		keq = derived
	}

	kcatMinus, err := ReverseKcat(keq, in.KcatPlus, in.Left, in.Right)
	if err != nil {
		return Result{}, err
	}

	rate, err := ratelaw.Build(ratelaw.Params{
		Left:      in.Left,
		Right:     in.Right,
		KcatPlus:  in.KcatPlus,
		KcatMinus: kcatMinus,
		Etot:      in.Etot,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Rate: rate, Keq: keq, KcatMinus: kcatMinus}, nil
}
