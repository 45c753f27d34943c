package ratelaw

import (
	"fmt"
	"math"

	"github.com/ryanguo13/TwoSubEnzyme/symexpr"
)

// denomEpsilon is the threshold below which the occupancy denominator is
// treated as numerically indistinguishable from zero. With valid parameters
// the denominator is ≥ 0 and vanishes only when every concentration is zero.
const denomEpsilon = 1e-12

// Build constructs the symbolic convenience-kinetics rate expression for the
// reaction described by p. Each species concentration appears as a symexpr
// variable named after Reactant.Species.
//
// Algorithm:
//  1. Normalize each concentration by its Km: xᵢ = Sᵢ/Kmᵢ.
//  2. Numerator: kcat⁺·∏ x_left^n − kcat⁻·∏ x_right^m.
//  3. Per species, saturation polynomial 1 + x + … + x^n.
//  4. Denominator: product of all saturation polynomials, minus 1.
//  5. Result: Etot · numerator / denominator.
//
// The returned expression has units mmol/L/s once evaluated; positive values
// mean net forward flux. Build performs no evaluation, so a vanishing
// denominator surfaces later, from symexpr's Eval, as ErrDivisionByZero.
//
// Errors: any Params.Validate failure, before any construction work.
func Build(p Params) (symexpr.Expr, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	numerator := symexpr.Subtract(
		drivingTerm(p.KcatPlus, p.Left),
		drivingTerm(p.KcatMinus, p.Right),
	)

	saturation := make([]symexpr.Expr, 0, len(p.Left)+len(p.Right))
	for _, r := range p.Left {
		saturation = append(saturation, saturationPolynomial(r))
	}
	for _, r := range p.Right {
		saturation = append(saturation, saturationPolynomial(r))
	}
	denominator := symexpr.Subtract(symexpr.Prod(saturation...), symexpr.Int(1))

	return symexpr.Prod(
		symexpr.Float(p.Etot),
		numerator,
		symexpr.PowOf(denominator, symexpr.Int(-1)),
	), nil
}

// drivingTerm builds kcat·∏ (S/Km)^n over one reaction side. Species with a
// zero coefficient contribute the factor 1 and are skipped.
func drivingTerm(kcat float64, side []Reactant) symexpr.Expr {
	factors := make([]symexpr.Expr, 0, len(side)+1)
	factors = append(factors, symexpr.Float(kcat))
	for _, r := range side {
		if r.Stoich == 0 {
			continue
		}
		factors = append(factors, symexpr.PowOf(normalized(r), symexpr.Int(int64(r.Stoich))))
	}
	return symexpr.Prod(factors...)
}

// saturationPolynomial builds 1 + x + x² + … + x^n for one reactant, the sum
// over that species' enzyme-occupancy microstates. For n == 0 it degenerates
// to the single term 1.
func saturationPolynomial(r Reactant) symexpr.Expr {
	terms := make([]symexpr.Expr, 0, r.Stoich+1)
	terms = append(terms, symexpr.Int(1))
	x := normalized(r)
	for k := 1; k <= r.Stoich; k++ {
		terms = append(terms, symexpr.PowOf(x, symexpr.Int(int64(k))))
	}
	return symexpr.Sum(terms...)
}

// normalized builds S/Km for one reactant.
func normalized(r Reactant) symexpr.Expr {
	return symexpr.Div(symexpr.V(r.Species), symexpr.Float(r.Km))
}

// At evaluates the convenience rate law numerically at the given species
// concentrations (mmol/L), without building an expression tree. It computes
// the same quantity as Build followed by Eval, in plain float64 arithmetic.
//
// Every species in p must be present in conc with a non-negative value.
//
// Errors: any Params.Validate failure; ErrUnknownSpecies or
// ErrNegativeConcentration for a malformed concentration map;
// ErrZeroDenominator when the occupancy denominator vanishes (all
// concentrations zero).
func At(p Params, conc map[string]float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	fwd, satLeft, err := sideProducts(p.Left, conc)
	if err != nil {
		return 0, err
	}
	rev, satRight, err := sideProducts(p.Right, conc)
	if err != nil {
		return 0, err
	}

	numerator := p.KcatPlus*fwd - p.KcatMinus*rev
	denominator := satLeft*satRight - 1
	if math.Abs(denominator) < denomEpsilon {
		return 0, ErrZeroDenominator
	}
	return p.Etot * numerator / denominator, nil
}

// sideProducts returns ∏ x^n (the driving product) and ∏ (1+x+…+x^n) (the
// saturation product) over one reaction side.
func sideProducts(side []Reactant, conc map[string]float64) (driving, saturation float64, err error) {
	driving, saturation = 1, 1
	for _, r := range side {
		c, ok := conc[r.Species]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, r.Species)
		}
		if c < 0 {
			return 0, 0, fmt.Errorf("%w: %q = %g", ErrNegativeConcentration, r.Species, c)
		}
		x := c / r.Km
		driving *= intPow(x, r.Stoich)

		sat := 1.0
		term := 1.0
		for k := 1; k <= r.Stoich; k++ {
			term *= x
			sat += term
		}
		saturation *= sat
	}
	return driving, saturation, nil
}

// intPow computes x^n for non-negative integer n by repeated multiplication.
func intPow(x float64, n int) float64 {
	acc := 1.0
	for i := 0; i < n; i++ {
		acc *= x
	}
	return acc
}
