package ratelaw

import (
	"fmt"

	"github.com/ryanguo13/TwoSubEnzyme/symexpr"
)

// ActivationFactor returns 1 + effector/ka, the multiplicative activation
// term for a single essential activator. It equals 1 at zero effector and is
// strictly increasing in the effector concentration.
//
// Errors: ErrNonPositiveConstant if ka ≤ 0, ErrNegativeEffector if
// effector < 0.
func ActivationFactor(effector, ka float64) (float64, error) {
	if err := checkModulator(effector, ka); err != nil {
		return 0, err
	}
	return 1 + effector/ka, nil
}

// InhibitionFactor returns ki/(ki + effector), the multiplicative inhibition
// term for a non-competitive inhibitor. It equals 1 at zero effector, is
// strictly decreasing, and approaches 0 as the effector concentration grows.
//
// Errors: ErrNonPositiveConstant if ki ≤ 0, ErrNegativeEffector if
// effector < 0.
func InhibitionFactor(effector, ki float64) (float64, error) {
	if err := checkModulator(effector, ki); err != nil {
		return 0, err
	}
	return ki / (ki + effector), nil
}

// Activation is the symbolic counterpart of ActivationFactor: it returns
// 1 + effector/ka with the effector left as an expression, for composing
// with a built rate law (rate · Activation(...) · Inhibition(...)).
//
// Errors: ErrNonPositiveConstant if ka ≤ 0.
func Activation(effector symexpr.Expr, ka float64) (symexpr.Expr, error) {
	if ka <= 0 {
		return nil, fmt.Errorf("%w: ka = %g", ErrNonPositiveConstant, ka)
	}
	return symexpr.Sum(symexpr.Int(1), symexpr.Div(effector, symexpr.Float(ka))), nil
}

// Inhibition is the symbolic counterpart of InhibitionFactor:
// ki/(ki + effector).
//
// Errors: ErrNonPositiveConstant if ki ≤ 0.
func Inhibition(effector symexpr.Expr, ki float64) (symexpr.Expr, error) {
	if ki <= 0 {
		return nil, fmt.Errorf("%w: ki = %g", ErrNonPositiveConstant, ki)
	}
	k := symexpr.Float(ki)
	return symexpr.Div(k, symexpr.Sum(k, effector)), nil
}

func checkModulator(effector, constant float64) error {
	if constant <= 0 {
		return fmt.Errorf("%w: %g", ErrNonPositiveConstant, constant)
	}
	if effector < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeEffector, effector)
	}
	return nil
}
