package symexpr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanguo13/TwoSubEnzyme/symexpr"
)

// TestConstructors_Fold verifies constant folding and flattening on
// construction: sums and products of constants collapse to a single Num.
func TestConstructors_Fold(t *testing.T) {
	e := symexpr.Sum(symexpr.Int(1), symexpr.Int(2), symexpr.Sum(symexpr.Int(3)))
	v, err := e.Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "1+2+3 must fold to 6")

	e = symexpr.Prod(symexpr.Int(2), symexpr.Rat(1, 2))
	v, err = e.Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "2*(1/2) must fold to 1")

	e = symexpr.PowOf(symexpr.Int(2), symexpr.Int(10))
	v, err = e.Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, v, "2^10 must fold exactly")
}

// TestPowOf_Identities verifies the exponent-0 and exponent-1 collapses.
func TestPowOf_Identities(t *testing.T) {
	x := symexpr.V("x")
	assert.Equal(t, "1", symexpr.PowOf(x, symexpr.Int(0)).String())
	assert.Equal(t, "x", symexpr.PowOf(x, symexpr.Int(1)).String())
	assert.Equal(t, "x^2", symexpr.PowOf(x, symexpr.Int(2)).String())
	assert.Equal(t, "x^(-1)", symexpr.PowOf(x, symexpr.Int(-1)).String())
}

// TestEval_UnboundVar ensures evaluating a free variable without a binding
// reports ErrUnboundVar.
func TestEval_UnboundVar(t *testing.T) {
	e := symexpr.Sum(symexpr.V("x"), symexpr.Int(1))
	_, err := e.Eval(map[string]float64{"y": 3})
	assert.ErrorIs(t, err, symexpr.ErrUnboundVar)
}

// TestEval_DivisionByZero ensures x^(-1) at x=0 reports ErrDivisionByZero.
func TestEval_DivisionByZero(t *testing.T) {
	e := symexpr.Div(symexpr.Int(1), symexpr.V("x"))
	_, err := e.Eval(map[string]float64{"x": 0})
	assert.ErrorIs(t, err, symexpr.ErrDivisionByZero)
}

// TestEval_NotFinite ensures overflow during evaluation reports ErrNotFinite
// instead of silently propagating +Inf.
func TestEval_NotFinite(t *testing.T) {
	e := symexpr.Prod(symexpr.V("x"), symexpr.V("x"))
	_, err := e.Eval(map[string]float64{"x": math.MaxFloat64})
	assert.ErrorIs(t, err, symexpr.ErrNotFinite)
}

// TestSubst_Structural verifies substitution replaces variables and
// re-simplifies through the constructors.
func TestSubst_Structural(t *testing.T) {
	x, y := symexpr.V("x"), symexpr.V("y")
	e := symexpr.Sum(symexpr.Prod(symexpr.Int(2), x), y)

	got := e.Subst(map[string]symexpr.Expr{"x": symexpr.Int(3)})
	v, err := got.Eval(map[string]float64{"y": 4})
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "2*3 + y at y=4")

	// y untouched, still free
	_, err = got.Eval(map[string]float64{})
	assert.ErrorIs(t, err, symexpr.ErrUnboundVar)
}

// TestVars_SortedUnique verifies Vars reports each variable once, sorted.
func TestVars_SortedUnique(t *testing.T) {
	e := symexpr.Prod(
		symexpr.V("b"),
		symexpr.Sum(symexpr.V("a"), symexpr.V("b")),
		symexpr.PowOf(symexpr.V("c"), symexpr.Int(2)),
	)
	assert.Equal(t, []string{"a", "b", "c"}, symexpr.Vars(e))
}

// TestLaTeX_Quotient verifies that negative exponents render as \frac.
func TestLaTeX_Quotient(t *testing.T) {
	e := symexpr.Div(symexpr.V("S"), symexpr.V("K"))
	assert.Equal(t, `\frac{S}{K}`, e.LaTeX())

	half := symexpr.Rat(1, 2)
	assert.Equal(t, `\frac{1}{2}`, half.LaTeX())
}

// TestEval_RationalExponent checks non-integer exponents evaluate via
// real-valued power.
func TestEval_RationalExponent(t *testing.T) {
	e := symexpr.PowOf(symexpr.V("x"), symexpr.Rat(1, 2))
	v, err := e.Eval(map[string]float64{"x": 9})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)
}
