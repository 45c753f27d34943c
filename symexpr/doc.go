// Package symexpr provides the minimal symbolic-expression substrate used by
// the rate-law packages: exact rational constants, named variables, and the
// algebraic operations (+, −, ×, /, ^) a convenience-kinetics rate law needs,
// plus substitution and numeric evaluation.
//
// ✨ Key features:
//   - exact rational constants (math/big.Rat), including rational exponents
//   - expression trees simplified on construction (constant folding,
//     flattening of nested sums and products)
//   - Subst: structural substitution of expressions for variables
//   - Eval: numeric evaluation against a variable environment, with explicit
//     errors for unbound variables, division by zero, and non-finite results
//   - LaTeX rendering with \frac for quotients and rational constants
//
// ⚙️ Usage:
//
//	import "github.com/ryanguo13/TwoSubEnzyme/symexpr"
//
//	s := symexpr.V("S")
//	rate := symexpr.Div(s, symexpr.Sum(symexpr.Int(1), s))
//	v, err := rate.Eval(map[string]float64{"S": 2})
//	// v == 2.0/3.0
//	fmt.Println(rate.LaTeX())
//
// The package is deliberately small: no differentiation, no canonical
// simplification, no equation solving. It exists to keep the kinetics
// packages agnostic to whether a quantity is symbolic or a concrete number.
//
// All values are immutable; constructors never mutate their arguments, and
// repeated evaluation of the same expression with the same environment is
// bit-reproducible.
package symexpr
