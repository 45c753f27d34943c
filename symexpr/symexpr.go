package symexpr

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
)

// Evaluation errors. Callers branch with errors.Is; constructors never
// return errors — malformed constructor input (zero denominator, empty
// variable name) is a programmer error and panics.
var (
	// ErrUnboundVar indicates Eval met a variable absent from the environment.
	ErrUnboundVar = errors.New("symexpr: unbound variable")

	// ErrDivisionByZero indicates Eval met x^e with x == 0 and e < 0.
	ErrDivisionByZero = errors.New("symexpr: division by zero")

	// ErrNotFinite indicates Eval produced NaN or ±Inf.
	ErrNotFinite = errors.New("symexpr: evaluation produced a non-finite value")
)

// Expr is an immutable symbolic expression.
//
// Implementations: *Num (exact rational constant), *Var (named variable),
// *Add (sum), *Mul (product), *Pow (rational power).
type Expr interface {
	// String renders a plain-text form, e.g. "kcat*(S*Ks^(-1)) + 1".
	String() string

	// LaTeX renders typeset markup, e.g. `\frac{S}{K_S}`.
	LaTeX() string

	// Subst returns a copy of the expression with every variable found in
	// env replaced by its mapped expression. Variables absent from env are
	// left in place. The result is re-simplified through the constructors.
	Subst(env map[string]Expr) Expr

	// Eval substitutes numeric values for all variables and reduces the
	// expression to a float64. Every variable must be bound in env.
	Eval(env map[string]float64) (float64, error)

	appendVars(set map[string]struct{})
}

// Vars returns the sorted names of all variables occurring in e.
func Vars(e Expr) []string {
	set := make(map[string]struct{})
	e.appendVars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ------------------------------------------------------------------
// Num — exact rational constant
// ------------------------------------------------------------------

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// Int returns the integer constant n.
func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Rat returns the rational constant p/q. Panics if q == 0.
func Rat(p, q int64) *Num {
	if q == 0 {
		panic("symexpr: Rat with zero denominator")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float returns the exact rational value of f. Panics if f is NaN or ±Inf.
func Float(f float64) *Num {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("symexpr: Float with non-finite value")
	}
	return &Num{val: new(big.Rat).SetFloat64(f)}
}

// Float64 returns the nearest float64 to the constant's exact value.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

// Rat returns a copy of the constant's exact value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

func (n *Num) isZero() bool { return n.val.Sign() == 0 }
func (n *Num) isOne() bool  { return n.val.Cmp(ratOne) == 0 }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func (n *Num) Subst(map[string]Expr) Expr { return n }

func (n *Num) Eval(map[string]float64) (float64, error) {
	f, _ := n.val.Float64()
	return f, nil
}

func (n *Num) appendVars(map[string]struct{}) {}

var ratOne = new(big.Rat).SetInt64(1)

// ------------------------------------------------------------------
// Var — named symbolic variable
// ------------------------------------------------------------------

// Var is a named symbolic variable.
type Var struct{ name string }

// V returns the variable named name. Panics on an empty name.
func V(name string) *Var {
	if name == "" {
		panic("symexpr: V with empty name")
	}
	return &Var{name: name}
}

// Name returns the variable's name.
func (v *Var) Name() string { return v.name }

func (v *Var) String() string { return v.name }
func (v *Var) LaTeX() string  { return v.name }

func (v *Var) Subst(env map[string]Expr) Expr {
	if e, ok := env[v.name]; ok {
		return e
	}
	return v
}

func (v *Var) Eval(env map[string]float64) (float64, error) {
	f, ok := env[v.name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnboundVar, v.name)
	}
	return f, nil
}

func (v *Var) appendVars(set map[string]struct{}) { set[v.name] = struct{}{} }
