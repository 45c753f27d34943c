package symexpr

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// maxFoldExp bounds eager folding of numeric integer powers on construction.
const maxFoldExp = 16

// ------------------------------------------------------------------
// Add — sum of terms
// ------------------------------------------------------------------

// Add is a sum of two or more terms.
type Add struct{ terms []Expr }

// Sum builds the simplified sum of terms: nested sums are flattened,
// constants are folded into a single trailing constant, and zero terms are
// dropped. Sum() of nothing is the constant 0.
func Sum(terms ...Expr) Expr {
	flat := flattenAdd(terms)
	acc := new(big.Rat)
	rest := make([]Expr, 0, len(flat))
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			acc.Add(acc, n.val)
			continue
		}
		rest = append(rest, t)
	}
	if acc.Sign() != 0 {
		rest = append(rest, &Num{val: acc})
	}
	switch len(rest) {
	case 0:
		return Int(0)
	case 1:
		return rest[0]
	}
	return &Add{terms: rest}
}

func flattenAdd(terms []Expr) []Expr {
	out := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if a, ok := t.(*Add); ok {
			out = append(out, flattenAdd(a.terms)...)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Terms returns the summed terms.
func (a *Add) Terms() []Expr { return a.terms }

func (a *Add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Subst(env map[string]Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Subst(env)
	}
	return Sum(terms...)
}

func (a *Add) Eval(env map[string]float64) (float64, error) {
	acc := 0.0
	for _, t := range a.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return checkFinite(acc)
}

func (a *Add) appendVars(set map[string]struct{}) {
	for _, t := range a.terms {
		t.appendVars(set)
	}
}

// ------------------------------------------------------------------
// Mul — product of factors
// ------------------------------------------------------------------

// Mul is a product of two or more factors.
type Mul struct{ factors []Expr }

// Prod builds the simplified product of factors: nested products are
// flattened, constants are folded into a single leading coefficient, unit
// coefficients are dropped, and a zero coefficient collapses the whole
// product to 0. Prod() of nothing is the constant 1.
func Prod(factors ...Expr) Expr {
	flat := flattenMul(factors)
	coeff := new(big.Rat).SetInt64(1)
	rest := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff.Mul(coeff, n.val)
			continue
		}
		rest = append(rest, f)
	}
	if coeff.Sign() == 0 {
		return Int(0)
	}
	if len(rest) == 0 {
		return &Num{val: coeff}
	}
	if coeff.Cmp(ratOne) == 0 {
		if len(rest) == 1 {
			return rest[0]
		}
		return &Mul{factors: rest}
	}
	factorsOut := make([]Expr, 0, len(rest)+1)
	factorsOut = append(factorsOut, &Num{val: coeff})
	factorsOut = append(factorsOut, rest...)
	return &Mul{factors: factorsOut}
}

func flattenMul(factors []Expr) []Expr {
	out := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if m, ok := f.(*Mul); ok {
			out = append(out, flattenMul(m.factors)...)
			continue
		}
		out = append(out, f)
	}
	return out
}

// Factors returns the multiplied factors.
func (m *Mul) Factors() []Expr { return m.factors }

func (m *Mul) String() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
			continue
		}
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

// LaTeX renders the product as \frac{...}{...} when any factor carries a
// negative exponent, mirroring how a rate law is written by hand.
func (m *Mul) LaTeX() string {
	num := make([]string, 0, len(m.factors))
	den := make([]string, 0)
	for _, f := range m.factors {
		if p, ok := f.(*Pow); ok && p.exp.val.Sign() < 0 {
			den = append(den, p.invLaTeX())
			continue
		}
		if _, isAdd := f.(*Add); isAdd {
			num = append(num, `\left(`+f.LaTeX()+`\right)`)
			continue
		}
		num = append(num, f.LaTeX())
	}
	top := strings.Join(num, ` \, `)
	if len(num) == 0 {
		top = "1"
	}
	if len(den) == 0 {
		return top
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, top, strings.Join(den, ` \, `))
}

func (m *Mul) Subst(env map[string]Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Subst(env)
	}
	return Prod(factors...)
}

func (m *Mul) Eval(env map[string]float64) (float64, error) {
	acc := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return checkFinite(acc)
}

func (m *Mul) appendVars(set map[string]struct{}) {
	for _, f := range m.factors {
		f.appendVars(set)
	}
}

// ------------------------------------------------------------------
// Pow — rational power
// ------------------------------------------------------------------

// Pow raises a base expression to an exact rational exponent.
type Pow struct {
	base Expr
	exp  *Num
}

// PowOf builds the simplified power base^exp: exponent 0 collapses to 1,
// exponent 1 to the base, numeric bases with small integer exponents are
// folded exactly, and (b^p)^q merges into b^(p·q). 0 raised to a negative
// exponent is left unevaluated; Eval reports it as ErrDivisionByZero.
func PowOf(base Expr, exp *Num) Expr {
	if exp.isZero() {
		return Int(1)
	}
	if exp.isOne() {
		return base
	}
	if n, ok := base.(*Num); ok {
		if n.isZero() {
			if exp.val.Sign() > 0 {
				return Int(0)
			}
			return &Pow{base: base, exp: exp}
		}
		if n.isOne() {
			return Int(1)
		}
		if exp.val.IsInt() {
			e := exp.val.Num().Int64()
			if e > 1 && e <= maxFoldExp {
				return &Num{val: ratIntPow(n.val, e)}
			}
			if e < 0 && -e <= maxFoldExp {
				return &Num{val: new(big.Rat).Inv(ratIntPow(n.val, -e))}
			}
		}
	}
	if p, ok := base.(*Pow); ok {
		prod := new(big.Rat).Mul(p.exp.val, exp.val)
		return PowOf(p.base, &Num{val: prod})
	}
	return &Pow{base: base, exp: exp}
}

func ratIntPow(r *big.Rat, e int64) *big.Rat {
	acc := new(big.Rat).SetInt64(1)
	for i := int64(0); i < e; i++ {
		acc.Mul(acc, r)
	}
	return acc
}

// Base returns the power's base expression.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the power's exact rational exponent.
func (p *Pow) Exp() *Num { return p.exp }

func (p *Pow) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *Add, *Mul:
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	if p.exp.val.Sign() < 0 || !p.exp.val.IsInt() {
		expStr = "(" + expStr + ")"
	}
	return baseStr + "^" + expStr
}

func (p *Pow) LaTeX() string {
	if p.exp.val.Sign() < 0 {
		return fmt.Sprintf(`\frac{1}{%s}`, p.invLaTeX())
	}
	return p.posLaTeX(p.exp)
}

// invLaTeX renders the power with its exponent negated, for use inside a
// denominator.
func (p *Pow) invLaTeX() string {
	negExp := &Num{val: new(big.Rat).Neg(p.exp.val)}
	return p.posLaTeX(negExp)
}

func (p *Pow) posLaTeX(exp *Num) string {
	baseStr := p.base.LaTeX()
	if exp.isOne() {
		return baseStr
	}
	switch p.base.(type) {
	case *Add, *Mul:
		baseStr = `\left(` + baseStr + `\right)`
	}
	return fmt.Sprintf("%s^{%s}", baseStr, exp.String())
}

func (p *Pow) Subst(env map[string]Expr) Expr {
	return PowOf(p.base.Subst(env), p.exp)
}

func (p *Pow) Eval(env map[string]float64) (float64, error) {
	b, err := p.base.Eval(env)
	if err != nil {
		return 0, err
	}
	e, _ := p.exp.val.Float64()
	if b == 0 && e < 0 {
		return 0, ErrDivisionByZero
	}
	return checkFinite(math.Pow(b, e))
}

func (p *Pow) appendVars(set map[string]struct{}) { p.base.appendVars(set) }

// ------------------------------------------------------------------
// Derived constructors
// ------------------------------------------------------------------

// Neg returns −e.
func Neg(e Expr) Expr { return Prod(Int(-1), e) }

// Subtract returns a − b.
func Subtract(a, b Expr) Expr { return Sum(a, Neg(b)) }

// Div returns a / b, represented as a·b⁻¹.
func Div(a, b Expr) Expr { return Prod(a, PowOf(b, Int(-1))) }

func checkFinite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}
