package ratelaw_test

import (
	"fmt"

	"github.com/ryanguo13/TwoSubEnzyme/ratelaw"
)

// ExampleAt evaluates the convenience rate law for 2A + B ⇌ 3C with unit
// parameters at A=2, B=1, C=0:
//
//	(1·(2/1)²·(1/1) − 1·(0/1)³) / ((1+2+4)(1+1) − 1) = 4/13
func ExampleAt() {
	p := ratelaw.Params{
		Left: []ratelaw.Reactant{
			{Species: "A", Stoich: 2, Km: 1},
			{Species: "B", Stoich: 1, Km: 1},
		},
		Right: []ratelaw.Reactant{
			{Species: "C", Stoich: 3, Km: 1},
		},
		KcatPlus:  1,
		KcatMinus: 1,
		Etot:      1,
	}

	v, err := ratelaw.At(p, map[string]float64{"A": 2, "B": 1, "C": 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("v = %.4f mmol/L/s\n", v)
	// Output:
	// v = 0.3077 mmol/L/s
}

// ExampleBuild constructs the symbolic rate law for a single-substrate
// reversible reaction and evaluates it at one concentration point.
func ExampleBuild() {
	p := ratelaw.Params{
		Left:      []ratelaw.Reactant{{Species: "S", Stoich: 1, Km: 0.5}},
		Right:     []ratelaw.Reactant{{Species: "P", Stoich: 1, Km: 2.0}},
		KcatPlus:  10,
		KcatMinus: 1,
		Etot:      0.01,
	}

	expr, err := ratelaw.Build(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, err := expr.Eval(map[string]float64{"S": 1.0, "P": 0.0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// S/Ks = 2, P/Kp = 0: v = 0.01·(10·2 − 0)/((1+2)(1+0) − 1) = 0.1
	fmt.Printf("v(S=1, P=0) = %.4f mmol/L/s\n", v)
	// Output:
	// v(S=1, P=0) = 0.1000 mmol/L/s
}

// ExampleInhibitionFactor shows post-hoc multiplicative modulation of a
// previously computed rate.
func ExampleInhibitionFactor() {
	base := 0.30
	inh, err := ratelaw.InhibitionFactor(1.5, 0.5) // effector, ki
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("modulated = %.4f\n", base*inh)
	// Output:
	// modulated = 0.0750
}
