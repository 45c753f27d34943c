package symexpr_test

import (
	"fmt"

	"github.com/ryanguo13/TwoSubEnzyme/symexpr"
)

// ExampleExpr builds the irreversible Michaelis–Menten law v = S/(K + S)
// symbolically, renders it, and evaluates it at a concrete concentration.
func ExampleExpr() {
	s, k := symexpr.V("S"), symexpr.V("K")
	v := symexpr.Div(s, symexpr.Sum(k, s))

	fmt.Println(v)
	fmt.Println(v.LaTeX())

	x, err := v.Eval(map[string]float64{"S": 3, "K": 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", x)
	// Output:
	// S*(K + S)^(-1)
	// \frac{S}{K + S}
	// 0.75
}
