// SPDX-License-Identifier: MIT

package expr

import "math"

// function is an allow-listed unary math function: its evaluator and its
// outer derivative f'(u) expressed as a tree in u.
type function struct {
	name  string
	eval  func(float64) float64
	outer func(u Node) Node
}

// functions is the allow-list. pow and two-argument log are rewritten by the
// parser into ^ and a quotient of logs, so every entry here is unary.
var functions = map[string]*function{}

// constants is the allow-list of named constants.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// qualifiers are library prefixes users commonly type in formulas
// (math.sin, np.exp); they are stripped before the allow-list lookup.
var qualifiers = map[string]bool{
	"math":  true,
	"np":    true,
	"numpy": true,
}

// names the parser handles itself instead of through the function table.
const (
	nameVariable = "x"
	namePow      = "pow"
	nameLog      = "log"
)

func register(name string, eval func(float64) float64, outer func(u Node) Node) {
	functions[name] = &function{name: name, eval: eval, outer: outer}
}

// call1 builds a call node for a registered function.
func call1(name string, arg Node) Node {
	return call{fn: functions[name], arg: arg}
}

func init() {
	register("sin", math.Sin, func(u Node) Node { return call1("cos", u) })
	register("cos", math.Cos, func(u Node) Node { return neg(call1("sin", u)) })
	register("tan", math.Tan, func(u Node) Node {
		return div(number{1}, pow(call1("cos", u), number{2}))
	})
	register("asin", math.Asin, func(u Node) Node {
		return div(number{1}, call1("sqrt", sub(number{1}, pow(u, number{2}))))
	})
	register("acos", math.Acos, func(u Node) Node {
		return neg(div(number{1}, call1("sqrt", sub(number{1}, pow(u, number{2})))))
	})
	register("atan", math.Atan, func(u Node) Node {
		return div(number{1}, add(number{1}, pow(u, number{2})))
	})
	register("sinh", math.Sinh, func(u Node) Node { return call1("cosh", u) })
	register("cosh", math.Cosh, func(u Node) Node { return call1("sinh", u) })
	register("tanh", math.Tanh, func(u Node) Node {
		return sub(number{1}, pow(call1("tanh", u), number{2}))
	})
	register("exp", math.Exp, func(u Node) Node { return call1("exp", u) })
	register("log", math.Log, func(u Node) Node { return div(number{1}, u) })
	register("ln", math.Log, func(u Node) Node { return div(number{1}, u) })
	register("log10", math.Log10, func(u Node) Node {
		return div(number{1}, mul(u, number{math.Ln10}))
	})
	register("log2", math.Log2, func(u Node) Node {
		return div(number{1}, mul(u, number{math.Ln2}))
	})
	register("sqrt", math.Sqrt, func(u Node) Node {
		return div(number{1}, mul(number{2}, call1("sqrt", u)))
	})
	register("cbrt", math.Cbrt, func(u Node) Node {
		return div(number{1}, mul(number{3}, pow(call1("cbrt", u), number{2})))
	})
	register("abs", math.Abs, func(u Node) Node { return call1("sign", u) })
	register("sign", sign, func(Node) Node { return number{0} })
}

// sign returns -1, 0 or 1 (NaN stays NaN).
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v
	}
}

// AllowedNames lists every function and constant name the parser accepts,
// plus the variable. The slice is freshly allocated.
func AllowedNames() []string {
	out := make([]string, 0, len(functions)+len(constants)+2)
	out = append(out, nameVariable, namePow)
	for name := range functions {
		out = append(out, name)
	}
	for name := range constants {
		out = append(out, name)
	}
	return out
}
