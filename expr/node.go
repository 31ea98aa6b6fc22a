// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"strconv"
)

// Node is one vertex of an expression tree. The set of implementations is
// closed (unexported types), so evaluation only ever dispatches on the
// operators and functions this package defines.
type Node interface {
	// Eval computes the value of the subtree at the given x.
	Eval(x float64) float64

	// String renders the subtree in the same grammar Parse accepts.
	String() string

	// deriv returns d/dx of the subtree (unsimplified constructors may
	// still fold constants).
	deriv() Node

	// prec is the binding strength used by String to place parentheses.
	prec() int
}

// binding strengths, low → high
const (
	precCompare = iota + 1
	precAdd
	precMul
	precUnary
	precPow
	precAtom
)

// ---------- leaves ----------

// number is a numeric literal.
type number struct{ v float64 }

func (n number) Eval(float64) float64 { return n.v }
func (n number) deriv() Node          { return number{0} }
func (n number) String() string       { return strconv.FormatFloat(n.v, 'g', -1, 64) }
func (n number) prec() int {
	if n.v < 0 || math.Signbit(n.v) {
		return precUnary
	}
	return precAtom
}

// variable is the free variable x.
type variable struct{}

func (variable) Eval(x float64) float64 { return x }
func (variable) deriv() Node            { return number{1} }
func (variable) String() string         { return "x" }
func (variable) prec() int              { return precAtom }

// constant is an allow-listed named constant (pi, e).
type constant struct {
	name string
	v    float64
}

func (c constant) Eval(float64) float64 { return c.v }
func (c constant) deriv() Node          { return number{0} }
func (c constant) String() string       { return c.name }
func (c constant) prec() int            { return precAtom }

// ---------- operators ----------

// negation is unary minus.
type negation struct{ arg Node }

func (n negation) Eval(x float64) float64 { return -n.arg.Eval(x) }
func (n negation) deriv() Node            { return neg(n.arg.deriv()) }
func (n negation) String() string         { return "-" + wrap(n.arg, precUnary, false) }
func (n negation) prec() int              { return precUnary }

// binary is one of + - * / ^.
type binary struct {
	op   byte
	l, r Node
}

func (b binary) Eval(x float64) float64 {
	lv, rv := b.l.Eval(x), b.r.Eval(x)
	switch b.op {
	case '+':
		return lv + rv
	case '-':
		return lv - rv
	case '*':
		return lv * rv
	case '/':
		return lv / rv
	default: // '^'
		return math.Pow(lv, rv)
	}
}

func (b binary) prec() int {
	switch b.op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	default:
		return precPow
	}
}

func (b binary) String() string {
	p := b.prec()
	if b.op == '^' {
		// right-associative: only the left side needs a strict bound
		return wrap(b.l, p, true) + "^" + wrap(b.r, p, false)
	}
	// left-associative: the right side of - and / needs a strict bound
	strictRight := b.op == '-' || b.op == '/'
	return wrap(b.l, p, false) + " " + string(b.op) + " " + wrap(b.r, p, strictRight)
}

func (b binary) deriv() Node {
	switch b.op {
	case '+':
		return add(b.l.deriv(), b.r.deriv())
	case '-':
		return sub(b.l.deriv(), b.r.deriv())
	case '*':
		// (uv)' = u'v + uv'
		return add(mul(b.l.deriv(), b.r), mul(b.l, b.r.deriv()))
	case '/':
		// (u/v)' = (u'v - uv') / v^2
		return div(sub(mul(b.l.deriv(), b.r), mul(b.l, b.r.deriv())), pow(b.r, number{2}))
	default:
		return powDeriv(b.l, b.r)
	}
}

// powDeriv differentiates u^v, picking the narrowest rule that applies.
func powDeriv(u, v Node) Node {
	du, dv := u.deriv(), v.deriv()
	if isConst(v) {
		// (u^c)' = c·u^(c-1)·u'
		return mul(mul(v, pow(u, sub(v, number{1}))), du)
	}
	if isConst(u) {
		// (c^v)' = c^v·ln(c)·v'
		return mul(mul(pow(u, v), call1("log", u)), dv)
	}
	// (u^v)' = u^v·(v'·ln(u) + v·u'/u)
	return mul(pow(u, v), add(mul(dv, call1("log", u)), div(mul(v, du), u)))
}

// comparison evaluates to 1 when the relation holds and 0 otherwise.
type comparison struct {
	op   string
	l, r Node
}

func (c comparison) Eval(x float64) float64 {
	lv, rv := c.l.Eval(x), c.r.Eval(x)
	var ok bool
	switch c.op {
	case "<":
		ok = lv < rv
	case "<=":
		ok = lv <= rv
	case ">":
		ok = lv > rv
	case ">=":
		ok = lv >= rv
	case "==":
		ok = lv == rv
	default: // "!="
		ok = lv != rv
	}
	if ok {
		return 1
	}
	return 0
}

// deriv of a piecewise-constant indicator is 0 almost everywhere.
func (c comparison) deriv() Node { return number{0} }
func (c comparison) prec() int   { return precCompare }
func (c comparison) String() string {
	return wrap(c.l, precCompare, false) + " " + c.op + " " + wrap(c.r, precCompare, true)
}

// call applies an allow-listed unary function.
type call struct {
	fn  *function
	arg Node
}

func (c call) Eval(x float64) float64 { return c.fn.eval(c.arg.Eval(x)) }
func (c call) String() string         { return c.fn.name + "(" + c.arg.String() + ")" }
func (c call) prec() int              { return precAtom }

// deriv applies the chain rule: f(u)' = f'(u)·u'.
func (c call) deriv() Node {
	du := c.arg.deriv()
	if isZero(du) {
		return number{0}
	}
	return mul(c.fn.outer(c.arg), du)
}

// wrap renders n, parenthesizing it when it binds looser than the parent
// (or equally loose when strict is set).
func wrap(n Node, parent int, strict bool) string {
	p := n.prec()
	if p < parent || (strict && p == parent) {
		return "(" + n.String() + ")"
	}
	return n.String()
}

// walk visits every node depth-first (pre-order).
func walk(n Node, visit func(Node)) {
	visit(n)
	switch t := n.(type) {
	case negation:
		walk(t.arg, visit)
	case binary:
		walk(t.l, visit)
		walk(t.r, visit)
	case comparison:
		walk(t.l, visit)
		walk(t.r, visit)
	case call:
		walk(t.arg, visit)
	}
}

// names lists the function names used in n, in first-use order.
func names(n Node) []string {
	var out []string
	seen := map[string]bool{}
	walk(n, func(v Node) {
		if c, ok := v.(call); ok && !seen[c.fn.name] {
			seen[c.fn.name] = true
			out = append(out, c.fn.name)
		}
	})
	return out
}

// dependsOnX reports whether the variable occurs anywhere in n.
func dependsOnX(n Node) bool {
	found := false
	walk(n, func(v Node) {
		if _, ok := v.(variable); ok {
			found = true
		}
	})
	return found
}
