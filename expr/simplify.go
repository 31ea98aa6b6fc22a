// SPDX-License-Identifier: MIT

package expr

import "math"

// Simplifying constructors used by the differentiator. They fold numeric
// operands and drop 0/1 identities so derivative trees stay small and
// readable; they never change the value of a finite expression.

func isConst(n Node) bool { return !dependsOnX(n) }

func isZero(n Node) bool {
	v, ok := n.(number)
	return ok && v.v == 0
}

func isOne(n Node) bool {
	v, ok := n.(number)
	return ok && v.v == 1
}

// fold returns number{v} when v is finite, else ok=false so the caller keeps
// the symbolic form.
func fold(v float64) (Node, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return number{v}, true
}

func add(a, b Node) Node {
	if isZero(a) {
		return b
	}
	if isZero(b) {
		return a
	}
	if x, ok := a.(number); ok {
		if y, ok := b.(number); ok {
			if n, ok := fold(x.v + y.v); ok {
				return n
			}
		}
	}
	return binary{op: '+', l: a, r: b}
}

func sub(a, b Node) Node {
	if isZero(b) {
		return a
	}
	if isZero(a) {
		return neg(b)
	}
	if x, ok := a.(number); ok {
		if y, ok := b.(number); ok {
			if n, ok := fold(x.v - y.v); ok {
				return n
			}
		}
	}
	return binary{op: '-', l: a, r: b}
}

func mul(a, b Node) Node {
	if isZero(a) || isZero(b) {
		return number{0}
	}
	if isOne(a) {
		return b
	}
	if isOne(b) {
		return a
	}
	if x, ok := a.(number); ok {
		if y, ok := b.(number); ok {
			if n, ok := fold(x.v * y.v); ok {
				return n
			}
		}
		if x.v == -1 {
			return neg(b)
		}
	}
	return binary{op: '*', l: a, r: b}
}

func div(a, b Node) Node {
	if isOne(b) {
		return a
	}
	if isZero(a) && !isZero(b) {
		return number{0}
	}
	if x, ok := a.(number); ok {
		if y, ok := b.(number); ok {
			if n, ok := fold(x.v / y.v); ok {
				return n
			}
		}
	}
	return binary{op: '/', l: a, r: b}
}

func pow(a, b Node) Node {
	if isOne(b) {
		return a
	}
	if isZero(b) {
		return number{1}
	}
	if x, ok := a.(number); ok {
		if y, ok := b.(number); ok {
			if n, ok := fold(math.Pow(x.v, y.v)); ok {
				return n
			}
		}
	}
	return binary{op: '^', l: a, r: b}
}

func neg(a Node) Node {
	switch t := a.(type) {
	case number:
		if t.v == 0 {
			return number{0}
		}
		return number{-t.v}
	case negation:
		return t.arg
	}
	return negation{arg: a}
}
