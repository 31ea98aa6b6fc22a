// SPDX-License-Identifier: MIT

// Package expr turns a user-supplied formula in one variable into a safely
// callable numeric function and, on request, into its symbolic derivative.
//
// What & Why:
//
//	Formulas arrive as untrusted text ("x^3 - x - 2", "math.exp(-x) - x").
//	They are never handed to a general-purpose interpreter. Instead a
//	restricted-grammar parser builds a small expression tree whose nodes are
//	drawn from a fixed set (constants, the variable x, arithmetic and
//	comparison operators, and an allow-list of math functions). A
//	tree-walking evaluator dispatches only on those nodes, so nothing in the
//	formula can reach program state, the file system or arbitrary names.
//
// Grammar (low → high precedence):
//
//	comparison  := additive (("<" | "<=" | ">" | ">=" | "==" | "!=") additive)*
//	additive    := term (("+" | "-") term)*
//	term        := unary (("*" | "/") unary)*
//	unary       := ("+" | "-") unary | power
//	power       := primary (("^" | "**") unary)?       (right-associative)
//	primary     := number | "x" | constant | call | "(" comparison ")"
//	call        := name "(" comparison ("," comparison)* ")"
//
// Allow-list: sin cos tan asin acos atan sinh cosh tanh exp log ln log10
// log2 sqrt cbrt abs sign pow, constants pi and e. Library qualifiers
// (math.sin, np.exp, numpy.pi) are accepted and stripped.
//
// Differentiation is symbolic: sum, product, quotient, power and chain rules
// over the same tree, followed by light simplification. No finite
// differences are involved.
//
// Errors:
//   - *ParseError (errors.Is(err, ErrParse)) for malformed text.
//   - *UnsafeExpressionError (errors.Is(err, ErrUnsafe)) for names outside
//     the allow-list.
//
// Concurrency: Parse, Eval and Derivative share no mutable state and are
// safe to call from multiple goroutines.
package expr
