// SPDX-License-Identifier: MIT

package expr_test

import "strconv"

// formatQuadratic renders a*x^2 + b*x + c with round-trippable literals.
// Negative coefficients are emitted as-is and parsed as unary minus.
func formatQuadratic(a, b, c float64) string {
	return lit(a) + "*x^2 + " + lit(b) + "*x + " + lit(c)
}

func lit(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}
