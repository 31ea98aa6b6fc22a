// SPDX-License-Identifier: MIT

package convergence

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// percent scales a ratio to a percentage.
const percent = 100.0

// RelativePercent returns |next - prev| / |next| * 100, or |next - prev| * 100
// when next is exactly zero.
func RelativePercent(prev, next float64) float64 {
	step := math.Abs(next - prev)
	if next == 0 {
		return step * percent
	}

	return step / math.Abs(next) * percent
}

// RelativePercentVec applies RelativePercent component-wise.
// Panics if the lengths differ.
func RelativePercentVec(prev, next []float64) []float64 {
	if len(prev) != len(next) {
		panic("convergence: slice lengths do not match")
	}
	out := make([]float64, len(next))
	var i int
	for i = 0; i < len(next); i++ {
		out[i] = RelativePercent(prev[i], next[i])
	}

	return out
}

// MaxAbsDiff returns max_i |next[i] - prev[i]|, the L∞ distance.
// Empty slices are at distance 0. Panics if the lengths differ.
func MaxAbsDiff(prev, next []float64) float64 {
	if len(prev) != len(next) {
		panic("convergence: slice lengths do not match")
	}
	if len(next) == 0 {
		return 0
	}

	return floats.Distance(prev, next, math.Inf(1))
}
