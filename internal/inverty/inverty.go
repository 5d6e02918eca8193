/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package inverty inverts the map y(v) = tan(sqrt(v))/sqrt(v)
// (tanh(sqrt(-v))/sqrt(-v) for negative v), which the saddlepoint
// Polya-Gamma sampler uses as a change of variables.
package inverty

import "math"

// taylorTol is the half-width of the interval around v = 0 where Y and
// YDY switch to their Taylor polynomials.
const taylorTol = 1e-8

const (
	// DefaultTol is the Newton step size below which V stops iterating.
	DefaultTol = 1e-9
	// DefaultMaxIter bounds the number of Newton steps taken by V.
	DefaultMaxIter = 1000
)

// Y evaluates the forward function y(v).
func Y(v float64) float64 {
	r := math.Sqrt(math.Abs(v))
	switch {
	case v > taylorTol:
		return math.Tan(r) / r
	case v < -taylorTol:
		return math.Tanh(r) / r
	default:
		return 1 + v/3 + 2*v*v/15 + 17*v*v*v/315
	}
}

// YDY returns y(v) together with its derivative dy/dv.
func YDY(v float64) (y, dy float64) {
	y = Y(v)
	if math.Abs(v) >= taylorTol {
		dy = 0.5 * (y*y + (1-y)/v)
	} else {
		dy = 0.5 * (y*y - 1.0/3 - 2*v/15)
	}

	return y, dy
}

// objective returns the Newton objective f(v) = y(v) - target
// together with its derivative.
func objective(target float64) func(v float64) (f, df float64) {
	return func(v float64) (float64, float64) {
		y, dy := YDY(v)
		return y - target, dy
	}
}

// V solves Y(v) = y for v, given y > 0. Outside the tabulated range it
// uses the closed-form asymptotes; inside, it runs Newton's method
// seeded at the lower end of the bracketing grid cell, clamping every
// iterate into that cell.
//
// ok is false when maxIter steps were taken without the step size
// dropping below tol. The last iterate is still returned.
func V(y, tol float64, maxIter int) (v float64, ok bool) {
	if y < ygrid[0] {
		return -1 / (y * y), true
	}
	if y > ygrid[gridSize-1] {
		v = math.Atan(0.5 * y * math.Pi)
		return v * v, true
	}
	if y == 1 {
		return 0, true
	}

	id := int((math.Log2(y) + gridOffset) / gridStep)
	if id > gridSize-2 {
		id = gridSize - 2
	}
	if id < 0 {
		id = 0
	}
	vl := vgrid[id]
	vh := vgrid[id+1]

	f := objective(y)
	iter := 0
	diff := tol + 1
	vnew := vl
	for diff > tol && iter < maxIter {
		iter++
		vold := vnew
		f0, f1 := f(vold)
		vnew = math.Min(math.Max(vold-f0/f1, vl), vh)
		diff = math.Abs(vnew - vold)
	}

	return vnew, diff <= tol
}

// Eval is V with the default tolerance and iteration limit.
func Eval(y float64) (float64, bool) {
	return V(y, DefaultTol, DefaultMaxIter)
}
