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

package internal

import "math"

// tailCut is where math.Erfc starts losing all relative precision
// for the lower normal tail.
const tailCut = -30.0

var halfLogTwoPi = 0.5 * math.Log(2*math.Pi)

// LogNormTail calculates log(Phi(x)) for the standard normal CDF Phi,
// even if x is so negative that Phi(x) underflows.
func LogNormTail(x float64) float64 {
	if x > tailCut {
		return math.Log(0.5 * math.Erfc(-x/math.Sqrt2))
	}

	// asymptotic series of the Mills ratio
	x2 := 1 / (x * x)
	series := 1 - x2*(1-3*x2*(1-5*x2*(1-7*x2)))

	return -0.5*x*x - math.Log(-x) - halfLogTwoPi + math.Log(series)
}
