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

package polyagamma

import "math"

// momentTol is the |z| below which the moments switch to their Taylor
// series.
const momentTol = 1e-12

// jjMean is the mean of J*(b, z) = 4 PG(b, 2z).
func jjMean(b, z float64) float64 {
	z = math.Abs(z)
	if z > momentTol {
		return b * math.Tanh(z) / z
	}
	z2 := z * z
	return b * (1 - z2/3 + 2*z2*z2/15 - 17*z2*z2*z2/315)
}

// curvTol is the |z| below which (tanh(z) - z)/z^3 is taken from its
// Taylor series, where the closed form is swamped by cancellation.
const curvTol = 1e-3

// jjSecondMoment is the second moment of J*(b, z).
func jjSecondMoment(b, z float64) float64 {
	z = math.Abs(z)
	m := jjMean(1, z)

	var curv float64
	if z > curvTol {
		curv = (math.Tanh(z) - z) / (z * z * z)
	} else {
		z2 := z * z
		curv = -1.0/3 + 2*z2/15 - 17*z2*z2/315
	}

	return (b+1)*b*m*m + b*curv
}

// Mean is the mean of PG(b, z).
func Mean(b, z float64) float64 {
	return jjMean(b, 0.5*z) * 0.25
}

// SecondMoment is the second moment of PG(b, z).
func SecondMoment(b, z float64) float64 {
	return jjSecondMoment(b, 0.5*z) * 0.0625
}

// Variance is the variance of PG(b, z).
func Variance(b, z float64) float64 {
	m := Mean(b, z)
	return SecondMoment(b, z) - m*m
}

// SumOfGammasMean is the mean of the sum-of-gammas approximation to
// PG(n, z) truncated after trunc terms. It approaches Mean(n, z) from
// below as trunc grows.
func SumOfGammasMean(n, z float64, trunc int) float64 {
	sum := 0.0
	for _, b := range gammaTable(trunc) {
		sum += 1 / (b + z*z)
	}

	return 2 * n * sum
}
