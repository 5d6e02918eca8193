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

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

const (
	cfTiny    = 1e-300
	cfEps     = 1e-15
	cfMaxIter = 500
)

// LogGammaTail calculates log(Q(a, x)) for the regularized upper
// incomplete gamma function Q, even if Q(a, x) underflows.
func LogGammaTail(a, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x < a+1 {
		return math.Log(mathext.GammaIncRegComp(a, x))
	}

	// continued fraction for Q, evaluated with the modified Lentz method
	b := x + 1 - a
	c := 1 / cfTiny
	d := 1 / b
	h := d
	for i := 1; i <= cfMaxIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < cfTiny {
			d = cfTiny
		}
		c = b + an/c
		if math.Abs(c) < cfTiny {
			c = cfTiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < cfEps {
			break
		}
	}

	lg, _ := math.Lgamma(a)
	return -x + a*math.Log(x) - lg + math.Log(h)
}

// LogAddExp calculates log(exp(a) + exp(b)) without overflow.
func LogAddExp(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, -1) {
		return a
	}
	return a + math.Log1p(math.Exp(b-a))
}
