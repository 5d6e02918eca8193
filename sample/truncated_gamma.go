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

package sample

import (
	"math"

	"github.com/pkg/errors"
)

// LeftTruncatedGamma samples a value from the gamma distribution
// with the given shape and rate, conditioned on being greater than
// trunc.
//
// For shape > 1 it uses the exponential proposal of J. S. Dagpunar,
// "Sampling of variates from a truncated gamma distribution",
// J. Statist. Comput. Simul. 8 (1978). For shape <= 1 the shifted
// exponential trunc + Exp(rate) dominates the target directly.
func LeftTruncatedGamma(rng RNG, shape, rate, trunc float64) (float64, error) {
	if trunc <= 0 {
		return rng.GammaScale(shape, 1/rate), nil
	}
	if shape == 1 {
		return trunc + rng.ExponRate(rate), nil
	}

	if shape < 1 {
		for iter := 0; ; iter++ {
			if err := rng.Interrupt(iter); err != nil {
				return 0, errors.Wrap(err, "error while sampling truncated gamma")
			}
			x := trunc + rng.ExponRate(rate)
			if rng.Unif() <= math.Pow(x/trunc, shape-1) {
				return x, nil
			}
		}
	}

	// work on the unit-rate scale, truncated at b
	b := rate * trunc
	d1 := b - shape
	d3 := shape - 1
	c0 := 0.5 * (d1 + math.Sqrt(d1*d1+4*b)) / b
	logM := d3*math.Log(d3/(1-c0)) - d3

	for iter := 0; ; iter++ {
		if err := rng.Interrupt(iter); err != nil {
			return 0, errors.Wrap(err, "error while sampling truncated gamma")
		}
		x := b + rng.ExponRate(c0)
		logRho := d3*math.Log(x) - x*(1-c0)
		if math.Log(rng.Unif()) <= logRho-logM {
			return x / rate, nil
		}
	}
}
