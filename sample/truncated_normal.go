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

// LeftTruncatedNormal samples a standard normal value conditioned
// on being greater than left.
//
// For left > 0 it uses the translated exponential proposal of
// C. P. Robert, "Simulation of truncated normal variables",
// Statistics and Computing 5 (1995), with the optimal rate
// (left + sqrt(left^2 + 4)) / 2. Otherwise plain rejection from the
// untruncated normal accepts at least half of the proposals.
func LeftTruncatedNormal(rng RNG, left float64) (float64, error) {
	if left <= 0 {
		for iter := 0; ; iter++ {
			if err := rng.Interrupt(iter); err != nil {
				return 0, errors.Wrap(err, "error while sampling truncated normal")
			}
			if x := rng.Norm(); x > left {
				return x, nil
			}
		}
	}

	alpha := 0.5 * (left + math.Sqrt(left*left+4))
	for iter := 0; ; iter++ {
		if err := rng.Interrupt(iter); err != nil {
			return 0, errors.Wrap(err, "error while sampling truncated normal")
		}
		z := left + rng.ExponRate(alpha)
		d := z - alpha
		if rng.Unif() <= math.Exp(-0.5*d*d) {
			return z, nil
		}
	}
}
