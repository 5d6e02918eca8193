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

	"github.com/fentec-project/polyagamma/internal"
	"github.com/pkg/errors"
)

// InverseGaussian samples a value from the inverse Gaussian
// distribution IG(mu, lambda) by the transformation method of
// Michael, Schucany and Haas (1976).
func InverseGaussian(rng Variates, mu, lambda float64) float64 {
	y := rng.Norm()
	muY := mu * y * y
	x := mu + 0.5*mu/lambda*(muY-math.Sqrt(4*lambda*muY+muY*muY))
	if rng.Unif() > mu/(mu+x) {
		return mu * mu / x
	}

	return x
}

// IGaussCDF is the CDF of IG(mu, lambda) evaluated at x.
// The second term is evaluated in log space, since exp(2*lambda/mu)
// overflows long before the normal tail probability underflows.
func IGaussCDF(cdf CDFs, x, mu, lambda float64) float64 {
	if x <= 0 {
		return 0
	}
	z := 1 / mu
	r := math.Sqrt(lambda / x)
	b := r * (x*z - 1)
	a := -r * (x*z + 1)

	return cdf.NormCDF(b) + math.Exp(2*lambda*z+cdf.LogNormCDF(a))
}

// LogIGaussCDF is log(IGaussCDF(cdf, x, mu, lambda)), finite where
// the CDF itself underflows.
func LogIGaussCDF(cdf CDFs, x, mu, lambda float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	z := 1 / mu
	r := math.Sqrt(lambda / x)
	b := r * (x*z - 1)
	a := -r * (x*z + 1)

	return internal.LogAddExp(cdf.LogNormCDF(b), 2*lambda*z+cdf.LogNormCDF(a))
}

// TruncatedInverseChi2 samples scale / E^2, where E is standard
// normal, conditioned on the result being at most trunc.
func TruncatedInverseChi2(rng RNG, scale, trunc float64) (float64, error) {
	e, err := LeftTruncatedNormal(rng, math.Sqrt(scale/trunc))
	if err != nil {
		return 0, err
	}

	return scale / (e * e), nil
}

// TruncatedInverseGaussian samples IG(mu, lambda) conditioned on
// being at most trunc. When the mean lies beyond the truncation
// point, proposals come from the truncated inverse chi-squared
// distribution and are thinned by exp(-lambda x / (2 mu^2)); otherwise
// untruncated inverse Gaussian draws are rejected until one falls
// under trunc.
func TruncatedInverseGaussian(rng RNG, mu, lambda, trunc float64) (float64, error) {
	if trunc < mu {
		for iter := 0; ; iter++ {
			if err := rng.Interrupt(iter); err != nil {
				return 0, errors.Wrap(err, "error while sampling truncated inverse Gaussian")
			}
			x, err := TruncatedInverseChi2(rng, lambda, trunc)
			if err != nil {
				return 0, err
			}
			if rng.Unif() <= math.Exp(-0.5*lambda/(mu*mu)*x) {
				return x, nil
			}
		}
	}

	for iter := 0; ; iter++ {
		if err := rng.Interrupt(iter); err != nil {
			return 0, errors.Wrap(err, "error while sampling truncated inverse Gaussian")
		}
		if x := InverseGaussian(rng, mu, lambda); x <= trunc {
			return x, nil
		}
	}
}
