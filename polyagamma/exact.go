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

import (
	"math"

	"github.com/fentec-project/polyagamma/sample"
	"github.com/pkg/errors"
)

const truncRecip = 1 / truncPoint

// Exact samples from PG(n, z) for integer n as a sum of n exact PG(1, z)
// draws, and approximately for any n > 0 as a truncated sum of gammas.
//
// An Exact is safe for concurrent use once configured; SetTrunc must
// not race with draws.
type Exact struct {
	trunc int
	// bvec[k] = 4 pi^2 (k + 1/2)^2
	bvec []float64
	cfg  config
}

// NewExact returns an instance of Exact using trunc terms in
// DrawSumOfGammas. It returns ErrInvalidTrunc for trunc < 1, unless
// configured WithPermissive.
func NewExact(trunc int, opts ...Option) (*Exact, error) {
	e := &Exact{cfg: newConfig(opts)}
	if err := e.SetTrunc(trunc); err != nil {
		return nil, err
	}

	return e, nil
}

// SetTrunc changes the truncation order and recomputes the table of
// gamma denominators.
func (e *Exact) SetTrunc(trunc int) error {
	if trunc < 1 {
		if !e.cfg.permissive {
			return errors.Wrapf(ErrInvalidTrunc, "cannot set truncation order %d", trunc)
		}
		e.cfg.logger.Warn("invalid truncation order, setting trunc = 1",
			"routine", "SetTrunc", "trunc", trunc)
		trunc = 1
	}

	e.trunc = trunc
	e.bvec = gammaTable(trunc)

	return nil
}

// Trunc returns the current truncation order.
func (e *Exact) Trunc() int {
	return e.trunc
}

// Draw samples PG(n, z) as a sum of n independent PG(1, z) draws.
func (e *Exact) Draw(n int, z float64, rng sample.RNG) (float64, error) {
	if n < 1 {
		if !e.cfg.permissive {
			return 0, errors.Wrapf(ErrInvalidShape, "cannot draw PG(%d, z)", n)
		}
		e.cfg.logger.Warn("invalid shape, setting n = 1", "routine", "Exact.Draw", "n", n)
		n = 1
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		x, err := e.DrawLikeDevroye(z, rng)
		if err != nil {
			return 0, err
		}
		sum += x
	}

	return sum, nil
}

// DrawSumOfGammas approximates a PG(n, z) draw by the first Trunc()
// terms of its infinite sum-of-gammas representation. The result is
// biased low; the bias shrinks monotonically as the truncation grows.
func (e *Exact) DrawSumOfGammas(n, z float64, rng sample.Variates) float64 {
	x := 0.0
	kappa := z * z
	for _, b := range e.bvec {
		x += rng.GammaScale(n, 1) / (b + kappa)
	}

	return 2 * x
}

// DrawLikeDevroye samples PG(1, z) exactly.
func (e *Exact) DrawLikeDevroye(z float64, rng sample.RNG) (float64, error) {
	x, _, err := devroye(z, rng)
	return x, err
}

// devroye samples 0.25 * J*(1, |z|/2) and reports how many proposals
// it took.
func devroye(z float64, rng sample.RNG) (float64, int, error) {
	z = 0.5 * math.Abs(z)
	fz := 0.125*math.Pi*math.Pi + 0.5*z*z
	mass := massTexpon(rng, z)

	var test seriesTest
	proposals := 0
	for {
		switch test.state {
		case statePropose, stateRestart:
			proposals++
			var x float64
			if rng.Unif() < mass {
				x = truncPoint + rng.ExponRate(1)/fz
			} else {
				var err error
				if x, err = rtigauss(rng, z); err != nil {
					return 0, proposals, errors.Wrap(err, "error while sampling PG(1, z)")
				}
			}
			test.begin(x, rng.Unif())
		case stateAccept:
			return 0.25 * test.x, proposals, nil
		default:
			if _, err := test.run(rng); err != nil {
				return 0, proposals, errors.Wrap(err, "error while sampling PG(1, z)")
			}
		}
	}
}

// massTexpon is the probability that the J*(1, z) proposal falls to
// the right of truncPoint.
func massTexpon(cdf sample.CDFs, z float64) float64 {
	t := truncPoint

	fz := 0.125*math.Pi*math.Pi + 0.5*z*z
	b := math.Sqrt(1/t) * (t*z - 1)
	a := -math.Sqrt(1/t) * (t*z + 1)

	x0 := math.Log(fz) + fz*t
	xb := x0 - z + cdf.LogNormCDF(b)
	xa := x0 + z + cdf.LogNormCDF(a)

	qdivp := 4 / math.Pi * (math.Exp(xb) + math.Exp(xa))

	return 1 / (1 + qdivp)
}

// rtigauss samples IG(1/z, 1) truncated to (0, truncPoint].
func rtigauss(rng sample.RNG, z float64) (float64, error) {
	z = math.Abs(z)
	t := truncPoint
	x := t + 1

	if truncRecip > z {
		// mean beyond the truncation point: a truncated 1/chi^2_1 draw
		// (via a pair of exponentials) thinned by exp(-z^2 x / 2)
		alpha := 0.0
		for iter := 0; rng.Unif() > alpha; iter++ {
			if err := rng.Interrupt(iter); err != nil {
				return 0, err
			}
			e1 := rng.ExponRate(1)
			e2 := rng.ExponRate(1)
			for j := 1; e1*e1 > 2*e2/t; j++ {
				if err := rng.Interrupt(j); err != nil {
					return 0, err
				}
				e1 = rng.ExponRate(1)
				e2 = rng.ExponRate(1)
			}
			x = 1 + e1*t
			x = t / (x * x)
			alpha = math.Exp(-0.5 * z * z * x)
		}
		return x, nil
	}

	mu := 1 / z
	for iter := 0; x > t; iter++ {
		if err := rng.Interrupt(iter); err != nil {
			return 0, err
		}
		x = sample.InverseGaussian(rng, mu, 1)
	}

	return x, nil
}
