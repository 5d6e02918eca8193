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
	"context"

	"github.com/fentec-project/polyagamma/internal"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// CheckEvery is the number of loop iterations between two
// cancellation checks in every rejection loop of this module.
const CheckEvery = 1000

// Variates draws the elementary random variates.
type Variates interface {
	// Unif returns a uniform value from the open interval (0, 1).
	Unif() float64
	// Norm returns a standard normal value.
	Norm() float64
	// ExponRate returns an exponential value with the given rate.
	ExponRate(rate float64) float64
	// GammaScale returns a gamma value with the given shape and scale.
	GammaScale(shape, scale float64) float64
}

// CDFs evaluates the distribution functions the samplers need
// in their envelope constants.
type CDFs interface {
	// NormCDF is the standard normal CDF.
	NormCDF(x float64) float64
	// LogNormCDF is the logarithm of NormCDF, accurate far in the lower tail.
	LogNormCDF(x float64) float64
	// GammaCDF is the CDF of the gamma distribution with the given shape and rate.
	GammaCDF(x, shape, rate float64) float64
	// GammaSurvival is 1 - GammaCDF, computed without cancellation.
	GammaSurvival(x, shape, rate float64) float64
	// LogGammaSurvival is the logarithm of GammaSurvival, finite even
	// where GammaSurvival underflows.
	LogGammaSurvival(x, shape, rate float64) float64
}

// Interrupter is consulted by long rejection loops. It is passed the
// loop counter and returns a non-nil error when the loop must stop.
type Interrupter interface {
	Interrupt(iter int) error
}

// RNG is the randomness capability consumed by all samplers.
type RNG interface {
	Variates
	CDFs
	Interrupter
}

// Rand implements RNG on top of a rand.Source.
type Rand struct {
	src rand.Source
	rnd *rand.Rand
	// gamma is reused between draws, only its parameters change
	gamma distuv.Gamma
	ctx   context.Context
}

// RandOption configures a Rand.
type RandOption func(*Rand)

// WithContext makes Interrupt report ctx.Err() every CheckEvery
// iterations.
func WithContext(ctx context.Context) RandOption {
	return func(r *Rand) {
		r.ctx = ctx
	}
}

// NewRand returns an instance of Rand drawing from src.
func NewRand(src rand.Source, opts ...RandOption) *Rand {
	r := &Rand{
		src:   src,
		rnd:   rand.New(src),
		gamma: distuv.Gamma{Alpha: 1, Beta: 1, Src: src},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewSeeded returns a Rand over a PCG source with the given seed.
func NewSeeded(seed uint64, opts ...RandOption) *Rand {
	return NewRand(NewSource(seed), opts...)
}

// Unif returns a uniform value from the open interval (0, 1).
func (r *Rand) Unif() float64 {
	for {
		if u := r.rnd.Float64(); u > 0 {
			return u
		}
	}
}

// Norm returns a standard normal value.
func (r *Rand) Norm() float64 {
	return r.rnd.NormFloat64()
}

// ExponRate returns an exponential value with the given rate.
func (r *Rand) ExponRate(rate float64) float64 {
	return r.rnd.ExpFloat64() / rate
}

// GammaScale returns a gamma value with the given shape and scale.
func (r *Rand) GammaScale(shape, scale float64) float64 {
	r.gamma.Alpha = shape
	r.gamma.Beta = 1 / scale
	return r.gamma.Rand()
}

// NormCDF is the standard normal CDF.
func (r *Rand) NormCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// LogNormCDF is log(NormCDF(x)), accurate far in the lower tail.
func (r *Rand) LogNormCDF(x float64) float64 {
	return internal.LogNormTail(x)
}

// GammaCDF is the CDF of the gamma distribution with the given shape
// and rate.
func (r *Rand) GammaCDF(x, shape, rate float64) float64 {
	return distuv.Gamma{Alpha: shape, Beta: rate}.CDF(x)
}

// GammaSurvival is 1 - GammaCDF(x, shape, rate).
func (r *Rand) GammaSurvival(x, shape, rate float64) float64 {
	if x <= 0 {
		return 1
	}
	return mathext.GammaIncRegComp(shape, rate*x)
}

// LogGammaSurvival is log(GammaSurvival(x, shape, rate)).
func (r *Rand) LogGammaSurvival(x, shape, rate float64) float64 {
	if x <= 0 {
		return 0
	}
	return internal.LogGammaTail(shape, rate*x)
}

// Interrupt returns the context error on multiples of CheckEvery,
// and nil otherwise or when no context was configured.
func (r *Rand) Interrupt(iter int) error {
	if r.ctx == nil || iter%CheckEvery != 0 {
		return nil
	}
	return r.ctx.Err()
}
