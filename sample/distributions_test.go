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

package sample_test

import (
	"context"
	"math"
	"testing"

	"github.com/aclements/go-moremath/mathx"
	"github.com/fentec-project/polyagamma/sample"
	"github.com/stretchr/testify/assert"
)

func meanVar(vec []float64) (float64, float64) {
	me := 0.0
	for _, x := range vec {
		me += x
	}
	me /= float64(len(vec))

	varian := 0.0
	for _, x := range vec {
		varian += (x - me) * (x - me)
	}

	return me, varian / float64(len(vec)-1)
}

func TestLeftTruncatedNormal(t *testing.T) {
	r := sample.NewSeeded(11)
	for _, left := range []float64{-1, 0.5, 3} {
		vec := make([]float64, 50000)
		for i := range vec {
			x, err := sample.LeftTruncatedNormal(r, left)
			assert.NoError(t, err)
			assert.True(t, x > left)
			vec[i] = x
		}
		me, _ := meanVar(vec)
		phi := math.Exp(-0.5*left*left) / math.Sqrt(2*math.Pi)
		expect := phi / (1 - r.NormCDF(left))
		assert.InDelta(t, expect, me, 0.03, "mean of N(0,1) truncated at %g", left)
	}
}

func TestLeftTruncatedNormal_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := sample.NewSeeded(1, sample.WithContext(ctx))
	_, err := sample.LeftTruncatedNormal(r, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInverseGaussian(t *testing.T) {
	r := sample.NewSeeded(12)
	mu, lambda := 1.5, 2.0
	vec := make([]float64, 50000)
	below := 0
	for i := range vec {
		vec[i] = sample.InverseGaussian(r, mu, lambda)
		if vec[i] <= 1 {
			below++
		}
	}
	me, v := meanVar(vec)
	assert.InDelta(t, mu, me, 0.03)
	assert.InDelta(t, mu*mu*mu/lambda, v, 0.15)
	assert.InDelta(t, sample.IGaussCDF(r, 1, mu, lambda), float64(below)/float64(len(vec)), 0.01)
}

func TestIGaussCDF(t *testing.T) {
	r := sample.NewSeeded(1)
	assert.Equal(t, 0.0, sample.IGaussCDF(r, 0, 1, 1))
	assert.InDelta(t, 1, sample.IGaussCDF(r, 1e3, 1, 1), 1e-9)

	// exp(2*lambda/mu) alone would overflow here
	p := sample.IGaussCDF(r, 1, 0.5, 500)
	assert.False(t, math.IsNaN(p))
	assert.InDelta(t, 1, p, 1e-9)
}

func TestLogIGaussCDF(t *testing.T) {
	r := sample.NewSeeded(1)
	for _, tc := range []struct{ x, mu, lambda float64 }{
		{0.5, 1, 1},
		{2, 1.5, 2},
		{0.64, 0.2, 1},
		{1, 0.5, 500},
	} {
		want := math.Log(sample.IGaussCDF(r, tc.x, tc.mu, tc.lambda))
		assert.InDelta(t, want, sample.LogIGaussCDF(r, tc.x, tc.mu, tc.lambda), 1e-9*(1+math.Abs(want)))
	}
	assert.True(t, math.IsInf(sample.LogIGaussCDF(r, 0, 1, 1), -1))

	// the CDF underflows, its logarithm does not
	assert.Equal(t, 0.0, sample.IGaussCDF(r, 0.001, 0.01, 170))
	deep := sample.LogIGaussCDF(r, 0.001, 0.01, 170)
	assert.False(t, math.IsInf(deep, 0) || math.IsNaN(deep))
	assert.Less(t, deep, -6e4)
}

// truncatedIGMean integrates E[X | X <= t] = t - int_0^t F(x) dx / F(t).
func truncatedIGMean(cdf sample.CDFs, mu, lambda, t float64) float64 {
	const steps = 20000
	h := t / steps
	integral := 0.0
	for i := 1; i <= steps; i++ {
		a := sample.IGaussCDF(cdf, float64(i-1)*h, mu, lambda)
		b := sample.IGaussCDF(cdf, float64(i)*h, mu, lambda)
		integral += 0.5 * h * (a + b)
	}

	return t - integral/sample.IGaussCDF(cdf, t, mu, lambda)
}

func TestTruncatedInverseGaussian(t *testing.T) {
	var tests = []struct {
		name              string
		mu, lambda, trunc float64
	}{
		{"mean above truncation", 2, 1, 0.64},
		{"mean below truncation", 0.5, 1, 0.64},
		{"concentrated", 0.3, 20, 0.33},
	}

	r := sample.NewSeeded(13)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vec := make([]float64, 40000)
			for i := range vec {
				x, err := sample.TruncatedInverseGaussian(r, test.mu, test.lambda, test.trunc)
				assert.NoError(t, err)
				assert.True(t, x > 0 && x <= test.trunc)
				vec[i] = x
			}
			me, _ := meanVar(vec)
			expect := truncatedIGMean(r, test.mu, test.lambda, test.trunc)
			assert.InDelta(t, expect, me, 0.01)
		})
	}
}

func TestLeftTruncatedGamma(t *testing.T) {
	var tests = []struct {
		name               string
		shape, rate, trunc float64
	}{
		{"tail", 5, 2, 4},
		{"shape below one", 0.5, 1, 2},
		{"exponential", 1, 3, 1},
		{"truncation below mean", 20, 10, 1.5},
	}

	r := sample.NewSeeded(14)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vec := make([]float64, 40000)
			for i := range vec {
				x, err := sample.LeftTruncatedGamma(r, test.shape, test.rate, test.trunc)
				assert.NoError(t, err)
				assert.True(t, x > test.trunc)
				vec[i] = x
			}
			me, _ := meanVar(vec)
			bt := test.rate * test.trunc
			expect := test.shape / test.rate *
				mathx.GammaIncComp(test.shape+1, bt) / mathx.GammaIncComp(test.shape, bt)
			assert.InDelta(t, expect, me, 0.03)
		})
	}
}
