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

package polyagamma_test

import (
	"math"
	"testing"

	"github.com/fentec-project/polyagamma/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// momentBounds describes the expected moments of a sampler and how far
// the empirical ones may stray from them.
type momentBounds struct {
	mean float64
	vari float64
	// meanSE is the number of standard errors allowed on the mean
	meanSE float64
	// meanRel is added to the mean tolerance as a fraction of the mean
	meanRel float64
	// varRel is the relative tolerance on the variance
	varRel float64
}

// sampleFunc adapts a closure to sample.Sampler.
type sampleFunc func() (float64, error)

func (f sampleFunc) Sample() (float64, error) {
	return f()
}

func testMoments(t *testing.T, draw func() (float64, error), n int, b momentBounds) {
	x, err := data.NewRandomVector(n, sampleFunc(draw))
	require.NoError(t, err)
	require.NoError(t, x.CheckBound(math.Inf(1)), "draws should be finite")

	me := x.Mean()
	tol := b.meanSE*math.Sqrt(b.vari/float64(n)) + b.meanRel*math.Abs(b.mean)
	assert.InDelta(t, b.mean, me, tol, "mean value of the distribution is off")
	assert.InEpsilon(t, b.vari, x.Variance(), b.varRel, "variance of the distribution is off")
}
