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
	"testing"

	"github.com/fentec-project/polyagamma/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noInterrupt struct{}

func (noInterrupt) Interrupt(int) error { return nil }

func TestSeriesTest_Accept(t *testing.T) {
	var st seriesTest
	assert.Equal(t, statePropose, st.state)
	assert.Equal(t, "Propose", st.state.String())

	st.begin(1, 0.5)
	assert.Equal(t, stateTestOdd, st.state)

	ok, err := st.run(noInterrupt{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, stateAccept, st.state)
	assert.Equal(t, 1, st.n)
}

func TestSeriesTest_Restart(t *testing.T) {
	var st seriesTest
	// u sits right under a_0, above every odd partial sum
	st.begin(1, 1-1e-6)

	st.step()
	assert.Equal(t, stateTestEven, st.state)

	ok, err := st.run(noInterrupt{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, stateRestart, st.state)
	assert.Equal(t, 2, st.n)
}

func TestSeriesTerm(t *testing.T) {
	assert.Equal(t, 0.0, seriesTerm(0, 0))
	assert.InDelta(t, 0.5*math.Pi*math.Exp(-0.125*math.Pi*math.Pi), seriesTerm(0, 1), 1e-15)

	// terms decrease in n on both sides of the truncation point
	for _, x := range []float64{0.1, 0.5, 0.64, 0.65, 2} {
		for n := 0; n < 5; n++ {
			assert.Greater(t, seriesTerm(n, x), seriesTerm(n+1, x), "x = %g, n = %d", x, n)
		}
	}
}

func TestMassTexpon(t *testing.T) {
	rng := sample.NewSeeded(1)
	tr := truncPoint

	for _, z := range []float64{0.1, 0.5, 1, 3, 10} {
		fz := 0.125*math.Pi*math.Pi + 0.5*z*z
		p := 0.5 * math.Pi / fz * math.Exp(-fz*tr)
		q := 2 * math.Exp(-z) * sample.IGaussCDF(rng, tr, 1/z, 1)

		assert.InDelta(t, p/(p+q), massTexpon(rng, z), 1e-12, "z = %g", z)
	}
}

func TestDevroye_Termination(t *testing.T) {
	rng := sample.NewSeeded(5)

	for _, z := range []float64{0, 0.5, 2, 20} {
		maxProposals := 0
		for i := 0; i < 1000; i++ {
			x, proposals, err := devroye(z, rng)
			require.NoError(t, err)
			require.Greater(t, x, 0.0)
			if proposals > maxProposals {
				maxProposals = proposals
			}
		}
		assert.LessOrEqual(t, maxProposals, 10, "z = %g", z)
	}
}

func TestRtigauss(t *testing.T) {
	rng := sample.NewSeeded(8)

	// both branches stay under the truncation point
	for _, z := range []float64{0.2, 1.5, 4} {
		for i := 0; i < 1000; i++ {
			x, err := rtigauss(rng, z)
			require.NoError(t, err)
			assert.True(t, x > 0 && x <= truncPoint, "x = %g", x)
		}
	}
}

func TestGammaTable(t *testing.T) {
	b := gammaTable(10)
	require.Len(t, b, 10)
	assert.InDelta(t, math.Pi*math.Pi, b[0], 1e-12)
	assert.InDelta(t, 4*math.Pi*math.Pi*9.5*9.5, b[9], 1e-9)

	again := gammaTable(10)
	assert.Same(t, &b[0], &again[0], "tables should be cached")
}

func TestSaddlepoint_Helpers(t *testing.T) {
	// yFunc joins its Taylor branch continuously
	for _, v := range []float64{-1.01e-6, -0.99e-6, 0.99e-6, 1.01e-6} {
		r := math.Sqrt(math.Abs(v))
		var want float64
		if v > 0 {
			want = math.Tan(r) / r
		} else {
			want = math.Tanh(r) / r
		}
		assert.InDelta(t, want, yFunc(v), 1e-12)
	}
	assert.Equal(t, 0.0, logCosRt(0))
	assert.InDelta(t, math.Log(math.Cos(1.5)), logCosRt(2.25), 1e-15)
	assert.InDelta(t, math.Log(math.Cosh(2)), logCosRt(-4), 1e-15)
	assert.InDelta(t, 1000-math.Ln2, logCosh(-1000), 1e-12)

	// k2 is continuous at its crossover along x = y(v)
	assert.InDelta(t, k2(yFunc(1.01e-6), 1.01e-6), k2(yFunc(0.99e-6), 0.99e-6), 1e-5)
	assert.InDelta(t, 2.0/3, k2(1, 0), 1e-15)

	sp := NewSaddlepoint()
	z := 0.7
	xl := yFunc(-z * z)
	md := 1.1 * xl
	l := sp.tangentToEta(xl, z, md)
	ph, _ := sp.phi(xl, z)
	assert.InDelta(t, ph.val-delta(xl, md).val, l.slope*xl+l.icept, 1e-12)
}

func TestDevroye_StateMachine(t *testing.T) {
	rng := sample.NewSeeded(21)
	total := 0
	for i := 0; i < 2000; i++ {
		_, proposals, err := devroye(1, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, proposals, 1)
		total += proposals
	}
	// Devroye's proposal is accepted with probability above 0.99
	assert.Less(t, total, 2100)
}

func TestEnvelope_Weights(t *testing.T) {
	sp := NewSaddlepoint()
	rng := sample.NewSeeded(1)

	// where nothing overflows, the mixture probability matches the
	// weights computed directly
	const n, z = 20.0, 0.5
	e := sp.newEnvelope(n, z, rng)
	lgn, _ := math.Lgamma(n)
	wl := math.Exp(0.5*math.Log(e.al)-n*e.rt2rl+n*e.il+0.5*n/e.md) *
		sample.IGaussCDF(rng, e.md, 1/e.rt2rl, n)
	wr := math.Exp(0.5*math.Log(e.ar)+e.lcn-n*math.Log(n*e.rr)+n*e.ir-n*math.Log(e.md)+lgn) *
		rng.GammaSurvival(e.md, n, n*e.rr)
	assert.InDelta(t, wl/(wl+wr), e.pl, 1e-9)

	for _, tc := range []struct{ n, z float64 }{{170, 50}, {170, 250}, {50, 110}, {14, 500}} {
		e := sp.newEnvelope(tc.n, tc.z, rng)
		assert.False(t, math.IsNaN(e.pl), "n = %g, z = %g", tc.n, tc.z)
		assert.True(t, e.pl >= 0 && e.pl <= 1, "n = %g, z = %g", tc.n, tc.z)
	}
}
