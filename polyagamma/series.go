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
)

// truncPoint splits the J*(1) density into the region where its
// alternating series is evaluated in the inverse-Gaussian form and
// the region where it is evaluated in the exponential form.
const truncPoint = 0.64

// seriesTerm is the n-th coefficient a_n(x) of the alternating series
// representation of the J*(1) density at x.
func seriesTerm(n int, x float64) float64 {
	d := float64(n) + 0.5
	k := d * math.Pi
	switch {
	case x > truncPoint:
		return k * math.Exp(-0.5*k*k*x)
	case x > 0:
		return math.Exp(-1.5*(math.Log(0.5*math.Pi)+math.Log(x)) + math.Log(k) - 2*d*d/x)
	}

	return 0
}

type seriesState int

const (
	statePropose seriesState = iota
	stateTestOdd
	stateTestEven
	stateAccept
	stateRestart
)

func (s seriesState) String() string {
	switch s {
	case statePropose:
		return "Propose"
	case stateTestOdd:
		return "TestOddTerm"
	case stateTestEven:
		return "TestEvenTerm"
	case stateAccept:
		return "Accept"
	case stateRestart:
		return "Restart"
	}
	return "unknown"
}

// seriesTest decides the proposals of Devroye's sampler. Its zero
// value waits for a proposal; begin hands it one. The partial
// sums of the series alternate around the target density, so after an
// odd term they bound it from below (accept when u is under them) and
// after an even term from above (reject when u is over them).
type seriesTest struct {
	x     float64
	u     float64
	s     float64
	n     int
	state seriesState
}

// begin resets the test for proposal x with the uniform value unif,
// scaled onto [0, a_0(x)].
func (t *seriesTest) begin(x, unif float64) {
	t.x = x
	t.s = seriesTerm(0, x)
	t.u = unif * t.s
	t.n = 0
	t.state = stateTestOdd
}

// step adds the next term of the series and moves to the next state.
func (t *seriesTest) step() {
	t.n++
	switch t.state {
	case stateTestOdd:
		t.s -= seriesTerm(t.n, t.x)
		if t.u <= t.s {
			t.state = stateAccept
		} else {
			t.state = stateTestEven
		}
	case stateTestEven:
		t.s += seriesTerm(t.n, t.x)
		if t.u > t.s {
			t.state = stateRestart
		} else {
			t.state = stateTestOdd
		}
	}
}

// run steps until the test accepts or restarts. The number of terms is
// finite almost surely and is deliberately not capped.
func (t *seriesTest) run(intr sample.Interrupter) (bool, error) {
	for t.state == stateTestOdd || t.state == stateTestEven {
		if err := intr.Interrupt(t.n); err != nil {
			return false, err
		}
		t.step()
	}

	return t.state == stateAccept, nil
}
