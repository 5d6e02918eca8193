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

	"github.com/fentec-project/polyagamma/internal/inverty"
	"github.com/fentec-project/polyagamma/sample"
	"github.com/pkg/errors"
)

// spTol is the |v| below which y(v) and K2 use their Taylor expansions.
const spTol = 1e-6

// fd holds a function value and its derivative at a point.
type fd struct {
	val float64
	der float64
}

type line struct {
	slope float64
	icept float64
}

// Saddlepoint samples approximately from PG(n, z) with n >= 1 by
// rejection from a two-piece envelope of the saddlepoint density. It
// is meant for large n, where summing exact draws is too slow.
type Saddlepoint struct {
	cfg config
}

// NewSaddlepoint returns an instance of Saddlepoint.
func NewSaddlepoint(opts ...Option) *Saddlepoint {
	return &Saddlepoint{cfg: newConfig(opts)}
}

// yFunc is tan(sqrt(v))/sqrt(v), or tanh(sqrt(-v))/sqrt(-v) for v < 0.
func yFunc(v float64) float64 {
	r := math.Sqrt(math.Abs(v))
	switch {
	case v > spTol:
		return math.Tan(r) / r
	case v < -spTol:
		return math.Tanh(r) / r
	}
	return 1 + v/3 + 2*v*v/15 + 17*v*v*v/315
}

// logCosh is log(cosh(z)) without overflow for large |z|.
func logCosh(z float64) float64 {
	z = math.Abs(z)
	return z + math.Log1p(math.Exp(-2*z)) - math.Ln2
}

// logCosRt is log(cos(sqrt(v))), or log(cosh(sqrt(-v))) for v < 0.
func logCosRt(v float64) float64 {
	r := math.Sqrt(math.Abs(v))
	if v >= 0 {
		return math.Log(math.Cos(r))
	}
	return logCosh(r)
}

// k2 is the second derivative of the cumulant generating function at
// the saddlepoint v of x.
func k2(x, v float64) float64 {
	if math.Abs(v) >= spTol {
		return x*x + (1-x)/v
	}
	return x*x - 1.0/3 - 2*v/15
}

// v inverts y(v) = x, logging when Newton did not converge.
func (s *Saddlepoint) v(x float64) float64 {
	v, ok := inverty.V(x, s.cfg.invTol, s.cfg.invMaxIter)
	if !ok {
		s.cfg.logger.Warn("inversion of y(v) did not converge",
			"routine", "Saddlepoint.v", "y", x, "v", v)
	}
	return v
}

// delta is the log-type correction above mid and its reciprocal-type
// counterpart below it.
func delta(x, mid float64) fd {
	if x >= mid {
		return fd{val: math.Log(x) - math.Log(mid), der: 1 / x}
	}
	return fd{val: 0.5*(1-1/x) - 0.5*(1-1/mid), der: 0.5 / (x * x)}
}

// phi is the saddlepoint exponent at x. It returns the saddlepoint v
// along with it.
func (s *Saddlepoint) phi(x, z float64) (fd, float64) {
	v := s.v(x)
	t := 0.5*v + 0.5*z*z

	return fd{
		val: logCosh(z) - logCosRt(v) - t*x,
		der: -t,
	}, v
}

// tangentToEta is the tangent at x of eta = phi - delta.
func (s *Saddlepoint) tangentToEta(x, z, mid float64) line {
	ph, _ := s.phi(x, z)
	dl := delta(x, mid)

	eta := fd{val: ph.val - dl.val, der: ph.der - dl.der}

	return line{slope: eta.der, icept: eta.val - eta.der*x}
}

// logSpApprox evaluates the logarithm of the saddlepoint approximation
// of the density of J*(n, z)/n at x.
func (s *Saddlepoint) logSpApprox(x, n, z float64) float64 {
	ph, v := s.phi(x, z)
	return 0.5*math.Log(0.5*n/math.Pi) - 0.5*math.Log(k2(x, v)) + n*ph.val
}

// envelope holds the calibration of the two-piece proposal for one
// (n, z) pair.
type envelope struct {
	md    float64
	al    float64
	ar    float64
	rl    float64
	rr    float64
	il    float64
	ir    float64
	lcn   float64
	rt2rl float64
	// pl is the probability of proposing from the left piece
	pl float64
}

// newEnvelope tangents eta to the left and to the right of its mode,
// where z has already been halved.
func (s *Saddlepoint) newEnvelope(n, z float64, cdf sample.CDFs) envelope {
	xl := yFunc(-z * z)
	md := xl * 1.1
	xr := xl * 1.2

	k2md := k2(md, s.v(md))
	m2 := md * md

	ll := s.tangentToEta(xl, z, md)
	lr := s.tangentToEta(xr, z, md)

	e := envelope{
		md:  md,
		al:  m2 * md / k2md,
		ar:  m2 / k2md,
		rl:  -ll.slope,
		rr:  -lr.slope,
		il:  ll.icept,
		ir:  lr.icept,
		lcn: 0.5 * math.Log(0.5*n/math.Pi),
	}
	e.rt2rl = math.Sqrt(2 * e.rl)

	// the weights overflow for large n|z|, only their ratio is needed
	lgn, _ := math.Lgamma(n)
	logwl := 0.5*math.Log(e.al) - n*e.rt2rl + n*e.il + 0.5*n/md +
		sample.LogIGaussCDF(cdf, md, 1/e.rt2rl, n)
	logwr := 0.5*math.Log(e.ar) + e.lcn - n*math.Log(n*e.rr) + n*e.ir - n*math.Log(md) + lgn +
		cdf.LogGammaSurvival(md, n, n*e.rr)
	e.pl = 1 / (1 + math.Exp(logwr-logwl))

	return e
}

// propose draws x from the envelope and returns it with the logarithm
// of the envelope density at x.
func (e *envelope) propose(n float64, rng sample.RNG) (x, logF float64, err error) {
	if rng.Unif() < e.pl {
		x, err = sample.TruncatedInverseGaussian(rng, 1/e.rt2rl, n, e.md)
		if err != nil {
			return 0, 0, err
		}
		ev := n*(e.il-e.rl*x) + 0.5*n*((1-1/x)-(1-1/e.md))
		return x, 0.5*math.Log(e.al) + e.lcn - 1.5*math.Log(x) + ev, nil
	}

	x, err = sample.LeftTruncatedGamma(rng, n, n*e.rr, e.md)
	if err != nil {
		return 0, 0, err
	}
	ev := n*(e.ir-e.rr*x) + n*(math.Log(x)-math.Log(e.md))
	return x, 0.5*math.Log(e.ar) + e.lcn + ev - math.Log(x), nil
}

// Draw samples approximately from PG(n, z).
func (s *Saddlepoint) Draw(n, z float64, rng sample.RNG) (float64, error) {
	x, _, err := s.DrawIter(n, z, rng)
	return x, err
}

// DrawIter is Draw that also reports the number of rejection
// iterations used. When the iteration limit is exhausted the last
// proposal is returned with a logged warning, and iter equals the
// limit.
func (s *Saddlepoint) DrawIter(n, z float64, rng sample.RNG) (float64, int, error) {
	if n < 1 {
		if !s.cfg.permissive {
			return 0, 0, errors.Wrapf(ErrInvalidShape, "cannot draw saddlepoint PG(%g, z)", n)
		}
		s.cfg.logger.Warn("invalid shape, setting n = 1", "routine", "Saddlepoint.Draw", "n", n)
		n = 1
	}

	z = 0.5 * math.Abs(z)
	env := s.newEnvelope(n, z, rng)

	x := 2.0
	iter := 0
	for iter < s.cfg.maxIter {
		if err := rng.Interrupt(iter); err != nil {
			return 0, iter, errors.Wrap(err, "error while sampling saddlepoint PG(n, z)")
		}
		iter++

		var logF float64
		var err error
		if x, logF, err = env.propose(n, rng); err != nil {
			return 0, iter, errors.Wrap(err, "error while sampling saddlepoint PG(n, z)")
		}

		if logF+math.Log(rng.Unif()) < s.logSpApprox(x, n, z) {
			return n * 0.25 * x, iter, nil
		}
	}

	s.cfg.logger.Warn("saddlepoint rejection reached its iteration limit",
		"routine", "Saddlepoint.Draw", "iter", iter, "n", n)

	return n * 0.25 * x, iter, nil
}
