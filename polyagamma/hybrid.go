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
	"sync"

	"github.com/fentec-project/polyagamma/sample"
	"github.com/pkg/errors"
)

const (
	// shapes above normalShape use a moment-matched normal
	normalShape = 170
	// shapes above saddleShape use the saddlepoint sampler
	saddleShape = 13
	// hybridTrunc is the sum-of-gammas truncation order of Hybrid
	hybridTrunc = 1000
)

// Hybrid draws from PG(h, z) for any real shape h, choosing the
// method by the magnitude of h:
//
//	h > 170        normal with the PG(h, z) mean and variance
//	13 < h <= 170  saddlepoint approximation
//	h = 1, 2       exact sum of Devroye draws
//	0 < h <= 13    truncated sum of gammas
//	h <= 0         0
type Hybrid struct {
	exact *Exact
	sp    *Saddlepoint
}

// NewHybrid returns an instance of Hybrid. The options are shared by
// the exact and the saddlepoint sampler; WithTrunc overrides the
// sum-of-gammas truncation order of 1000.
func NewHybrid(opts ...Option) (*Hybrid, error) {
	cfg := newConfig(opts)
	trunc := hybridTrunc
	if cfg.truncSet {
		trunc = cfg.trunc
	}

	exact, err := NewExact(trunc, opts...)
	if err != nil {
		return nil, err
	}

	return &Hybrid{
		exact: exact,
		sp:    NewSaddlepoint(opts...),
	}, nil
}

// Draw samples from PG(h, z).
func (h *Hybrid) Draw(shape, z float64, rng sample.RNG) (float64, error) {
	switch {
	case shape > normalShape:
		m := Mean(shape, z)
		v := SecondMoment(shape, z) - m*m
		return m + math.Sqrt(v)*rng.Norm(), nil
	case shape > saddleShape:
		return h.sp.Draw(shape, z, rng)
	case shape == 1 || shape == 2:
		return h.exact.Draw(int(shape), z, rng)
	case shape > 0:
		return h.exact.DrawSumOfGammas(shape, z, rng), nil
	}

	return 0, nil
}

var defaultHybrid = sync.OnceValues(func() (*Hybrid, error) {
	return NewHybrid()
})

// Draw samples from PG(h, z) with a Hybrid in its default
// configuration.
func Draw(shape, z float64, rng sample.RNG) (float64, error) {
	h, err := defaultHybrid()
	if err != nil {
		return 0, errors.Wrap(err, "cannot build default sampler")
	}
	return h.Draw(shape, z, rng)
}
