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
	"github.com/fentec-project/polyagamma/data"
	"github.com/fentec-project/polyagamma/sample"
	"github.com/pkg/errors"
)

// DrawVector draws x[i] from PG(shape[i], z[i]) for every i.
func (h *Hybrid) DrawVector(shape, z []float64, rng sample.RNG) (data.Vector, error) {
	if len(shape) != len(z) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d shapes and %d tilts", len(shape), len(z))
	}

	x := make(data.Vector, len(shape))
	for i := range shape {
		var err error
		if x[i], err = h.Draw(shape[i], z[i], rng); err != nil {
			return nil, errors.Wrapf(err, "drawing element %d", i)
		}
	}

	return x, nil
}

// DrawVector is Hybrid.DrawVector with the default configuration.
func DrawVector(shape, z []float64, rng sample.RNG) (data.Vector, error) {
	h, err := defaultHybrid()
	if err != nil {
		return nil, errors.Wrap(err, "cannot build default sampler")
	}
	return h.DrawVector(shape, z, rng)
}

// Fixed samples repeatedly from PG(shape, z) with fixed parameters.
// It implements sample.Sampler.
type Fixed struct {
	h     *Hybrid
	shape float64
	z     float64
	rng   sample.RNG
}

// Sampler returns a Fixed drawing from PG(shape, z) with rng.
func (h *Hybrid) Sampler(shape, z float64, rng sample.RNG) *Fixed {
	return &Fixed{
		h:     h,
		shape: shape,
		z:     z,
		rng:   rng,
	}
}

// Sample draws one value.
func (f *Fixed) Sample() (float64, error) {
	return f.h.Draw(f.shape, f.z, f.rng)
}

// DrawN returns count independent draws from PG(shape, z).
func (h *Hybrid) DrawN(shape, z float64, count int, rng sample.RNG) (data.Vector, error) {
	return data.NewRandomVector(count, h.Sampler(shape, z, rng))
}
