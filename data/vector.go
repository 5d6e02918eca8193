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

package data

import (
	"fmt"
	"math"

	"github.com/fentec-project/polyagamma/sample"
	"github.com/pkg/errors"
)

// Vector wraps a slice of float64 elements, typically a batch of
// Polya-Gamma draws.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, errors.Wrapf(err, "sampling element %d", i)
		}
	}

	return NewVector(vec), nil
}

// Sum returns the sum of the elements of v.
func (v Vector) Sum() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c
	}

	return sum
}

// Mean returns the sample mean of v, NaN for an empty vector.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	return v.Sum() / float64(len(v))
}

// Variance returns the unbiased sample variance of v, NaN for vectors
// with fewer than two elements.
func (v Vector) Variance() float64 {
	if len(v) < 2 {
		return math.NaN()
	}
	m := v.Mean()
	ss := 0.0
	for _, c := range v {
		d := c - m
		ss += d * d
	}

	return ss / float64(len(v)-1)
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
func (v Vector) CheckBound(bound float64) error {
	for i, c := range v {
		if math.Abs(c) >= bound || math.IsNaN(c) {
			return fmt.Errorf("coordinate %d of a vector is not smaller than bound %g", i, bound)
		}
	}

	return nil
}
