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
	"log/slog"

	"github.com/fentec-project/polyagamma/internal/inverty"
)

const (
	// DefaultTrunc is the truncation order of an Exact sampler
	// built without an explicit one.
	DefaultTrunc = 200
	// DefaultMaxIter bounds the saddlepoint rejection loop.
	DefaultMaxIter = 200
)

// Option configures the samplers of this package.
type Option func(*config)

type config struct {
	// permissive clamps invalid arguments to their minimum instead
	// of returning an error
	permissive bool
	logger     *slog.Logger
	trunc      int
	truncSet   bool
	maxIter    int
	invTol     float64
	invMaxIter int
}

func newConfig(opts []Option) config {
	c := config{
		logger:     slog.Default(),
		maxIter:    DefaultMaxIter,
		invTol:     inverty.DefaultTol,
		invMaxIter: inverty.DefaultMaxIter,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithPermissive makes invalid truncation orders and shapes clamp to 1
// with a logged warning, instead of failing with ErrInvalidTrunc or
// ErrInvalidShape.
func WithPermissive() Option {
	return func(c *config) {
		c.permissive = true
	}
}

// WithLogger sets the logger receiving non-fatal diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTrunc sets the truncation order used by Hybrid for its
// sum-of-gammas branch.
func WithTrunc(trunc int) Option {
	return func(c *config) {
		c.trunc = trunc
		c.truncSet = true
	}
}

// WithMaxIter sets the iteration limit of the saddlepoint rejection loop.
func WithMaxIter(maxIter int) Option {
	return func(c *config) {
		if maxIter > 0 {
			c.maxIter = maxIter
		}
	}
}

// WithInvertTol sets the Newton tolerance used when inverting y(v).
func WithInvertTol(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.invTol = tol
		}
	}
}

// WithInvertMaxIter sets the Newton iteration limit used when
// inverting y(v).
func WithInvertMaxIter(maxIter int) Option {
	return func(c *config) {
		if maxIter > 0 {
			c.invMaxIter = maxIter
		}
	}
}
