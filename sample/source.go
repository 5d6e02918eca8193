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
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// NewSource returns a PCG source seeded with seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// NewMT19937 returns a 32-bit Mersenne Twister source seeded with seed.
func NewMT19937(seed uint64) rand.Source {
	src := prng.NewMT19937()
	src.Seed(seed)
	return src
}

// NewXoshiro returns a xoshiro256** source seeded with seed.
func NewXoshiro(seed uint64) rand.Source {
	return prng.NewXoshiro256starstar(seed)
}

// Locked serializes access to an RNG that is shared between
// goroutines. Interleaving two draw sequences on one generator
// corrupts both, so the lock is held for a whole batch rather
// than for a single variate.
type Locked struct {
	mu  sync.Mutex
	rng RNG
}

// NewLocked returns an instance of Locked guarding rng.
func NewLocked(rng RNG) *Locked {
	return &Locked{rng: rng}
}

// Do runs f with exclusive ownership of the underlying RNG.
func (l *Locked) Do(f func(RNG) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return f(l.rng)
}
