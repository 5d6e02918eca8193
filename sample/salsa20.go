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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// salsaBufSize is the number of key stream bytes produced per nonce.
const salsaBufSize = 512

// Salsa20Source is a deterministic rand.Source whose output is the
// Salsa20 key stream for a secret key. Draws are reproducible from
// the key alone, which lets independent parties regenerate the same
// latent variables.
type Salsa20Source struct {
	key   *[32]byte
	block uint64
	buf   [salsaBufSize]byte
	pos   int
}

// NewSalsa20Source returns an instance of Salsa20Source for key,
// positioned at the start of the stream.
func NewSalsa20Source(key *[32]byte) *Salsa20Source {
	s := &Salsa20Source{key: key}
	s.Seed(0)
	return s
}

// Seed positions the stream at the block numbered seed.
func (s *Salsa20Source) Seed(seed uint64) {
	s.block = seed
	s.pos = salsaBufSize
}

// Uint64 returns the next 8 bytes of the key stream.
func (s *Salsa20Source) Uint64() uint64 {
	if s.pos+8 > salsaBufSize {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8

	return v
}

func (s *Salsa20Source) refill() {
	in := make([]byte, salsaBufSize) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.block)

	salsa20.XORKeyStream(s.buf[:], in, nonce, s.key)
	s.block++
	s.pos = 0
}
