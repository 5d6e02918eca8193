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

	lru "github.com/hashicorp/golang-lru/v2"
)

const fourPiSq = 4 * math.Pi * math.Pi

// tableCacheSize is the number of distinct truncation orders whose
// tables are kept around.
const tableCacheSize = 16

// tables caches the sum-of-gammas denominators per truncation order.
// Cached slices are shared between samplers and never written to.
var tables = newTableCache()

func newTableCache() *lru.Cache[int, []float64] {
	c, err := lru.New[int, []float64](tableCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// gammaTable returns bvec[k] = 4 pi^2 (k + 1/2)^2 for k < trunc.
func gammaTable(trunc int) []float64 {
	if bvec, ok := tables.Get(trunc); ok {
		return bvec
	}

	bvec := make([]float64, trunc)
	for k := range bvec {
		// + 0.5 since we start indexing at 0
		d := float64(k) + 0.5
		bvec[k] = fourPiSq * d * d
	}
	tables.Add(trunc, bvec)

	return bvec
}
