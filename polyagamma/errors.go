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

import "github.com/fentec-project/polyagamma/internal"

var (
	// ErrInvalidTrunc is returned in strict mode for a truncation order below 1.
	ErrInvalidTrunc = internal.ErrInvalidTrunc
	// ErrInvalidShape is returned in strict mode for a shape below 1
	// where the sampler requires n >= 1.
	ErrInvalidShape = internal.ErrInvalidShape
	// ErrDimensionMismatch is returned by vector draws whose shape and
	// tilt slices differ in length.
	ErrDimensionMismatch = internal.ErrDimensionMismatch
)
