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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the RNG capability that every sampler in this
// module draws its randomness from, concrete sources behind it, and
// the elementary distributions the Polya-Gamma samplers are built on:
// truncated normal, inverse Gaussian, truncated inverse chi-squared and
// left-truncated gamma.
//
// An RNG is never global state. Each call site owns one; a source that
// has to be shared between goroutines is wrapped in Locked so that a
// whole batch of draws runs under one acquisition.
package sample
