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

// Package polyagamma samples from the Polya-Gamma distribution PG(n, z).
//
// PG(n, z) is the law of
//
//	X = 1/(2 pi^2) * sum_{k>=1} g_k / ((k - 1/2)^2 + z^2/(4 pi^2)),  g_k ~ Gamma(n, 1),
//
// and is the latent variable that turns a logistic or binomial
// likelihood into a conditionally Gaussian one.
//
// Three samplers are provided:
//
//   - Exact draws PG(1, z) exactly with Devroye's alternating-series
//     rejection algorithm and sums n of them for integer n. It also
//     offers the truncated sum-of-gammas approximation.
//   - Saddlepoint draws PG(n, z) for large n by rejection from a
//     two-piece envelope of the saddlepoint density approximation.
//   - Hybrid picks one of the above, or a moment-matched normal, by
//     the size of n.
//
// All randomness comes from a sample.RNG passed into every call.
package polyagamma
