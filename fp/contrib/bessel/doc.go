// Copyright 2025 go-libm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bessel provides Bessel functions of the first and second kind of
// orders 0 and 1 for float32 and float64.
//
// Below |x| = 2 each function uses a single rational approximation in x².
// From 2 upward the large-argument form
//
//	J(x) = √(2/(πx)) (P(x) cos θ - Q(x) sin θ)
//	Y(x) = √(2/(πx)) (P(x) sin θ + Q(x) cos θ)
//
// is used, θ = x - π/4 (order 0) or x - 3π/4 (order 1). The envelopes P and
// Q are rational functions of 1/x², each a Table of four bands. sin θ and
// cos θ are formed from sin x and cos x, with the cancelling combination
// rewritten through sin x ± cos x = -cos 2x / (sin x ∓ cos x).
//
// Errors grow near the zeros of each function, where only an absolute
// error bound is meaningful.
package bessel
