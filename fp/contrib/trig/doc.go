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

// Package trig provides sine, cosine and tangent for float32 and float64.
//
// Each entry point screens Inf and NaN first, then reduces the argument to
// [-π/4, π/4] with package reduce and evaluates a fixed-degree minimax
// polynomial kernel. The float32 functions run their kernels in float64,
// which leaves roughly 2^-29 of headroom over float32 rounding; the float64
// kernels take the reduced argument as a double-double.
//
// Results are within 1 ulp of the correctly rounded value. Sincos and
// Sincosf return exactly the values of the separate calls.
package trig
