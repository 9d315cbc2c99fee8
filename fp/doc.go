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

// Package fp provides bit-exact views of IEEE-754 floating-point values and
// the small amount of extended-precision arithmetic shared by the libm
// packages under fp/contrib.
//
// Every value can be taken apart into its sign, biased exponent and mantissa
// fields and put back together without losing a bit:
//
//	b := fp.Decompose(x)       // x is float32 or float64
//	if b.IsSubnormal() { ... }
//	y := fp.Reconstruct[float64](b) // y has the same bits as x
//
// Classification (NaN, Inf, zero, subnormal) is done on the decoded fields,
// never with floating-point comparisons, so it is exact for every bit
// pattern including signalling NaNs and negative zero.
//
// The package also hosts:
//   - Ilogb32/Ilogb64: the binary exponent extractor, with the C library's
//     sentinels for zero, NaN and infinity.
//   - ForceEval/RaiseInvalid: discarded computations that mirror the
//     floating-point exception side effects of the C library.
//   - TwoSum/TwoProd: error-free transformations used by the range reducer,
//     dispatched at init time to FMA or Dekker splitting.
//   - Float16/BFloat16: 16-bit storage formats sharing the same bit view.
package fp

// Floats is a constraint for the IEEE-754 binary32 and binary64 types.
type Floats interface {
	~float32 | ~float64
}
