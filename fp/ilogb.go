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

package fp

import (
	"math"
	"math/bits"
)

// Sentinels returned by the exponent extractor.
const (
	// ILogbNaN is returned for NaN inputs.
	ILogbNaN = math.MinInt32
	// ILogb0 is returned for ±0. It shares its value with ILogbNaN.
	ILogb0 = ILogbNaN
	// ILogbInf is returned for ±Inf.
	ILogbInf = math.MaxInt32
)

// Ilogb returns the unbiased binary exponent p of a nonzero finite value
// m·2^p with 1 <= m < 2. Subnormals are normalised first, so the smallest
// binary64 subnormal yields -1074.
//
// Special cases:
//   - Ilogb(±0) = ILogb0
//   - Ilogb(±Inf) = ILogbInf
//   - Ilogb(NaN) = ILogbNaN
//
// The zero, Inf and NaN cases raise the invalid exception, like the C library.
func (b FloatBits) Ilogb() int {
	f := b.Format
	switch b.Exponent {
	case 0:
		if b.Mantissa == 0 {
			RaiseInvalid()
			return ILogb0
		}
		return bits.Len64(b.Mantissa) - f.Bias - int(f.MantissaBits)
	case f.MaxExponent():
		RaiseInvalid()
		if b.Mantissa != 0 {
			return ILogbNaN
		}
		return ILogbInf
	}
	return int(b.Exponent) - f.Bias
}

// Ilogb64 returns the binary exponent of a binary64 value.
func Ilogb64(x float64) int {
	return Decompose(x).Ilogb()
}

// Ilogb32 returns the binary exponent of a binary32 value.
func Ilogb32(x float32) int {
	return Decompose(x).Ilogb()
}

// Ilogb returns the binary exponent of x at its own precision.
func Ilogb[T Floats](x T) int {
	return Decompose(x).Ilogb()
}
