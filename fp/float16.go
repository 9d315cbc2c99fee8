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

import "math"

// Float16 is an IEEE 754 half-precision (binary16) value in storage form.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
type Float16 uint16

// BFloat16 is a brain floating-point value: a binary32 with the lower 16
// mantissa bits dropped.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM
type BFloat16 uint16

// Float16 and BFloat16 constants for special values.
const (
	Float16One       Float16 = 0x3C00
	Float16MaxValue  Float16 = 0x7BFF // 65504
	Float16MinNormal Float16 = 0x0400 // 2^-14
	Float16MinValue  Float16 = 0x0001 // 2^-24, smallest subnormal
	Float16Inf       Float16 = 0x7C00
	Float16NaN       Float16 = 0x7E00

	BFloat16One      BFloat16 = 0x3F80
	BFloat16MinValue BFloat16 = 0x0001 // 2^-133, smallest subnormal
	BFloat16Inf      BFloat16 = 0x7F80
	BFloat16NaN      BFloat16 = 0x7FC0
)

// Decompose returns the bit view of h.
func (h Float16) Decompose() FloatBits { return DecomposeBits(uint64(h), Binary16) }

// Decompose returns the bit view of b.
func (b BFloat16) Decompose() FloatBits { return DecomposeBits(uint64(b), BF16) }

// Ilogb returns the binary exponent of h; see FloatBits.Ilogb.
func (h Float16) Ilogb() int { return h.Decompose().Ilogb() }

// Ilogb returns the binary exponent of b; see FloatBits.Ilogb.
func (b BFloat16) Ilogb() int { return b.Decompose().Ilogb() }

// Float32 widens h to float32. The conversion is exact.
func (h Float16) Float32() float32 { return widen(h.Decompose()) }

// Float32 widens b to float32. The conversion is exact.
func (b BFloat16) Float32() float32 { return widen(b.Decompose()) }

// Float32ToFloat16 narrows f with round-to-nearest-even. Overflow goes to
// infinity, NaN stays NaN with the quiet bit set.
func Float32ToFloat16(f float32) Float16 { return Float16(narrow(f, Binary16)) }

// Float32ToBFloat16 narrows f with round-to-nearest-even.
func Float32ToBFloat16(f float32) BFloat16 { return BFloat16(narrow(f, BF16)) }

// widen converts a view in a format narrower than binary32 to float32.
func widen(b FloatBits) float32 {
	f := b.Format
	sign := uint32(b.Sign) << 31
	switch {
	case b.IsNaN():
		return math.Float32frombits(sign | 0x7FC00000 | uint32(b.Mantissa)<<(23-f.MantissaBits))
	case b.IsInf():
		return math.Float32frombits(sign | 0x7F800000)
	}
	m := b.Mantissa
	e := 1 - f.Bias - int(f.MantissaBits)
	if b.Exponent != 0 {
		m |= 1 << f.MantissaBits
		e = int(b.Exponent) - f.Bias - int(f.MantissaBits)
	}
	v := float32(math.Ldexp(float64(m), e))
	if b.Sign != 0 {
		v = -v
	}
	return v
}

// narrow rounds a float32 into format to, which must have at most 23
// mantissa bits and at most 8 exponent bits.
func narrow(x float32, to Format) uint64 {
	b := Decompose(x)
	sign := uint64(b.Sign) << (to.Width - 1)
	inf := uint64(to.MaxExponent()) << to.MantissaBits
	switch {
	case b.IsNaN():
		return sign | inf | 1<<(to.MantissaBits-1) | b.Mantissa>>(23-to.MantissaBits)
	case b.IsInf():
		return sign | inf
	case b.IsZero():
		return sign
	}

	// value = m·2^(e-23)
	m := b.Mantissa
	e := -126
	if b.Exponent != 0 {
		m |= 1 << 23
		e = int(b.Exponent) - 127
	}
	te := e + to.Bias
	shift := 23 - int(to.MantissaBits)
	var out uint64
	if te <= 0 {
		// Subnormal in the target; a carry out of the mantissa lands on the
		// smallest normal exponent.
		out = roundShift(m, shift+1-te)
	} else {
		// The implicit bit adds one to the exponent field.
		out = uint64(te-1)<<to.MantissaBits + roundShift(m, shift)
	}
	if out >= inf {
		return sign | inf
	}
	return sign | out
}

// roundShift returns m >> shift rounded to nearest, ties to even.
func roundShift(m uint64, shift int) uint64 {
	if shift >= 64 {
		return 0
	}
	q := m >> shift
	rem := m & (1<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}
