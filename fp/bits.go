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
	"unsafe"
)

// Format describes the field layout of an IEEE-754 binary interchange format.
type Format struct {
	Name         string
	Width        uint // total bits
	ExponentBits uint
	MantissaBits uint // explicit (stored) mantissa bits
	Bias         int
}

// Predefined formats.
var (
	Binary16 = Format{Name: "binary16", Width: 16, ExponentBits: 5, MantissaBits: 10, Bias: 15}
	BF16     = Format{Name: "bfloat16", Width: 16, ExponentBits: 8, MantissaBits: 7, Bias: 127}
	Binary32 = Format{Name: "binary32", Width: 32, ExponentBits: 8, MantissaBits: 23, Bias: 127}
	Binary64 = Format{Name: "binary64", Width: 64, ExponentBits: 11, MantissaBits: 52, Bias: 1023}
)

// MaxExponent returns the all-ones biased exponent used by Inf and NaN.
func (f Format) MaxExponent() uint32 {
	return 1<<f.ExponentBits - 1
}

// MantissaMask returns a mask covering the stored mantissa bits.
func (f Format) MantissaMask() uint64 {
	return 1<<f.MantissaBits - 1
}

// FloatBits is a read-only view of the fields of a floating-point value.
//
// Format: Sign (1 bit) | Exponent (ExponentBits) | Mantissa (MantissaBits)
//
// A FloatBits is computed on demand and never cached; it carries no state
// beyond the fields of the value it was decoded from.
type FloatBits struct {
	Sign     uint8
	Exponent uint32 // biased
	Mantissa uint64
	Format   Format
}

// DecomposeBits splits raw bits laid out in format f into their fields.
// Bits above f.Width are ignored.
func DecomposeBits(raw uint64, f Format) FloatBits {
	return FloatBits{
		Sign:     uint8(raw >> (f.Width - 1) & 1),
		Exponent: uint32(raw>>f.MantissaBits) & f.MaxExponent(),
		Mantissa: raw & f.MantissaMask(),
		Format:   f,
	}
}

// Raw reassembles the fields into raw bits.
func (b FloatBits) Raw() uint64 {
	f := b.Format
	return uint64(b.Sign&1)<<(f.Width-1) |
		uint64(b.Exponent&f.MaxExponent())<<f.MantissaBits |
		b.Mantissa&f.MantissaMask()
}

// Decompose returns the bit view of x.
func Decompose[T Floats](x T) FloatBits {
	if unsafe.Sizeof(x) == 4 {
		return DecomposeBits(uint64(math.Float32bits(float32(x))), Binary32)
	}
	return DecomposeBits(math.Float64bits(float64(x)), Binary64)
}

// Reconstruct is the inverse of Decompose. The view must describe a value of
// the same width as T; Reconstruct(Decompose(x)) has exactly the bits of x.
func Reconstruct[T Floats](b FloatBits) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Float32frombits(uint32(b.Raw())))
	}
	return T(math.Float64frombits(b.Raw()))
}

// IsNaN reports whether the view is a NaN: maximum exponent, nonzero mantissa.
func (b FloatBits) IsNaN() bool {
	return b.Exponent == b.Format.MaxExponent() && b.Mantissa != 0
}

// IsInf reports whether the view is an infinity: maximum exponent, zero mantissa.
func (b FloatBits) IsInf() bool {
	return b.Exponent == b.Format.MaxExponent() && b.Mantissa == 0
}

// IsZero reports whether the view is ±0.
func (b FloatBits) IsZero() bool {
	return b.Exponent == 0 && b.Mantissa == 0
}

// IsSubnormal reports whether the view is a subnormal number.
func (b FloatBits) IsSubnormal() bool {
	return b.Exponent == 0 && b.Mantissa != 0
}

// IsFinite reports whether the view is neither Inf nor NaN.
func (b FloatBits) IsFinite() bool {
	return b.Exponent != b.Format.MaxExponent()
}

// Negative reports whether the sign bit is set, including for -0 and NaNs.
func (b FloatBits) Negative() bool {
	return b.Sign != 0
}

// Abs returns the view with the sign bit cleared.
func (b FloatBits) Abs() FloatBits {
	b.Sign = 0
	return b
}

// IsNaN reports whether x is a NaN.
func IsNaN[T Floats](x T) bool { return Decompose(x).IsNaN() }

// IsInf reports whether x is ±Inf.
func IsInf[T Floats](x T) bool { return Decompose(x).IsInf() }

// IsZero reports whether x is ±0.
func IsZero[T Floats](x T) bool { return Decompose(x).IsZero() }

// IsSubnormal reports whether x is subnormal.
func IsSubnormal[T Floats](x T) bool { return Decompose(x).IsSubnormal() }

// SignBit reports whether the sign bit of x is set.
func SignBit[T Floats](x T) bool { return Decompose(x).Negative() }

// HighWord returns the upper 32 bits of a binary64 value: sign, exponent and
// the top 20 mantissa bits. Threshold tests on |x| compare against it.
func HighWord(x float64) uint32 {
	return uint32(math.Float64bits(x) >> 32)
}

// LowWord returns the lower 32 mantissa bits of a binary64 value.
func LowWord(x float64) uint32 {
	return uint32(math.Float64bits(x))
}

// AbsHighWord returns HighWord(x) with the sign bit cleared.
func AbsHighWord(x float64) uint32 {
	return HighWord(x) & 0x7fffffff
}

// AbsBits32 returns the bits of a binary32 value with the sign bit cleared.
func AbsBits32(x float32) uint32 {
	return math.Float32bits(x) & 0x7fffffff
}
