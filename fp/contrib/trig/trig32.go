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

package trig

import (
	"github.com/ajroetker/go-libm/fp"
	"github.com/ajroetker/go-libm/fp/contrib/reduce"
)

// Small multiples of π/2 in float64. x ± k·π/2 is exact enough for float32
// inputs up to 9π/4 without a tail constant.
const (
	pio2x1 = 1 * 1.57079632679489661923
	pio2x2 = 2 * 1.57079632679489661923
	pio2x3 = 3 * 1.57079632679489661923
	pio2x4 = 4 * 1.57079632679489661923
)

// Breakpoints on |x| bits for the float32 functions.
const (
	f32Pio4     = 0x3f490fda // π/4
	f32Tiny     = 0x39800000 // 2^-12
	f32Pio4x3   = 0x4016cbe3 // 3π/4
	f32Pio4x5   = 0x407b53d1 // 5π/4
	f32Pio4x7   = 0x40afeddf // 7π/4
	f32Pio4x9   = 0x40e231d5 // 9π/4
	f32InfOrNaN = 0x7f800000
)

// Sinf returns the sine of x.
//
// Special cases are:
//
//	Sinf(±0) = ±0
//	Sinf(±Inf) = NaN
//	Sinf(NaN) = NaN
func Sinf(x float32) float32 {
	ix := fp.AbsBits32(x)
	negative := fp.SignBit(x)
	xd := float64(x)

	switch {
	case ix <= f32Pio4:
		if ix < f32Tiny {
			fp.RaiseInexact32(x)
			return x
		}
		return kernelSin32(xd)

	case ix <= f32Pio4x5:
		if ix <= f32Pio4x3 {
			if negative {
				return -kernelCos32(xd + pio2x1)
			}
			return kernelCos32(xd - pio2x1)
		}
		if negative {
			return kernelSin32(-(xd + pio2x2))
		}
		return kernelSin32(-(xd - pio2x2))

	case ix <= f32Pio4x9:
		if ix <= f32Pio4x7 {
			if negative {
				return kernelCos32(xd + pio2x3)
			}
			return -kernelCos32(xd - pio2x3)
		}
		if negative {
			return kernelSin32(xd + pio2x4)
		}
		return kernelSin32(xd - pio2x4)

	case ix >= f32InfOrNaN:
		return x - x
	}

	r := reduce.RemPio2f(x)
	switch r.Quadrant & 3 {
	case 0:
		return kernelSin32(r.Y)
	case 1:
		return kernelCos32(r.Y)
	case 2:
		return kernelSin32(-r.Y)
	default:
		return -kernelCos32(r.Y)
	}
}

// Cosf returns the cosine of x.
//
// Special cases are:
//
//	Cosf(±0) = 1
//	Cosf(±Inf) = NaN
//	Cosf(NaN) = NaN
func Cosf(x float32) float32 {
	ix := fp.AbsBits32(x)
	negative := fp.SignBit(x)
	xd := float64(x)

	switch {
	case ix <= f32Pio4:
		if ix < f32Tiny {
			fp.ForceEval(x + 0x1p120)
			return 1
		}
		return kernelCos32(xd)

	case ix <= f32Pio4x5:
		if ix > f32Pio4x3 {
			if negative {
				return -kernelCos32(xd + pio2x2)
			}
			return -kernelCos32(xd - pio2x2)
		}
		if negative {
			return kernelSin32(xd + pio2x1)
		}
		return kernelSin32(pio2x1 - xd)

	case ix <= f32Pio4x9:
		if ix > f32Pio4x7 {
			if negative {
				return kernelCos32(xd + pio2x4)
			}
			return kernelCos32(xd - pio2x4)
		}
		if negative {
			return kernelSin32(-xd - pio2x3)
		}
		return kernelSin32(xd - pio2x3)

	case ix >= f32InfOrNaN:
		return x - x
	}

	r := reduce.RemPio2f(x)
	switch r.Quadrant & 3 {
	case 0:
		return kernelCos32(r.Y)
	case 1:
		return kernelSin32(-r.Y)
	case 2:
		return -kernelCos32(r.Y)
	default:
		return kernelSin32(r.Y)
	}
}

// Tanf returns the tangent of x.
//
// Special cases are:
//
//	Tanf(±0) = ±0
//	Tanf(±Inf) = NaN
//	Tanf(NaN) = NaN
func Tanf(x float32) float32 {
	ix := fp.AbsBits32(x)
	negative := fp.SignBit(x)
	xd := float64(x)

	switch {
	case ix <= f32Pio4:
		if ix < f32Tiny {
			fp.RaiseInexact32(x)
			return x
		}
		return kernelTan32(xd, false)

	case ix <= f32Pio4x5:
		if ix <= f32Pio4x3 {
			if negative {
				return kernelTan32(xd+pio2x1, true)
			}
			return kernelTan32(xd-pio2x1, true)
		}
		if negative {
			return kernelTan32(xd+pio2x2, false)
		}
		return kernelTan32(xd-pio2x2, false)

	case ix <= f32Pio4x9:
		if ix <= f32Pio4x7 {
			if negative {
				return kernelTan32(xd+pio2x3, true)
			}
			return kernelTan32(xd-pio2x3, true)
		}
		if negative {
			return kernelTan32(xd+pio2x4, false)
		}
		return kernelTan32(xd-pio2x4, false)

	case ix >= f32InfOrNaN:
		return x - x
	}

	r := reduce.RemPio2f(x)
	return kernelTan32(r.Y, r.Quadrant&1 != 0)
}

// Sincosf returns Sinf(x), Cosf(x) from a single reduction.
func Sincosf(x float32) (sin, cos float32) {
	ix := fp.AbsBits32(x)
	negative := fp.SignBit(x)
	xd := float64(x)

	switch {
	case ix <= f32Pio4:
		if ix < f32Tiny {
			fp.RaiseInexact32(x)
			return x, 1
		}
		return kernelSin32(xd), kernelCos32(xd)

	case ix <= f32Pio4x5:
		if ix <= f32Pio4x3 {
			if negative {
				return -kernelCos32(xd + pio2x1), kernelSin32(xd + pio2x1)
			}
			return kernelCos32(pio2x1 - xd), kernelSin32(pio2x1 - xd)
		}
		y := xd - pio2x2
		if negative {
			y = xd + pio2x2
		}
		return -kernelSin32(y), -kernelCos32(y)

	case ix <= f32Pio4x9:
		if ix <= f32Pio4x7 {
			if negative {
				return kernelCos32(xd + pio2x3), -kernelSin32(xd + pio2x3)
			}
			return -kernelCos32(xd - pio2x3), kernelSin32(xd - pio2x3)
		}
		y := xd - pio2x4
		if negative {
			y = xd + pio2x4
		}
		return kernelSin32(y), kernelCos32(y)

	case ix >= f32InfOrNaN:
		nan := x - x
		return nan, nan
	}

	r := reduce.RemPio2f(x)
	s, c := kernelSin32(r.Y), kernelCos32(r.Y)
	switch r.Quadrant & 3 {
	case 0:
		return s, c
	case 1:
		return c, -s
	case 2:
		return -s, -c
	default:
		return -c, s
	}
}
