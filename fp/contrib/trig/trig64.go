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

// Breakpoints on the high word of |x| for the float64 functions.
const (
	f64Pio4     = 0x3fe921fb // π/4
	f64SinTiny  = 0x3e500000 // 2^-26
	f64CosTiny  = 0x3e46a09e // 2^-27·√2
	f64TanTiny  = 0x3e400000 // 2^-27
	f64InfOrNaN = 0x7ff00000
)

// Sin returns the sine of x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	ix := fp.AbsHighWord(x)
	switch {
	case ix <= f64Pio4:
		if ix < f64SinTiny {
			fp.RaiseInexact64(x)
			return x
		}
		return kernelSin(x, 0, false)
	case ix >= f64InfOrNaN:
		return x - x
	}

	r := reduce.RemPio2(x)
	switch r.Quadrant & 3 {
	case 0:
		return kernelSin(r.Hi, r.Lo, true)
	case 1:
		return kernelCos(r.Hi, r.Lo)
	case 2:
		return -kernelSin(r.Hi, r.Lo, true)
	default:
		return -kernelCos(r.Hi, r.Lo)
	}
}

// Cos returns the cosine of x.
//
// Special cases are:
//
//	Cos(±0) = 1
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	ix := fp.AbsHighWord(x)
	switch {
	case ix <= f64Pio4:
		if ix < f64CosTiny {
			fp.ForceEval(x + 0x1p120)
			return 1
		}
		return kernelCos(x, 0)
	case ix >= f64InfOrNaN:
		return x - x
	}

	r := reduce.RemPio2(x)
	switch r.Quadrant & 3 {
	case 0:
		return kernelCos(r.Hi, r.Lo)
	case 1:
		return -kernelSin(r.Hi, r.Lo, true)
	case 2:
		return -kernelCos(r.Hi, r.Lo)
	default:
		return kernelSin(r.Hi, r.Lo, true)
	}
}

// Tan returns the tangent of x.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(x float64) float64 {
	ix := fp.AbsHighWord(x)
	switch {
	case ix <= f64Pio4:
		if ix < f64TanTiny {
			fp.RaiseInexact64(x)
			return x
		}
		return kernelTan(x, 0, false)
	case ix >= f64InfOrNaN:
		return x - x
	}

	r := reduce.RemPio2(x)
	return kernelTan(r.Hi, r.Lo, r.Quadrant&1 != 0)
}

// Sincos returns Sin(x), Cos(x) from a single reduction.
func Sincos(x float64) (sin, cos float64) {
	ix := fp.AbsHighWord(x)
	switch {
	case ix <= f64Pio4:
		if ix < f64CosTiny {
			fp.RaiseInexact64(x)
			return x, 1
		}
		return kernelSin(x, 0, false), kernelCos(x, 0)
	case ix >= f64InfOrNaN:
		nan := x - x
		return nan, nan
	}

	r := reduce.RemPio2(x)
	s, c := kernelSin(r.Hi, r.Lo, true), kernelCos(r.Hi, r.Lo)
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
