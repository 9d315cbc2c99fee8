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

import "math"

// sin(x) ~ x + S1·x³ + ... + S6·x¹³ on [-π/4, π/4], |error| < 2^-58.
const (
	s1 = -1.66666666666666324348e-01
	s2 = 8.33333333332248946124e-03
	s3 = -1.98412698298579493134e-04
	s4 = 2.75573137070700676789e-06
	s5 = -2.50507602534068634195e-08
	s6 = 1.58969099521155010221e-10
)

// cos(x) ~ 1 - x²/2 + C1·x⁴ + ... + C6·x¹⁴ on [-π/4, π/4], |error| < 2^-58.
const (
	c1 = 4.16666666666666019037e-02
	c2 = -1.38888888888741095749e-03
	c3 = 2.48015872894767294178e-05
	c4 = -2.75573143513906633035e-07
	c5 = 2.08757232129817482790e-09
	c6 = -1.13596475577881948265e-11
)

// tan(x) ~ x + T0·x³ + ... + T12·x²⁷ on [0, 0.6744].
var tanCoeffs = [13]float64{
	3.33333333333334091986e-01,
	1.33333333333201242699e-01,
	5.39682539762260521377e-02,
	2.18694882948595424599e-02,
	8.86323982359930005737e-03,
	3.59207910759131235356e-03,
	1.45620945432529025516e-03,
	5.88041240820264096874e-04,
	2.46463134818469906812e-04,
	7.81794442939557092300e-05,
	7.14072491382608190305e-05,
	-1.85586374855275456654e-05,
	2.59073051863633712884e-05,
}

const (
	pio4   = 7.85398163397448278999e-01
	pio4lo = 3.06161699786838301793e-17
)

// kernelSin is sin(x+y) for |x+y| <= π/4, y the tail of x. hasTail=false
// means y is known to be zero and skips the correction term.
func kernelSin(x, y float64, hasTail bool) float64 {
	z := x * x
	w := z * z
	r := s2 + z*(s3+z*s4) + z*w*(s5+z*s6)
	v := z * x
	if !hasTail {
		return x + v*(s1+z*r)
	}
	return x - ((z*(0.5*y-v*r) - y) - v*s1)
}

// kernelCos is cos(x+y) for |x+y| <= π/4.
//
// 1-x²/2 is formed as w = 1-hz plus the rounding error ((1-w)-hz), which
// keeps the result accurate where hz is close to 1/4.
func kernelCos(x, y float64) float64 {
	z := x * x
	w := z * z
	r := z*(c1+z*(c2+z*c3)) + w*w*(c4+z*(c5+z*c6))
	hz := 0.5 * z
	w = 1 - hz
	return w + (((1 - w) - hz) + (z*r - x*y))
}

// kernelTan is tan(x+y) for |x+y| <= π/4, or -1/tan(x+y) when odd is set.
// For |x| >= 0.6744 it evaluates tan(π/4 - |x|) and maps back with
// tan(π/4 - a) = (1 - tan a)/(1 + tan a).
func kernelTan(x, y float64, odd bool) float64 {
	hx := uint32(math.Float64bits(x) >> 32)
	big := hx&0x7fffffff >= 0x3FE59428
	negative := hx>>31 != 0
	if big {
		if negative {
			x, y = -x, -y
		}
		x = (pio4 - x) + (pio4lo - y)
		y = 0
	}
	T := &tanCoeffs
	z := x * x
	w := z * z
	// Odd and even terms evaluated separately to shorten the dependency chain.
	r := T[1] + w*(T[3]+w*(T[5]+w*(T[7]+w*(T[9]+w*T[11]))))
	v := z * (T[2] + w*(T[4]+w*(T[6]+w*(T[8]+w*(T[10]+w*T[12])))))
	s := z * x
	r = y + z*(s*(r+v)+y) + s*T[0]
	w = x + r
	if big {
		sg := 1.0
		if odd {
			sg = -1
		}
		v = sg - 2*(x+(r-w*w/(w+sg)))
		if negative {
			return -v
		}
		return v
	}
	if !odd {
		return w
	}
	// -1/(x+r) directly has up to 2 ulp error; refine from a truncated
	// reciprocal a0 instead.
	w0 := clearLow(w)
	v = r - (w0 - x) // w0+v = x+r
	a := -1 / w
	a0 := clearLow(a)
	return a0 + a*(1+a0*w0+a0*v)
}

// clearLow zeroes the low 32 bits of x.
func clearLow(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ 0xffffffff)
}
