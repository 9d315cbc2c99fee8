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

package reduce

import (
	"math"

	"github.com/ajroetker/go-libm/fp"
)

// Binary64 reduction constants. pio2_1 holds the first 33 bits of π/2 so
// that n·pio2_1 is exact for |n| < 2^20; pio2_2 and pio2_3 continue the
// expansion 33 bits at a time and each *t constant is the remainder after
// the preceding split.
const (
	toint   = 1.5 / 0x1p-52
	pio4    = 0x1.921fb54442d18p-1
	invpio2 = 6.36619772367581382433e-01
	pio2_1  = 1.57079632673412561417e+00
	pio2_1t = 6.07710050650619224932e-11
	pio2_2  = 6.07710050630396597660e-11
	pio2_2t = 2.02226624879595063154e-21
	pio2_3  = 2.02226624871116645580e-21
	pio2_3t = 8.47842766036889956997e-32
)

// RemPio2 reduces x to x = Quadrant·π/2 + Hi + Lo with |Hi+Lo| <= π/4.
func RemPio2(x float64) Reduced {
	hx := fp.HighWord(x)
	ix := hx & 0x7fffffff
	negative := hx>>31 != 0

	switch {
	case ix <= 0x3fe921fb: // |x| ~<= π/4
		return Reduced{Hi: x}

	case ix <= 0x400f6a7a: // |x| ~<= 5π/4
		if ix&0xfffff == 0x921fb { // |x| ~= π/2 or 2π/2
			return medium(x, ix)
		}
		if ix <= 0x4002d97c { // |x| ~<= 3π/4
			return subtract(x, 1, negative)
		}
		return subtract(x, 2, negative)

	case ix <= 0x401c463b: // |x| ~<= 9π/4
		if ix <= 0x4015fdbc { // |x| ~<= 7π/4
			if ix == 0x4012d97c { // |x| ~= 3π/2
				return medium(x, ix)
			}
			return subtract(x, 3, negative)
		}
		if ix == 0x401921fb { // |x| ~= 4π/2
			return medium(x, ix)
		}
		return subtract(x, 4, negative)

	case ix < 0x413921fb: // |x| ~< 2^20·π/2
		return medium(x, ix)

	case ix >= 0x7ff00000: // Inf or NaN
		return Reduced{Hi: x - x, Lo: x - x}
	}
	return Large(x)
}

// subtract removes k·π/2 from x using the two-constant split. Only valid
// for inputs not close to a multiple of π/2.
func subtract(x float64, k int, negative bool) Reduced {
	c1, c1t := float64(k)*pio2_1, float64(k)*pio2_1t
	if negative {
		c1, c1t, k = -c1, -c1t, -k
	}
	z := x - c1
	hi := z - c1t
	lo := (z - hi) - c1t
	return Reduced{Quadrant: k, Hi: hi, Lo: lo}
}

// medium is the Cody–Waite path for |x| < 2^20·π/2. A second and third
// subtraction run only when the first loses more than 16 (then 49) bits to
// cancellation, which happens only near multiples of π/2.
func medium(x float64, ix uint32) Reduced {
	fn := float64(x*invpio2) + toint - toint
	n := int(fn)
	r := x - fn*pio2_1
	w := float64(fn * pio2_1t)
	// Under directed rounding fn can be one off.
	if r-w < -pio4 {
		n--
		fn--
		r = x - fn*pio2_1
		w = float64(fn * pio2_1t)
	} else if r-w > pio4 {
		n++
		fn++
		r = x - fn*pio2_1
		w = float64(fn * pio2_1t)
	}
	y0 := r - w

	ex := int(ix >> 20)
	ey := int(math.Float64bits(y0)>>52) & 0x7ff
	if ex-ey > 16 {
		t := r
		w = float64(fn * pio2_2)
		r = t - w
		w = float64(fn*pio2_2t) - ((t - r) - w)
		y0 = r - w
		ey = int(math.Float64bits(y0)>>52) & 0x7ff
		if ex-ey > 49 {
			t = r
			w = float64(fn * pio2_3)
			r = t - w
			w = float64(fn*pio2_3t) - ((t - r) - w)
			y0 = r - w
		}
	}
	return Reduced{Quadrant: n, Hi: y0, Lo: (r - y0) - w}
}
