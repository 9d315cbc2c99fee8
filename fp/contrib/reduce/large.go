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
	"math/bits"

	"github.com/ajroetker/go-libm/fp"
)

// π/2 as a double-double.
const (
	pio2Hi = 1.5707963267948966
	pio2Lo = 6.123233995736766e-17
)

// minLargeExponent is the smallest biased exponent handled by the table
// walk; the window start (exp+62) must not be negative. Smaller inputs are
// far below π/4 and reduce to themselves.
const minLargeExponent = 1013

// Large reduces any finite x by Payne–Hanek multiplication with 2/π.
//
// With x = m·2^e (m a 53-bit integer), only the bits of 2/π whose product
// with m lands between weight 2 and weight 2^-190 matter: higher bits only
// add multiples of 4 to the quadrant, lower ones fall below the precision
// kept. Those 192 bits are read from the table, multiplied by m modulo
// 2^192, and the top two bits of the product are the quadrant.
//
// The fraction is centred on zero, converted to a double-double and scaled
// by π/2. The relative error of Hi+Lo is below 2^-64 for every binary64
// input, including the closest approaches to multiples of π/2.
func Large(x float64) Reduced {
	b := fp.Decompose(x)
	if !b.IsFinite() {
		return Reduced{Hi: x - x, Lo: x - x}
	}
	if b.Exponent < minLargeExponent {
		return Reduced{Hi: x}
	}

	ix := b.Mantissa | 1<<52
	exp := int(b.Exponent) - 1075
	digit, shift := (exp+62)/64, uint((exp+62)%64)

	w := twoOverPi[digit : digit+4]
	z0 := w[0]<<shift | w[1]>>(64-shift)
	z1 := w[1]<<shift | w[2]>>(64-shift)
	z2 := w[2]<<shift | w[3]>>(64-shift)

	// Bits 64..191 of ix·(z0:z1:z2); the low 64 bits are dropped.
	z2hi, _ := bits.Mul64(z2, ix)
	z1hi, z1lo := bits.Mul64(z1, ix)
	lo, carry := bits.Add64(z1lo, z2hi, 0)
	hi := z0*ix + z1hi + carry

	q := hi >> 62
	fhi, flo := hi<<2|lo>>62, lo<<2

	negative := false
	if fhi>>63 != 0 {
		// Fraction >= 1/2: round the quadrant up and use 1-f.
		q++
		var borrow uint64
		flo, borrow = bits.Sub64(0, flo, 0)
		fhi, _ = bits.Sub64(0, fhi, borrow)
		negative = true
	}

	var r Reduced
	if fhi|flo != 0 {
		lz := bits.LeadingZeros64(fhi)
		if fhi == 0 {
			lz = 64 + bits.LeadingZeros64(flo)
		}
		nhi, nlo := shl128(fhi, flo, uint(lz))
		h := nhi >> 11
		next := nhi<<53 | nlo>>11
		fh := math.Ldexp(float64(h), -53-lz)
		fl := math.Ldexp(float64(next), -117-lz)
		fh, fl = fp.FastTwoSum(fh, fl)
		r.Hi, r.Lo = fp.MulDD(fh, fl, pio2Hi, pio2Lo)
	}

	r.Quadrant = int(q & 3)
	if negative {
		r.Hi, r.Lo = -r.Hi, -r.Lo
	}
	if b.Negative() {
		r.Quadrant = -r.Quadrant
		r.Hi, r.Lo = -r.Hi, -r.Lo
	}
	return r
}

// shl128 shifts the 128-bit value hi:lo left by s < 128.
func shl128(hi, lo uint64, s uint) (uint64, uint64) {
	if s >= 64 {
		return lo << (s - 64), 0
	}
	return hi<<s | lo>>(64-s), lo << s
}
