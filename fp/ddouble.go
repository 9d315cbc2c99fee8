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

// Error-free transformations on binary64. A double-double value is an
// unevaluated sum hi+lo with |lo| <= ulp(hi)/2.
//
// Products are written as float64(a*b) where an exact rounding step is
// required so the compiler does not fuse them into an FMA.

// TwoSum returns s = fl(a+b) and the exact rounding error e, a+b = s+e.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// FastTwoSum is TwoSum for |a| >= |b| (or a == 0).
func FastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// TwoProd returns p = fl(a*b) and the exact rounding error e, a*b = p+e,
// barring overflow or underflow of e.
func TwoProd(a, b float64) (p, e float64) {
	if currentLevel == DispatchFMA {
		p = a * b
		return p, math.FMA(a, b, -p)
	}
	return twoProdDekker(a, b)
}

// splitter is 2^27+1.
const splitter = 134217729.0

// split returns hi+lo = a with hi and lo holding at most 26 significant bits.
func split(a float64) (hi, lo float64) {
	c := float64(splitter * a)
	hi = c - (c - a)
	lo = a - hi
	return hi, lo
}

func twoProdDekker(a, b float64) (p, e float64) {
	p = float64(a * b)
	ah, al := split(a)
	bh, bl := split(b)
	e = ((float64(ah*bh) - p) + float64(ah*bl) + float64(al*bh)) + float64(al*bl)
	return p, e
}

// MulDD multiplies the double-double (ah, al) by (bh, bl) and returns the
// renormalised double-double product. The al*bl term is dropped.
func MulDD(ah, al, bh, bl float64) (hi, lo float64) {
	p, e := TwoProd(ah, bh)
	e += ah*bl + al*bh
	return FastTwoSum(p, e)
}
