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

package bessel

import (
	"math"

	"github.com/ajroetker/go-libm/fp"
)

// J1 on [0, 2]: x/2 + x·z·R0(z)/S0(z), z = x².
const (
	j1r00 = -6.25000000000000000000e-02
	j1r01 = 1.40705666955189706048e-03
	j1r02 = -1.59955631084035597520e-05
	j1r03 = 4.96727999609584448412e-08
	j1s01 = 1.91537599538363460805e-02
	j1s02 = 1.85946785588630915560e-04
	j1s03 = 1.17718464042623683263e-06
	j1s04 = 5.04636257076217042715e-09
	j1s05 = 1.23542274426137913908e-11
)

// Y1 on (0, 2): x·U(z)/V(z) + (2/π)·(J1(x)·log(x) - 1/x).
var (
	y1u = [5]float64{
		-1.96057090646238940668e-01,
		5.04438716639811282616e-02,
		-1.91256895875763547298e-03,
		2.35252600561610495928e-05,
		-9.19099158039878874504e-08,
	}
	y1v = [5]float64{
		1.99167318236649903973e-02,
		2.02552581025135171496e-04,
		1.35608801097516229404e-06,
		6.22741452364621501295e-09,
		1.66559246207992079114e-11,
	}
)

// J1 returns the order-one Bessel function of the first kind.
//
// Special cases are:
//
//	J1(±Inf) = 0
//	J1(±0) = ±0
//	J1(NaN) = NaN
func J1(x float64) float64 {
	hx := fp.HighWord(x)
	negative := hx>>31 != 0
	ix := hx & 0x7fffffff
	if ix >= 0x7ff00000 {
		return 1 / (x * x)
	}
	if ix >= 0x40000000 { // |x| >= 2
		return order1(&binary64, math.Abs(x), false, negative)
	}

	var z float64
	if ix >= 0x38000000 { // |x| >= 2^-127
		z = x * x
		r := z * (j1r00 + z*(j1r01+z*(j1r02+z*j1r03)))
		s := 1 + z*(j1s01+z*(j1s02+z*(j1s03+z*(j1s04+z*j1s05))))
		z = r / s
	} else {
		// x·x would underflow; (0.5+x)·x still raises inexact.
		z = x
	}
	return (0.5 + z) * x
}

// Y1 returns the order-one Bessel function of the second kind.
//
// Special cases are:
//
//	Y1(+Inf) = 0
//	Y1(±0) = -Inf
//	Y1(x < 0) = NaN
//	Y1(NaN) = NaN
func Y1(x float64) float64 {
	b := fp.Decompose(x)
	switch {
	case b.IsZero():
		return math.Inf(-1)
	case b.Negative() && !b.IsNaN():
		fp.RaiseInvalid()
		return math.NaN()
	case !b.IsFinite():
		return 1 / x
	}

	ix := fp.HighWord(x)
	if ix >= 0x40000000 { // x >= 2
		return order1(&binary64, x, true, false)
	}
	if ix < 0x3c900000 { // x < 2^-54
		return -tpi / x
	}
	u, v := &y1u, &y1v
	z := x * x
	num := u[0] + z*(u[1]+z*(u[2]+z*(u[3]+z*u[4])))
	den := 1 + z*(v[0]+z*(v[1]+z*(v[2]+z*(v[3]+z*v[4]))))
	return x*(num/den) + tpi*(J1(x)*math.Log(x)-1/x)
}
