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

// J1f on [0, 2], the J1 coefficients rounded to float32.
const (
	j1r00f float32 = j1r00
	j1r01f float32 = j1r01
	j1r02f float32 = j1r02
	j1r03f float32 = j1r03
	j1s01f float32 = j1s01
	j1s02f float32 = j1s02
	j1s03f float32 = j1s03
	j1s04f float32 = j1s04
	j1s05f float32 = j1s05
)

// Y1f on (0, 2).
var (
	y1uf = [5]float32{float32(y1u[0]), float32(y1u[1]), float32(y1u[2]), float32(y1u[3]), float32(y1u[4])}
	y1vf = [5]float32{float32(y1v[0]), float32(y1v[1]), float32(y1v[2]), float32(y1v[3]), float32(y1v[4])}
)

// J1f returns the order-one Bessel function of the first kind.
// Special cases are as for J1.
func J1f(x float32) float32 {
	bits := math.Float32bits(x)
	negative := bits>>31 != 0
	ix := bits & 0x7fffffff
	if ix >= 0x7f800000 {
		return 1 / (x * x)
	}
	if ix >= 0x40000000 { // |x| >= 2
		return order1(&binary32, float32(math.Abs(float64(x))), false, negative)
	}

	var z float32 = 0.5
	if ix >= 0x39000000 { // |x| >= 2^-13
		z2 := x * x
		r := z2 * (j1r00f + z2*(j1r01f+z2*(j1r02f+z2*j1r03f)))
		s := 1 + z2*(j1s01f+z2*(j1s02f+z2*(j1s03f+z2*(j1s04f+z2*j1s05f))))
		z += r / s
	}
	return z * x
}

// Y1f returns the order-one Bessel function of the second kind.
// Special cases are as for Y1.
func Y1f(x float32) float32 {
	b := fp.Decompose(x)
	switch {
	case b.IsZero():
		return float32(math.Inf(-1))
	case b.Negative() && !b.IsNaN():
		fp.RaiseInvalid()
		return float32(math.NaN())
	case !b.IsFinite():
		return 1 / x
	}

	ix := math.Float32bits(x)
	if ix >= 0x40000000 { // x >= 2
		return order1(&binary32, x, true, false)
	}
	if ix < 0x33000000 { // x < 2^-25
		return -tpif / x
	}
	u, v := &y1uf, &y1vf
	z := x * x
	num := u[0] + z*(u[1]+z*(u[2]+z*(u[3]+z*u[4])))
	den := 1 + z*(v[0]+z*(v[1]+z*(v[2]+z*(v[3]+z*v[4]))))
	return x*(num/den) + tpif*(J1f(x)*log32(x)-1/x)
}
