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

const tpif = float32(tpi)

// J0f on [0, 2].
const (
	j0r02f float32 = 1.5625000000e-02
	j0r03f float32 = -1.8997929874e-04
	j0r04f float32 = 1.8295404516e-06
	j0r05f float32 = -4.6183270541e-09
	j0s01f float32 = 1.5619102865e-02
	j0s02f float32 = 1.1692678527e-04
	j0s03f float32 = 5.1354652442e-07
	j0s04f float32 = 1.1661400734e-09
)

// Y0f on (0, 2).
var (
	y0uf = [7]float32{
		-7.3804296553e-02,
		1.7666645348e-01,
		-1.3818567619e-02,
		3.4745343146e-04,
		-3.8140706238e-06,
		1.9559013964e-08,
		-3.9820518410e-11,
	}
	y0vf = [4]float32{
		1.2730483897e-02,
		7.6006865129e-05,
		2.5915085189e-07,
		4.4111031494e-10,
	}
)

func log32(x float32) float32 { return float32(math.Log(float64(x))) }

// J0f returns the order-zero Bessel function of the first kind.
// Special cases are as for J0.
func J0f(x float32) float32 {
	ix := fp.AbsBits32(x)
	if ix >= 0x7f800000 {
		return 1 / (x * x)
	}
	if x < 0 {
		x = -x
	}

	if ix >= 0x40000000 { // |x| >= 2
		return order0(&binary32, x, false)
	}
	if ix >= 0x3a000000 { // |x| >= 2^-11
		z := x * x
		r := z * (j0r02f + z*(j0r03f+z*(j0r04f+z*j0r05f)))
		s := 1 + z*(j0s01f+z*(j0s02f+z*(j0s03f+z*j0s04f)))
		return (1+x/2)*(1-x/2) + z*(r/s)
	}
	if ix >= 0x21800000 { // |x| >= 2^-60
		x = 0.25 * x * x
	}
	return 1 - x
}

// Y0f returns the order-zero Bessel function of the second kind.
// Special cases are as for Y0.
func Y0f(x float32) float32 {
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
		return order0(&binary32, x, true)
	}
	if ix >= 0x39000000 { // x >= 2^-13
		u, v := &y0uf, &y0vf
		z := x * x
		num := u[0] + z*(u[1]+z*(u[2]+z*(u[3]+z*(u[4]+z*(u[5]+z*u[6])))))
		den := 1 + z*(v[0]+z*(v[1]+z*(v[2]+z*v[3])))
		return num/den + tpif*(J0f(x)*log32(x))
	}
	return y0uf[0] + tpif*log32(x)
}
