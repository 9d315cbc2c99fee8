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

// tpi is 2/π.
const tpi = 6.36619772367581382433e-01

// J0 on [0, 2]: 1 - x²/4 + x²·R0(x²)/S0(x²).
const (
	j0r02 = 1.56249999999999947958e-02
	j0r03 = -1.89979294238854721751e-04
	j0r04 = 1.82954049532700665670e-06
	j0r05 = -4.61832688532103189199e-09
	j0s01 = 1.56191029464890010492e-02
	j0s02 = 1.16926784663337450260e-04
	j0s03 = 5.13546550207318111446e-07
	j0s04 = 1.16614003333790000205e-09
)

// Y0 on (0, 2): U(x²)/V(x²) + (2/π)·J0(x)·log(x).
var (
	y0u = [7]float64{
		-7.38042951086872317523e-02,
		1.76666452509181115538e-01,
		-1.38185671945596898896e-02,
		3.47453432093683650238e-04,
		-3.81407053724364161125e-06,
		1.95590137035022920206e-08,
		-3.98205194132103398453e-11,
	}
	y0v = [4]float64{
		1.27304834834123699328e-02,
		7.60068627350353253702e-05,
		2.59150851840457805467e-07,
		4.41110311332675467403e-10,
	}
)

// J0 returns the order-zero Bessel function of the first kind.
//
// Special cases are:
//
//	J0(±Inf) = 0
//	J0(0) = 1
//	J0(NaN) = NaN
func J0(x float64) float64 {
	ix := fp.AbsHighWord(x)
	if ix >= 0x7ff00000 {
		return 1 / (x * x)
	}
	x = math.Abs(x)

	if ix >= 0x40000000 { // |x| >= 2
		return order0(&binary64, x, false)
	}
	if ix >= 0x3f200000 { // |x| >= 2^-13
		z := x * x
		r := z * (j0r02 + z*(j0r03+z*(j0r04+z*j0r05)))
		s := 1 + z*(j0s01+z*(j0s02+z*(j0s03+z*j0s04)))
		return (1+x/2)*(1-x/2) + z*(r/s)
	}
	if ix >= 0x38000000 { // |x| >= 2^-127
		x = 0.25 * x * x
	}
	return 1 - x
}

// Y0 returns the order-zero Bessel function of the second kind.
//
// Special cases are:
//
//	Y0(+Inf) = 0
//	Y0(±0) = -Inf
//	Y0(x < 0) = NaN
//	Y0(NaN) = NaN
func Y0(x float64) float64 {
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
		return order0(&binary64, x, true)
	}
	if ix >= 0x3e400000 { // x >= 2^-27
		u, v := &y0u, &y0v
		z := x * x
		num := u[0] + z*(u[1]+z*(u[2]+z*(u[3]+z*(u[4]+z*(u[5]+z*u[6])))))
		den := 1 + z*(v[0]+z*(v[1]+z*(v[2]+z*v[3])))
		return num/den + tpi*(J0(x)*math.Log(x))
	}
	return y0u[0] + tpi*math.Log(x)
}
