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

package accuracy

import (
	"math"

	"github.com/ajroetker/go-libm/fp"
)

// ULP returns the spacing of format f at the magnitude of x, which is given
// in binary64. Below the normal range the spacing is that of subnormals.
func ULP(x float64, f fp.Format) float64 {
	minExp := 1 - f.Bias
	e := fp.Ilogb64(x)
	if x == 0 || e < minExp {
		e = minExp
	}
	return math.Ldexp(1, e-int(f.MantissaBits))
}

// ULPError returns |got-want| in units of the spacing of f at want. want is
// usually more precise than f; got is typically a result of format f
// widened to binary64.
func ULPError(got, want float64, f fp.Format) float64 {
	if got == want {
		return 0
	}
	if math.IsNaN(got) || math.IsNaN(want) || math.IsInf(got, 0) || math.IsInf(want, 0) {
		return math.Inf(1)
	}
	return math.Abs(got-want) / ULP(want, f)
}

// Distance returns the number of representable values of T between a and
// b; 0 means bit-identical or both zero. NaN is at maximal distance from
// everything except another NaN.
func Distance[T fp.Floats](a, b T) uint64 {
	da, db := fp.Decompose(a), fp.Decompose(b)
	if da.IsNaN() || db.IsNaN() {
		if da.IsNaN() && db.IsNaN() {
			return 0
		}
		return math.MaxUint64
	}
	d := ordinal(da) - ordinal(db)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// ordinal maps a non-NaN value to an integer that is monotone in the value,
// with ±0 both at 0.
func ordinal(b fp.FloatBits) int64 {
	mag := int64(b.Abs().Raw())
	if b.Negative() {
		return -mag
	}
	return mag
}
