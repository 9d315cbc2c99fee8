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

import "github.com/ajroetker/go-libm/fp"

// Binary32 reduction constants: pio2f1 is the first 25 bits of π/2, so
// 25+53 bits of π/2 are available to the medium path.
const (
	pio4f   = 0x1.921fb6p-1
	pio2f1  = 1.57079631090164184570e+00
	pio2f1t = 1.58932547735281966916e-08
)

// RemPio2f reduces a binary32 argument. The remainder is returned in
// binary64 and is accurate well beyond binary32 precision.
func RemPio2f(x float32) Reduced32 {
	ix := fp.AbsBits32(x)
	switch {
	case ix <= 0x3f490fda: // |x| ~<= π/4
		return Reduced32{Y: float64(x)}

	case ix < 0x4dc90fdb: // |x| ~< 2^28·π/2
		xd := float64(x)
		fn := float64(xd*invpio2) + toint - toint
		n := int(fn)
		y := xd - fn*pio2f1 - float64(fn*pio2f1t)
		// Under directed rounding fn can be one off.
		if y < -pio4f {
			n--
			fn--
			y = xd - fn*pio2f1 - float64(fn*pio2f1t)
		} else if y > pio4f {
			n++
			fn++
			y = xd - fn*pio2f1 - float64(fn*pio2f1t)
		}
		return Reduced32{Quadrant: n, Y: y}

	case ix >= 0x7f800000: // Inf or NaN
		return Reduced32{Y: float64(x - x)}
	}

	r := Large(float64(x))
	return Reduced32{Quadrant: r.Quadrant, Y: r.Hi}
}
