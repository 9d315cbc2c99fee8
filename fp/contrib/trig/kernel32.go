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

// Minimax coefficients for the float32 kernels on [-π/4, π/4], evaluated in
// float64. |error| < 2^-37.5 (sin), 2^-34.5 (cos), 2^-26 relative (tan).
const (
	s1f = -0.16666666641626524
	s2f = 0.008333329385889463
	s3f = -0.00019839334836096632
	s4f = 2.718311493989822e-06

	c0f = -0.499999997251031
	c1f = 0.04166662332373906
	c2f = -0.001388676377460993
	c3f = 2.439044879627741e-05

	t0f = 0.3333313950307914
	t1f = 0.13339200271297674
	t2f = 0.05338123784456704
	t3f = 0.024528318116654728
	t4f = 0.002974357433599673
	t5f = 0.009465647849436732
)

// kernelSin32 is sin(x) for |x| <= π/4, x(1 + z·S(z)) with z = x².
func kernelSin32(x float64) float32 {
	z := x * x
	w := z * z
	r := s3f + z*s4f
	s := z * x
	return float32((x + s*(s1f+z*s2f)) + s*w*r)
}

// kernelCos32 is cos(x) for |x| <= π/4.
func kernelCos32(x float64) float32 {
	z := x * x
	w := z * z
	r := c2f + z*c3f
	return float32(((1 + z*c0f) + w*c1f) + (w*z)*r)
}

// kernelTan32 is tan(x) for |x| <= π/4, or -1/tan(x) when odd is set.
func kernelTan32(x float64, odd bool) float32 {
	z := x * x
	// Split into independent chains: r = T4+z·T5, t = T2+z·T3.
	r := t4f + z*t5f
	t := t2f + z*t3f
	w := z * z
	s := z * x
	u := t0f + z*t1f
	r = (x + s*u) + (s*w)*(t+w*r)
	if odd {
		return float32(-1 / r)
	}
	return float32(r)
}
