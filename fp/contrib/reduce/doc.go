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

// Package reduce maps arguments of the trigonometric functions onto
// [-π/4, π/4] together with the quadrant k, x = k·π/2 + r.
//
// Three regimes are used, by magnitude:
//
//   - |x| up to 9π/4 (binary64): subtract a small multiple of π/2 split
//     into a 33-bit head and a 53-bit tail.
//   - medium |x| (below 2^20·π/2 for binary64, 2^28·π/2 for binary32):
//     Cody–Waite reduction with up to three split constants.
//   - everything else: Payne–Hanek reduction against a 1664-bit table of
//     2/π, see Large.
//
// The reducers never fail. Inf and NaN reduce to (0, NaN).
package reduce

//go:generate go run ../../../cmd/pio2gen -output pio2_table.go -words 26

// Reduced is a binary64 reduced argument: x = Quadrant·π/2 + Hi + Lo,
// |Hi+Lo| <= π/4 (approximately; the medium path may exceed it by an ulp).
// Only Quadrant mod 4 is meaningful; use Quadrant&3.
type Reduced struct {
	Quadrant int
	Hi, Lo   float64
}

// Reduced32 is the reduced argument of a binary32 input. The remainder is
// carried in binary64, which leaves ample room beyond the 24 bits needed by
// the binary32 kernels.
type Reduced32 struct {
	Quadrant int
	Y        float64
}
