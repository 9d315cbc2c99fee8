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

import "runtime"

// Go does not expose the floating-point status register, so these helpers
// cannot make flags observable. They keep the C library's discarded
// computations in place (0/0 for invalid, x+2^120 for inexact, x/2^120 for
// underflow) so hardware that records sticky flags sees the same sequence.
// None of them affect returned values; callers may drop them freely.

// ForceEval evaluates v and discards it.
func ForceEval[T Floats](v T) {
	runtime.KeepAlive(v)
}

// RaiseInvalid triggers the IEEE-754 invalid-operation exception.
func RaiseInvalid() {
	zero := 0.0
	ForceEval(zero / zero)
}

// RaiseInexact32 triggers inexact (normal x) or underflow (subnormal x) for a
// binary32 result that is returned unchanged.
func RaiseInexact32(x float32) {
	const x1p120 = float32(1 << 120)
	if AbsBits32(x) < 0x00800000 {
		ForceEval(x / x1p120)
		return
	}
	ForceEval(x + x1p120)
}

// RaiseInexact64 is the binary64 counterpart of RaiseInexact32.
func RaiseInexact64(x float64) {
	const x1p120 = float64(1 << 120)
	if AbsHighWord(x) < 0x00100000 {
		ForceEval(x / x1p120)
		return
	}
	ForceEval(x + x1p120)
}
