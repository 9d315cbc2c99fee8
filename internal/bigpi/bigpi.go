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

// Package bigpi computes π and the binary expansion of 2/π to arbitrary
// precision with Machin's formula. It backs the table generator and the
// reference checks in tests; the libm packages never call it at run time.
package bigpi

import (
	"math/big"
)

// guardBits are extra low-order bits carried through the fixed-point series
// and discarded at the end.
const guardBits = 64

// atanInv returns atan(1/n)·one in fixed point.
func atanInv(n int64, one *big.Int) *big.Int {
	x := new(big.Int).Quo(one, big.NewInt(n))
	n2 := big.NewInt(n * n)
	sum := new(big.Int).Set(x)
	term := new(big.Int)
	for k := int64(1); x.Sign() != 0; k++ {
		x.Quo(x, n2)
		term.Quo(x, big.NewInt(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// fixed returns π·2^bits, with the guard bits still attached
// (π·2^(bits+guardBits)).
func fixed(bits uint) *big.Int {
	one := new(big.Int).Lsh(big.NewInt(1), bits+guardBits)
	pi := new(big.Int).Mul(big.NewInt(16), atanInv(5, one))
	return pi.Sub(pi, new(big.Int).Mul(big.NewInt(4), atanInv(239, one)))
}

// Pi returns π rounded to prec bits.
func Pi(prec uint) *big.Float {
	mant := new(big.Float).SetPrec(prec).SetInt(fixed(prec + 8))
	return mant.SetMantExp(mant, -int(prec+8+guardBits))
}

// TwoOverPiWords returns the first n 64-bit words of the fractional part of
// 2/π, most significant first: 2/π = Σ w[i]·2^(-64(i+1)).
func TwoOverPiWords(n int) []uint64 {
	bits := uint(64 * n)
	pi := fixed(bits) // π·2^(bits+guardBits)
	num := new(big.Int).Lsh(big.NewInt(2), 2*bits+guardBits)
	tp := new(big.Int).Quo(num, pi) // 2/π·2^bits

	words := make([]uint64, n)
	mask := new(big.Int).SetUint64(^uint64(0))
	w := new(big.Int)
	for i := range words {
		w.Rsh(tp, bits-uint(64*(i+1)))
		words[i] = w.And(w, mask).Uint64()
	}
	return words
}
