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

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

func exactProduct(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(256).SetFloat64(a)
	y := new(big.Float).SetPrec(256).SetFloat64(b)
	return x.Mul(x, y)
}

func TestTwoProdExact(t *testing.T) {
	for _, level := range []DispatchLevel{DispatchDekker, DispatchFMA} {
		t.Run(level.String(), func(t *testing.T) {
			defer setLevel(level)()

			rng := rand.New(rand.NewPCG(7, 8))
			for i := 0; i < 5000; i++ {
				a := math.Ldexp(rng.Float64()+0.5, rng.IntN(200)-100)
				b := math.Ldexp(rng.Float64()+0.5, rng.IntN(200)-100)
				if i%2 == 1 {
					b = -b
				}
				p, e := TwoProd(a, b)
				got := new(big.Float).SetPrec(256).SetFloat64(p)
				got.Add(got, new(big.Float).SetFloat64(e))
				if got.Cmp(exactProduct(a, b)) != 0 {
					t.Fatalf("TwoProd(%v, %v) = %v + %v is not exact", a, b, p, e)
				}
			}
		})
	}
}

func TestTwoSumExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for i := 0; i < 5000; i++ {
		a := math.Ldexp(rng.Float64(), rng.IntN(120)-60)
		b := -math.Ldexp(rng.Float64(), rng.IntN(120)-60)
		s, e := TwoSum(a, b)
		got := new(big.Float).SetPrec(256).SetFloat64(s)
		got.Add(got, new(big.Float).SetFloat64(e))
		want := new(big.Float).SetPrec(256).SetFloat64(a)
		want.Add(want, new(big.Float).SetFloat64(b))
		if got.Cmp(want) != 0 {
			t.Fatalf("TwoSum(%v, %v) = %v + %v is not exact", a, b, s, e)
		}
	}
}

func TestDispatchLevelString(t *testing.T) {
	if CurrentLevel().String() == "unknown" {
		t.Errorf("CurrentLevel() = %d has no name", CurrentLevel())
	}
	if got := DispatchLevel(42).String(); got != "unknown" {
		t.Errorf("DispatchLevel(42).String() = %q, want unknown", got)
	}
}
