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

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-libm/internal/bigpi"
)

const refPrec = 2400

var halfPi = func() *big.Float {
	p := bigpi.Pi(refPrec)
	return p.Quo(p, big.NewFloat(2).SetPrec(refPrec))
}()

// exactReduction returns n and r with x = n·π/2 + r, |r| <= π/4, computed
// with 2400-bit arithmetic.
func exactReduction(x float64) (n *big.Int, r *big.Float) {
	ax := new(big.Float).SetPrec(refPrec).SetFloat64(math.Abs(x))
	t := new(big.Float).SetPrec(refPrec).Quo(ax, halfPi)
	t.Add(t, big.NewFloat(0.5))
	n, _ = t.Int(nil)
	nf := new(big.Float).SetPrec(refPrec).SetInt(n)
	r = new(big.Float).SetPrec(refPrec).Mul(nf, halfPi)
	r.Sub(ax, r)
	if x < 0 {
		n.Neg(n)
		r.Neg(r)
	}
	return n, r
}

// relErr returns |got-want|/|want| for a double-double got.
func relErr(hi, lo float64, want *big.Float) float64 {
	got := new(big.Float).SetPrec(refPrec).SetFloat64(hi)
	got.Add(got, new(big.Float).SetFloat64(lo))
	got.Sub(got, want)
	got.Quo(got, want)
	e, _ := got.Float64()
	return math.Abs(e)
}

func checkReduction(t *testing.T, name string, x float64, r Reduced, tol float64) {
	t.Helper()
	n, want := exactReduction(x)
	wantQ := new(big.Int).Mod(n, big.NewInt(4)).Int64()
	if int64(r.Quadrant&3) != wantQ {
		t.Errorf("%s(%v): quadrant %d (mod 4 = %d), want %d", name, x, r.Quadrant, r.Quadrant&3, wantQ)
		return
	}
	if e := relErr(r.Hi, r.Lo, want); e > tol {
		t.Errorf("%s(%v): remainder %v + %v, want %v (rel err %g > %g)",
			name, x, r.Hi, r.Lo, want.Text('g', 25), e, tol)
	}
	if math.Abs(r.Hi) > math.Pi/4+1e-12 {
		t.Errorf("%s(%v): |Hi| = %v exceeds π/4", name, x, math.Abs(r.Hi))
	}
}

func TestTwoOverPiTable(t *testing.T) {
	if twoOverPi[0] != 0 {
		t.Fatalf("integer word = %#x, want 0", twoOverPi[0])
	}
	words := bigpi.TwoOverPiWords(len(twoOverPi) - 1)
	for i, w := range words {
		if twoOverPi[i+1] != w {
			t.Errorf("twoOverPi[%d] = %#016x, want %#016x", i+1, twoOverPi[i+1], w)
		}
	}
}

func TestRemPio2Breakpoints(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantQ int
	}{
		{"quarter", 0.5, 0},
		{"pi/4 below", 0.785, 0},
		{"one", 1, 1},
		{"two", 2, 1},
		{"3pi/4 above", 2.4, 2},
		{"three", 3, 2},
		{"four", 4, 3},
		{"five", 5, 3},
		{"six", 6, 4},
		{"seven", 7, 4},
		{"neg two", -2, -1},
		{"neg four", -4, -3},
		{"neg seven", -7, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RemPio2(tt.x)
			if r.Quadrant != tt.wantQ {
				t.Errorf("RemPio2(%v).Quadrant = %d, want %d", tt.x, r.Quadrant, tt.wantQ)
			}
			checkReduction(t, "RemPio2", tt.x, r, 0x1p-55)
		})
	}
}

// Inputs rounded from k·π/2 lose most of their bits to cancellation and
// exercise the second and third Cody–Waite stages.
func TestRemPio2NearMultiples(t *testing.T) {
	for k := 1; k <= 2000; k++ {
		x := float64(k) * math.Pi / 2
		for _, v := range []float64{x, math.Nextafter(x, 0), math.Nextafter(x, math.Inf(1)), -x} {
			checkReduction(t, "RemPio2", v, RemPio2(v), 0x1p-55)
		}
	}
	for _, hw := range []uint64{0x3ff921fb54442d18, 0x400921fb54442d18, 0x4012d97c7f3321d2, 0x401921fb54442d18} {
		x := math.Float64frombits(hw)
		checkReduction(t, "RemPio2", x, RemPio2(x), 0x1p-55)
	}
}

func TestRemPio2Medium(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 5000 {
		x := (rng.Float64()*2 - 1) * 1.6e6
		checkReduction(t, "RemPio2", x, RemPio2(x), 0x1p-55)
	}
}

func TestLarge(t *testing.T) {
	tests := []float64{
		1e22,
		math.MaxFloat64,
		-math.MaxFloat64,
		math.Ldexp(6381956970095103, 797), // closest binary64 approach to a multiple of π/2
		math.Ldexp(1, 1000),
		math.Ldexp(1, 62),
		1.7e6,
		-3.0e300,
	}
	for _, x := range tests {
		checkReduction(t, "Large", x, Large(x), 0x1p-62)
	}

	rng := rand.New(rand.NewPCG(3, 4))
	for range 2000 {
		x := math.Ldexp(1+rng.Float64(), rng.IntN(1024))
		if rng.IntN(2) == 0 {
			x = -x
		}
		checkReduction(t, "Large", x, Large(x), 0x1p-62)
	}
}

func TestLarge1e22(t *testing.T) {
	r := Large(1e22)
	if r.Quadrant&3 != 3 {
		t.Errorf("Large(1e22).Quadrant = %d, want 3", r.Quadrant)
	}
	if math.Abs(r.Hi-0.5506189342358097) > 1e-16 {
		t.Errorf("Large(1e22).Hi = %v, want 0.5506189342358097", r.Hi)
	}
}

// Large must agree with the medium path wherever both apply.
func TestLargeMatchesMedium(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 2000 {
		x := rng.Float64() * 1e6
		a, b := Large(x), RemPio2(x)
		if math.Abs(b.Hi) > 0.78 {
			continue
		}
		if a.Quadrant&3 != b.Quadrant&3 {
			t.Fatalf("x=%v: Large quadrant %d, RemPio2 quadrant %d", x, a.Quadrant&3, b.Quadrant&3)
		}
		if math.Abs((a.Hi+a.Lo)-(b.Hi+b.Lo)) > 1e-15*math.Abs(b.Hi) {
			t.Errorf("x=%v: Large %v, RemPio2 %v", x, a.Hi+a.Lo, b.Hi+b.Lo)
		}
	}
}

func TestRemPio2Special(t *testing.T) {
	for _, x := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		r := RemPio2(x)
		if r.Quadrant != 0 || !math.IsNaN(r.Hi) {
			t.Errorf("RemPio2(%v) = %+v, want quadrant 0 and NaN", x, r)
		}
		if l := Large(x); !math.IsNaN(l.Hi) {
			t.Errorf("Large(%v).Hi = %v, want NaN", x, l.Hi)
		}
	}
	negZero := math.Copysign(0, -1)
	if r := RemPio2(negZero); r.Quadrant != 0 || !math.Signbit(r.Hi) {
		t.Errorf("RemPio2(-0) = %+v, want -0 in quadrant 0", r)
	}
	if r := RemPio2(0x1p-1074); r.Hi != 0x1p-1074 {
		t.Errorf("RemPio2(min subnormal).Hi = %v", r.Hi)
	}
}

func TestRemPio2f(t *testing.T) {
	check := func(x float32) {
		t.Helper()
		r := RemPio2f(x)
		n, want := exactReduction(float64(x))
		wantQ := new(big.Int).Mod(n, big.NewInt(4)).Int64()
		if int64(r.Quadrant&3) != wantQ {
			t.Errorf("RemPio2f(%v): quadrant %d, want %d mod 4", x, r.Quadrant, wantQ)
			return
		}
		w, _ := want.Float64()
		if d := math.Abs(r.Y - w); d > 0x1p-50+0x1p-40*math.Abs(w) {
			t.Errorf("RemPio2f(%v).Y = %v, want %v", x, r.Y, w)
		}
	}

	for _, x := range []float32{0.5, 1, 2, 3, 4, 5, 6, 7, 100, -100, 1e6, 3.4e38, -3.4e38, 1e10, float32(math.Pi / 2)} {
		check(x)
	}
	rng := rand.New(rand.NewPCG(7, 8))
	for range 5000 {
		check((rng.Float32()*2 - 1) * 1e6)
	}
	for range 500 {
		check(float32(math.Ldexp(1+rng.Float64(), 29+rng.IntN(98))))
	}

	for _, x := range []float32{float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN())} {
		if r := RemPio2f(x); r.Quadrant != 0 || !math.IsNaN(r.Y) {
			t.Errorf("RemPio2f(%v) = %+v, want quadrant 0 and NaN", x, r)
		}
	}
}

func BenchmarkRemPio2(b *testing.B) {
	b.ReportAllocs()
	for _, tc := range []struct {
		name string
		x    float64
	}{
		{"Small", 2.0},
		{"Medium", 12345.678},
		{"Large", 1e22},
	} {
		b.Run(tc.name, func(b *testing.B) {
			var sink Reduced
			for i := 0; i < b.N; i++ {
				sink = RemPio2(tc.x)
			}
			_ = sink
		})
	}
}
