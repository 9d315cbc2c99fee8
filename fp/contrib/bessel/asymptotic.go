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
	"github.com/ajroetker/go-libm/fp/contrib/trig"
)

// precision bundles what the large-argument form needs at one precision.
type precision[T fp.Floats] struct {
	sin, cos, sqrt func(T) T

	pzero, qzero, pone, qone *Table[T]

	// noDouble is the |x| bit pattern from which 2x overflows and the
	// cos 2x rewrite is skipped.
	noDouble uint32

	// huge is the |x| bit pattern from which P = 1 and Q = 0 to working
	// precision, so the envelopes are skipped.
	huge uint32

	invsqrtpi T
}

var binary64 = precision[float64]{
	sin:       trig.Sin,
	cos:       trig.Cos,
	sqrt:      math.Sqrt,
	pzero:     &pzero64,
	qzero:     &qzero64,
	pone:      &pone64,
	qone:      &qone64,
	noDouble:  0x7fe00000, // 2^1023
	huge:      0x48000000, // 2^129
	invsqrtpi: 5.64189583547756279280e-01,
}

var binary32 = precision[float32]{
	sin:       trig.Sinf,
	cos:       trig.Cosf,
	sqrt:      sqrt32,
	pzero:     &pzero32,
	qzero:     &qzero32,
	pone:      &pone32,
	qone:      &qone32,
	noDouble:  0x7f000000, // 2^127
	huge:      0x58800000, // 2^50
	invsqrtpi: 5.64189583547756279280e-01,
}

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// order0 evaluates J0 (second=false) or Y0 (second=true) for x >= 2.
//
// With θ = x - π/4, √2·cos θ = sin x + cos x and √2·sin θ = sin x - cos x.
// Y0 uses the same expressions with cos x negated.
func order0[T fp.Floats](p *precision[T], x T, second bool) T {
	s := p.sin(x)
	c := p.cos(x)
	if second {
		c = -c
	}
	cc := s + c
	if ix := magnitudeBits(x); ix < p.noDouble {
		ss := s - c
		z := -p.cos(2 * x)
		// Whichever of cc and ss cancels is recovered from the other.
		if s*c < 0 {
			cc = z / ss
		} else {
			ss = z / cc
		}
		if ix < p.huge {
			if second {
				ss = -ss
			}
			cc = p.pzero.Eval(x)*cc - p.qzero.Eval(x)*ss
		}
	}
	return p.invsqrtpi * cc / p.sqrt(x)
}

// order1 evaluates J1 (second=false) or Y1 (second=true) for |x| >= 2,
// x given as its magnitude and negate set for J1 of a negative argument.
//
// With θ = x - 3π/4, √2·cos θ = sin x - cos x and √2·sin θ = -(sin x + cos x).
// Y1 uses the same expressions with sin x negated.
func order1[T fp.Floats](p *precision[T], x T, second, negate bool) T {
	s := p.sin(x)
	if second {
		s = -s
	}
	c := p.cos(x)
	cc := s - c
	if ix := magnitudeBits(x); ix < p.noDouble {
		ss := -s - c
		z := p.cos(2 * x)
		if s*c > 0 {
			cc = z / ss
		} else {
			ss = z / cc
		}
		if ix < p.huge {
			if second {
				ss = -ss
			}
			cc = p.pone.Eval(x)*cc - p.qone.Eval(x)*ss
		}
	}
	if negate {
		cc = -cc
	}
	return p.invsqrtpi * cc / p.sqrt(x)
}
