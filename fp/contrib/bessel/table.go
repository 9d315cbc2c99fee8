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
	"unsafe"

	"github.com/ajroetker/go-libm/fp"
)

// Band is one piece of a piecewise rational approximation, valid from
// Lower (inclusive) up to the Lower of the previous band in its Table.
//
// With z = 1/x², the band evaluates
//
//	R(z)/S(z) = (Num[0] + Num[1]·z + ...) / (1 + Den[0]·z + Den[1]·z² + ...)
type Band[T fp.Floats] struct {
	// Lower is the smallest |x| served by the band.
	Lower T

	// LowerBits is Lower as compared at run time: the high word of the
	// binary64 value, or all bits of the binary32 value.
	LowerBits uint32

	Num []T
	Den []T

	// ErrLog2 bounds log2 of the relative error of the evaluated envelope
	// on this band, rounding included.
	ErrLog2 float64
}

// Ratio returns R(z)/S(z) in Horner form.
func (b *Band[T]) Ratio(z T) T {
	var r T
	for i := len(b.Num) - 1; i >= 0; i-- {
		r = b.Num[i] + z*r
	}
	var s T
	for i := len(b.Den) - 1; i >= 0; i-- {
		s = b.Den[i] + z*s
	}
	return r / (1 + z*s)
}

// Table is an envelope function Lead + R(z)/S(z), divided by x when OverX
// is set. Bands are ordered by decreasing Lower and the last band starts
// at 2; together they cover [2, +Inf) without gaps.
type Table[T fp.Floats] struct {
	Name  string
	Lead  T
	OverX bool
	Bands []Band[T]
}

// Select returns the band serving |x|: the first band whose lower bound
// does not exceed |x|. Inputs below the last bound get the last band.
func (t *Table[T]) Select(x T) *Band[T] {
	ix := magnitudeBits(x)
	for i := range t.Bands[:len(t.Bands)-1] {
		if ix >= t.Bands[i].LowerBits {
			return &t.Bands[i]
		}
	}
	return &t.Bands[len(t.Bands)-1]
}

// Eval returns the envelope at x >= 2.
func (t *Table[T]) Eval(x T) T {
	return t.evalBand(t.Select(x), x)
}

func (t *Table[T]) evalBand(b *Band[T], x T) T {
	v := t.Lead + b.Ratio(1/(x*x))
	if t.OverX {
		v /= x
	}
	return v
}

// magnitudeBits returns the bits used for magnitude comparisons: |x| for
// binary32, the high word of |x| for binary64.
func magnitudeBits[T fp.Floats](x T) uint32 {
	if unsafe.Sizeof(x) == 4 {
		return fp.AbsBits32(float32(x))
	}
	return fp.AbsHighWord(float64(x))
}
