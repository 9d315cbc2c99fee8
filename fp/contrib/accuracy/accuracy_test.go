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
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/go-libm/fp"
)

func TestULP(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		format fp.Format
		want   float64
	}{
		{"one binary64", 1, fp.Binary64, 0x1p-52},
		{"one binary32", 1, fp.Binary32, 0x1p-23},
		{"just below one binary32", 0.75, fp.Binary32, 0x1p-24},
		{"negative", -1024, fp.Binary64, 0x1p-42},
		{"zero binary32", 0, fp.Binary32, 0x1p-149},
		{"zero binary64", 0, fp.Binary64, 0x1p-1074},
		{"subnormal binary32", 0x1p-140, fp.Binary32, 0x1p-149},
		{"binary16", 1, fp.Binary16, 0x1p-10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ULP(tt.x, tt.format); got != tt.want {
				t.Errorf("ULP(%v, %s) = %v, want %v", tt.x, tt.format.Name, got, tt.want)
			}
		})
	}
}

func TestULPError(t *testing.T) {
	if e := ULPError(1+0x1p-52, 1, fp.Binary64); e != 1 {
		t.Errorf("one ulp above 1: got %v", e)
	}
	if e := ULPError(float64(float32(0.1)), 0.1, fp.Binary32); e > 0.5 {
		t.Errorf("float32 rounding of 0.1: %v ulp, want <= 0.5", e)
	}
	if e := ULPError(math.NaN(), 1, fp.Binary64); !math.IsInf(e, 1) {
		t.Errorf("NaN vs 1: got %v, want +Inf", e)
	}
	if e := ULPError(math.Inf(1), math.Inf(1), fp.Binary64); e != 0 {
		t.Errorf("Inf vs Inf: got %v, want 0", e)
	}
}

func TestDistance(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name string
		a, b float64
		want uint64
	}{
		{"equal", 1.5, 1.5, 0},
		{"signed zeros", 0, negZero, 0},
		{"adjacent", 1, math.Nextafter(1, 2), 1},
		{"across zero", -0x1p-1074, 0x1p-1074, 2},
		{"NaN pair", math.NaN(), math.NaN(), 0},
		{"NaN vs number", math.NaN(), 1, math.MaxUint64},
		{"max to inf", math.MaxFloat64, math.Inf(1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if got := Distance(float32(1), math.Nextafter32(1, 0)); got != 1 {
		t.Errorf("Distance(float32) = %d, want 1", got)
	}
}

func TestDefaultBudgets(t *testing.T) {
	r := Default()
	for _, fn := range []string{"sin", "cos", "tan", "j0", "j1", "y0", "y1"} {
		for _, prec := range []string{"binary32", "binary64"} {
			b, ok := r.Lookup(fn, prec)
			if !ok {
				t.Errorf("no budget for %s/%s", fn, prec)
				continue
			}
			if b.MaxULP <= 0 {
				t.Errorf("%s/%s: max_ulp = %v", fn, prec, b.MaxULP)
			}
			if b.Format.Name != prec {
				t.Errorf("%s/%s: format %q", fn, prec, b.Format.Name)
			}
		}
	}
	if _, ok := r.Lookup("erf", "binary64"); ok {
		t.Error("Lookup(erf) succeeded")
	}
	if n := len(r.Budgets()); n != 14 {
		t.Errorf("len(Budgets()) = %d, want 14", n)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgets.yaml")
	override := "budgets:\n  - {function: sin, precision: binary64, max_ulp: 0.5}\n  - {function: sin, precision: binary16, max_ulp: 1}\n"
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := r.MustLookup("sin", "binary64"); b.MaxULP != 0.5 {
		t.Errorf("sin/binary64 max_ulp = %v, want 0.5", b.MaxULP)
	}
	if b := r.MustLookup("cos", "binary64"); b.MaxULP != 1 {
		t.Errorf("cos/binary64 max_ulp = %v, want 1 (embedded)", b.MaxULP)
	}
	if b := r.MustLookup("sin", "binary16"); b.Format != fp.Binary16 {
		t.Errorf("sin/binary16 format = %+v", b.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown precision", "budgets:\n  - {function: sin, precision: decimal64, max_ulp: 1}\n", "unknown precision"},
		{"missing function", "budgets:\n  - {precision: binary32, max_ulp: 1}\n", "missing function"},
		{"negative", "budgets:\n  - {function: sin, precision: binary32, max_ulp: -1}\n", "negative tolerance"},
		{"malformed", "budgets: [", "parsing budget file"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing file) succeeded")
	}
}

func TestBudgetCheck(t *testing.T) {
	b := Budget{Function: "j0", Precision: "binary64", MaxULP: 2, AbsFloor: 1e-15, Format: fp.Binary64}
	tests := []struct {
		name      string
		got, want float64
		ok        bool
	}{
		{"exact", 0.5, 0.5, true},
		{"two ulp", 1024 + 0x1p-41, 1024, true},
		{"three ulp", 1024 + 3*0x1p-42, 1024, false},
		{"near zero within floor", 1e-16, 3e-16, true},
		{"NaN pair", math.NaN(), math.NaN(), true},
		{"NaN vs number", math.NaN(), 0, false},
		{"inf mismatch", math.Inf(1), math.MaxFloat64, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Check(tt.got, tt.want)
			if (err == nil) != tt.ok {
				t.Errorf("Check(%v, %v) = %v, want ok=%v", tt.got, tt.want, err, tt.ok)
			}
		})
	}
}

func TestReference(t *testing.T) {
	for _, fn := range []string{"j0", "j1", "y0", "y1"} {
		vs, err := Reference(fn)
		if err != nil {
			t.Fatalf("Reference(%s): %v", fn, err)
		}
		if len(vs) != 16 {
			t.Errorf("Reference(%s): %d vectors, want 16", fn, len(vs))
		}
	}

	vs, err := Reference("j0")
	if err != nil {
		t.Fatal(err)
	}
	if vs[2].X != 1 || vs[2].Want != 0.76519768655796661 {
		t.Errorf("j0 vector 2 = %+v", vs[2])
	}

	if _, err := Reference("gamma"); err == nil {
		t.Error("Reference(gamma) succeeded")
	}
}

func TestWriteReadVectors(t *testing.T) {
	in := []Vector{{"sin", 1e22, -0.8522008497671888}, {"j0", 0, 1}}
	var buf bytes.Buffer
	if err := WriteVectors(&buf, in); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "function,x,want\n") {
		t.Errorf("missing header: %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "v.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := LoadVectors(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("LoadVectors = %+v, want %+v", out, in)
	}
}
