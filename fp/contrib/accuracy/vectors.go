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
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

//go:embed reference.csv
var referenceCSV []byte

// Vector is one reference value: Function(X) = Want, correct to at least
// 17 significant digits.
type Vector struct {
	Function string  `csv:"function"`
	X        float64 `csv:"x"`
	Want     float64 `csv:"want"`
}

// ReadVectors decodes vectors from CSV with a function,x,want header.
func ReadVectors(r io.Reader) ([]Vector, error) {
	var vs []Vector
	if err := gocsv.Unmarshal(r, &vs); err != nil {
		return nil, fmt.Errorf("decoding vectors: %w", err)
	}
	return vs, nil
}

// LoadVectors reads vectors from a CSV file.
func LoadVectors(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening vectors: %w", err)
	}
	defer f.Close()
	return ReadVectors(f)
}

// WriteVectors encodes vectors as CSV, header included.
func WriteVectors(w io.Writer, vs []Vector) error {
	if err := gocsv.Marshal(vs, w); err != nil {
		return fmt.Errorf("writing vectors: %w", err)
	}
	return nil
}

// Reference returns the embedded reference vectors for function.
func Reference(function string) ([]Vector, error) {
	all, err := ReadVectors(bytes.NewReader(referenceCSV))
	if err != nil {
		return nil, err
	}
	var out []Vector
	for _, v := range all {
		if v.Function == function {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no reference vectors for %q", function)
	}
	return out, nil
}
