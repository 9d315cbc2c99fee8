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

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-libm/internal/bigpi"
)

// minWords covers the largest binary64 exponent: the reducer reads four
// consecutive words starting at word (971+62)/64 = 16.
const minWords = 20

// Generator renders the 2/π table as Go source.
type Generator struct {
	OutputFile string
	Package    string
	Words      int
	Logger     *slog.Logger
}

// Run computes the table, formats it and writes OutputFile.
func (g *Generator) Run() error {
	if g.Words < minWords {
		return fmt.Errorf("need at least %d words, got %d", minWords, g.Words)
	}
	if g.Logger == nil {
		g.Logger = slog.Default()
	}

	g.Logger.Debug("computing 2/pi", "words", g.Words, "bits", 64*g.Words)
	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputFile, err)
	}
	g.Logger.Info("wrote table", "file", g.OutputFile, "words", g.Words)
	return nil
}

// Source returns the formatted Go source of the table.
func (g *Generator) Source() ([]byte, error) {
	words := bigpi.TwoOverPiWords(g.Words)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by pio2gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "// twoOverPi holds 2/π in 64-bit limbs: twoOverPi[0] is the integer part\n")
	fmt.Fprintf(&buf, "// (zero) and 2/π = Σ twoOverPi[i]·2^(-64i). %d fraction bits.\n", 64*g.Words)
	fmt.Fprintf(&buf, "var twoOverPi = [...]uint64{\n0x0000000000000000,\n")
	for _, w := range words {
		fmt.Fprintf(&buf, "%#016x,\n", w)
	}
	fmt.Fprintf(&buf, "}\n")

	out, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}
