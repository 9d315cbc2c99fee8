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

// Command pio2gen writes the 2/π limb table used by the Payne–Hanek range
// reducer in fp/contrib/reduce.
//
// Usage:
//
//	pio2gen -output pio2_table.go -words 26
//
// Or via go:generate from the reduce package:
//
//	//go:generate go run ../../../cmd/pio2gen -output pio2_table.go
//
// The expansion of 2/π is computed from Machin's formula with math/big, so
// the table can be regenerated and checked without any external data.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	outputFile  = flag.String("output", "pio2_table.go", "Output Go source file")
	packageName = flag.String("pkg", "reduce", "Package name of the generated file")
	numWords    = flag.Int("words", 26, "Number of 64-bit words of 2/π to emit (at least 20)")
	verbose     = flag.Bool("v", false, "Log progress at debug level")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	gen := &Generator{
		OutputFile: *outputFile,
		Package:    *packageName,
		Words:      *numWords,
		Logger:     logger,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
