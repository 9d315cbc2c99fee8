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
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-libm/fp"
)

//go:embed budgets.yaml
var defaultBudgetsYAML []byte

// BudgetsEnv names the environment variable holding an optional budget
// override file for Default.
const BudgetsEnv = "LIBM_ACCURACY_BUDGETS"

// Budget is the accepted error of one function at one precision.
type Budget struct {
	Function  string  `yaml:"function"`
	Precision string  `yaml:"precision"`
	MaxULP    float64 `yaml:"max_ulp"`
	AbsFloor  float64 `yaml:"abs_floor"`

	// Format is resolved from Precision when loading.
	Format fp.Format `yaml:"-"`
}

type budgetFile struct {
	Budgets []Budget `yaml:"budgets"`
}

type budgetKey struct{ function, precision string }

// Registry holds budgets keyed by function and precision.
type Registry struct {
	budgets map[budgetKey]Budget
}

// formats lists the precisions a budget may name.
var formats = map[string]fp.Format{
	fp.Binary16.Name: fp.Binary16,
	fp.BF16.Name:     fp.BF16,
	fp.Binary32.Name: fp.Binary32,
	fp.Binary64.Name: fp.Binary64,
}

// Load reads the embedded budgets and, if path is not empty, merges the
// budgets of that file over them entry by entry.
func Load(path string) (*Registry, error) {
	r := &Registry{budgets: make(map[budgetKey]Budget)}
	if err := r.merge(defaultBudgetsYAML); err != nil {
		return nil, fmt.Errorf("parsing embedded budgets: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading budget file: %w", err)
		}
		if err := r.merge(data); err != nil {
			return nil, fmt.Errorf("parsing budget file %s: %w", path, err)
		}
	}
	return r, nil
}

func (r *Registry) merge(data []byte) error {
	var f budgetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	for i, b := range f.Budgets {
		format, ok := formats[b.Precision]
		if !ok {
			return fmt.Errorf("budget %d (%s): unknown precision %q", i, b.Function, b.Precision)
		}
		if b.Function == "" {
			return fmt.Errorf("budget %d: missing function", i)
		}
		if b.MaxULP < 0 || b.AbsFloor < 0 {
			return fmt.Errorf("budget %d (%s/%s): negative tolerance", i, b.Function, b.Precision)
		}
		b.Format = format
		r.budgets[budgetKey{b.Function, b.Precision}] = b
	}
	return nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return Load(os.Getenv(BudgetsEnv))
})

// Default returns the registry loaded from the embedded budgets and the
// file named by BudgetsEnv. It panics if loading fails.
func Default() *Registry {
	r, err := defaultRegistry()
	if err != nil {
		panic(fmt.Sprintf("accuracy: failed to load budgets: %v", err))
	}
	return r
}

// Lookup returns the budget of function at precision.
func (r *Registry) Lookup(function, precision string) (Budget, bool) {
	b, ok := r.budgets[budgetKey{function, precision}]
	return b, ok
}

// MustLookup is like Lookup but panics if no budget is defined.
func (r *Registry) MustLookup(function, precision string) Budget {
	b, ok := r.Lookup(function, precision)
	if !ok {
		panic(fmt.Sprintf("accuracy: no budget for %s/%s", function, precision))
	}
	return b
}

// Budgets returns all budgets sorted by precision, then function.
func (r *Registry) Budgets() []Budget {
	out := make([]Budget, 0, len(r.budgets))
	for _, b := range r.budgets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Precision != out[j].Precision {
			return out[i].Precision < out[j].Precision
		}
		return out[i].Function < out[j].Function
	})
	return out
}

// Check reports whether got is within the budget of the reference value
// want, and returns a descriptive error if not. NaN matches only NaN and
// infinities match only themselves.
func (b Budget) Check(got, want float64) error {
	if scalar.Same(got, want) {
		return nil
	}
	if math.IsNaN(got) || math.IsNaN(want) || math.IsInf(got, 0) || math.IsInf(want, 0) {
		return fmt.Errorf("%s/%s: got %v, want %v", b.Function, b.Precision, got, want)
	}
	if b.AbsFloor > 0 && scalar.EqualWithinAbs(got, want, b.AbsFloor) {
		return nil
	}
	if ulps := ULPError(got, want, b.Format); ulps > b.MaxULP {
		return fmt.Errorf("%s/%s: got %v, want %v (%.3g ulp > %g)",
			b.Function, b.Precision, got, want, ulps, b.MaxULP)
	}
	return nil
}
