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

// Package accuracy measures the error of libm results in units in the last
// place and holds the error budgets the test suites enforce.
//
// Budgets ship embedded (budgets.yaml) and can be tightened or relaxed by a
// YAML file named in LIBM_ACCURACY_BUDGETS. Reference values computed at
// high precision ship embedded as reference.csv.
package accuracy
