// This file is part of basic-interpreter - https://github.com/stijee/basic-interpreter
//
// Copyright 2024 The basic-interpreter Authors
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

package conformance

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/stijee/basic-interpreter/interp"
)

// Runner executes the cases of one suite against a shared interpreter.
type Runner struct {
	it *interp.Interpreter
}

// NewRunner creates a Runner with a fresh interpreter.
func NewRunner(opts ...interp.Option) (*Runner, error) {
	it, err := interp.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Runner{it: it}, nil
}

// RunCase loads and runs one case and checks its expectations. The returned
// error describes the first expectation that failed.
func (r *Runner) RunCase(c Case) error {
	r.it.Load(c.Program)
	if c.ClearVars {
		r.it.ClearVariables()
	}
	r.it.Run()

	got := r.it.Output()
	if c.Output != nil && got != *c.Output {
		return errors.Errorf("output mismatch:\nwant %q\ngot  %q", *c.Output, got)
	}
	for _, want := range c.Contains {
		if !strings.Contains(got, want) {
			return errors.Errorf("output %q does not contain %q", got, want)
		}
	}
	if c.Steps != nil && r.it.StepCount() != *c.Steps {
		return errors.Errorf("step count: want %d, got %d", *c.Steps, r.it.StepCount())
	}
	return nil
}
