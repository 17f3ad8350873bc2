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

// Package conformance runs the yaml script suites under testdata against the
// interpreter. Each suite holds an ordered list of cases; cases within a
// suite share one interpreter instance, so variables persist from case to
// case exactly as they do across program loads.
package conformance

// Suite represents a complete yaml fixture file.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case is a single program run and the expectations on its observable
// results.
type Case struct {
	Name    string `yaml:"name"`
	Program string `yaml:"program"`

	// Output, when present, must match the accumulated output exactly.
	Output *string `yaml:"output,omitempty"`
	// Contains lists substrings the output must include.
	Contains []string `yaml:"contains,omitempty"`
	// Steps, when present, is the exact number of dispatch steps taken.
	Steps *int `yaml:"steps,omitempty"`
	// ClearVars empties the variable store before the run.
	ClearVars bool `yaml:"clear_vars,omitempty"`
}
