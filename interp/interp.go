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

package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/stijee/basic-interpreter/internal/basio"
)

// maxSteps bounds the number of dispatch iterations per Run.
const maxSteps = 100

// A LabelResolver maps a jump target to an index into the program lines, or
// -1 if the target cannot be resolved.
type LabelResolver func(lines []string, target string) int

// ResolveByPrefix is the default LabelResolver. It returns the index of the
// first line whose text starts with the target string. Note that this makes
// a target "1" match a line labeled "10".
func ResolveByPrefix(lines []string, target string) int {
	for i, l := range lines {
		if strings.HasPrefix(l, target) {
			return i
		}
	}
	return -1
}

// Interpreter holds a loaded program and all of its execution state: the
// cursor, the step counter, the variable store and the output buffer.
type Interpreter struct {
	lines   []string
	pc      int
	steps   int
	vars    map[string]float64
	out     strings.Builder
	resolve LabelResolver
	trace   io.Writer
}

// Option interface
type Option func(*Interpreter) error

// WithResolver replaces the jump target resolution strategy. The default is
// ResolveByPrefix.
func WithResolver(r LabelResolver) Option {
	return func(it *Interpreter) error {
		if r == nil {
			return errors.New("nil label resolver")
		}
		it.resolve = r
		return nil
	}
}

// Trace directs an execution trace (loaded lines, dispatched statements,
// jumps) to w. Tracing is off by default.
func Trace(w io.Writer) Option {
	return func(it *Interpreter) error {
		it.trace = w
		return nil
	}
}

// SetOptions sets the provided options.
func (it *Interpreter) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(it); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Interpreter instance with an empty program and an empty
// variable store. Options will be set by calling SetOptions.
func New(opts ...Option) (*Interpreter, error) {
	it := &Interpreter{
		vars:    make(map[string]float64),
		resolve: ResolveByPrefix,
	}
	if err := it.SetOptions(opts...); err != nil {
		return nil, err
	}
	return it, nil
}

// Load replaces the program with src split on newlines, one trimmed line per
// statement, and resets the execution cursor, the step counter and the
// output buffer. Trailing empty segments produced by a final newline are
// dropped and consume no steps; blank lines elsewhere are kept. Variables
// are kept; use ClearVariables to drop them. Load never fails: empty input
// simply yields a program with no lines.
func (it *Interpreter) Load(src string) {
	it.lines = it.lines[:0]
	segs := strings.Split(src, "\n")
	for len(segs) > 0 && segs[len(segs)-1] == "" {
		segs = segs[:len(segs)-1]
	}
	for _, line := range segs {
		line = strings.TrimSpace(line)
		it.lines = append(it.lines, line)
		it.tracef("loaded line: %s", line)
	}
	it.pc = 0
	it.steps = 0
	it.out.Reset()
}

// Output returns the accumulated output buffer as a single string: print
// results, assignment echoes and error messages, one line per event.
func (it *Interpreter) Output() string {
	return it.out.String()
}

// ClearVariables empties the variable store and the output buffer. The
// loaded program is untouched.
func (it *Interpreter) ClearVariables() {
	it.vars = make(map[string]float64)
	it.out.Reset()
}

// StepCount returns the number of dispatch steps taken since the last Load.
func (it *Interpreter) StepCount() int {
	return it.steps
}

// Vars returns a snapshot of the variable store.
func (it *Interpreter) Vars() map[string]float64 {
	vars := make(map[string]float64, len(it.vars))
	for name, v := range it.vars {
		vars[name] = v
	}
	return vars
}

// DumpProgram writes a numbered listing of the loaded program lines to the
// specified io.Writer and returns any write error.
func (it *Interpreter) DumpProgram(w io.Writer) error {
	bw := basio.NewErrWriter(w)
	for i, line := range it.lines {
		fmt.Fprintf(bw, "% 4d\t%s\n", i, line)
	}
	return bw.Err
}

func (it *Interpreter) tracef(format string, args ...interface{}) {
	if it.trace == nil {
		return
	}
	fmt.Fprintf(it.trace, format+"\n", args...)
}
