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

package interp_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stijee/basic-interpreter/interp"
)

func TestNewBadOption(t *testing.T) {
	if _, err := interp.New(interp.WithResolver(nil)); err == nil {
		t.Error("expected error for nil resolver")
	}
}

// Variables survive a reload; only ClearVariables empties the store.
func TestVariablesPersistAcrossLoads(t *testing.T) {
	it := run(t, "x=5")
	it.Load("print x")
	it.Run()
	if got, want := it.Output(), "5.0\n"; got != want {
		t.Errorf("after reload: want %q, got %q", want, got)
	}

	it.ClearVariables()
	it.Load("print x")
	it.Run()
	want := "Error evaluating print expression: Undefined variable: x\n"
	if got := it.Output(); got != want {
		t.Errorf("after clear: want %q, got %q", want, got)
	}
}

// ClearVariables drops the output buffer but not the loaded program.
func TestClearVariablesKeepsProgram(t *testing.T) {
	it := run(t, "print 1")
	it.ClearVariables()
	if got := it.Output(); got != "" {
		t.Errorf("output not cleared: %q", got)
	}
	var b bytes.Buffer
	if err := it.DumpProgram(&b); err != nil {
		t.Fatalf("%+v", err)
	}
	if !strings.Contains(b.String(), "print 1") {
		t.Errorf("program listing lost the loaded line: %q", b.String())
	}
}

func TestLoadResetsOutput(t *testing.T) {
	it := run(t, "print 1")
	it.Load("print 2")
	if got := it.Output(); got != "" {
		t.Errorf("output not cleared on load: %q", got)
	}
	it.Run()
	if got, want := it.Output(), "2.0\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestVars(t *testing.T) {
	it := run(t, "x=1\ny=2")
	vars := it.Vars()
	if len(vars) != 2 || vars["x"] != 1 || vars["y"] != 2 {
		t.Errorf("unexpected store snapshot: %v", vars)
	}
	// mutating the snapshot must not touch the store
	vars["x"] = 42
	if got := it.Vars()["x"]; got != 1 {
		t.Errorf("snapshot aliases the store: x = %v", got)
	}
}

func TestTrace(t *testing.T) {
	var b bytes.Buffer
	it, err := interp.New(interp.Trace(&b))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	it.Load("x=1\ngoto 3")
	it.Run()
	for _, want := range []string{"loaded line: x=1", "processing line 1: x=1", "assigned x = 1.0"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("trace missing %q in:\n%s", want, b.String())
		}
	}
}

func TestDumpProgram(t *testing.T) {
	it, err := interp.New()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	it.Load("10 print 1\n20 end")
	var b bytes.Buffer
	if err := it.DumpProgram(&b); err != nil {
		t.Fatalf("%+v", err)
	}
	want := "   0\t10 print 1\n   1\t20 end\n"
	if got := b.String(); got != want {
		t.Errorf("listing:\nwant %q\ngot  %q", want, got)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestDumpProgramWriteError(t *testing.T) {
	it, err := interp.New()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	it.Load("print 1")
	if err := it.DumpProgram(failWriter{}); err == nil {
		t.Error("expected write error")
	}
}
