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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/stijee/basic-interpreter/interp"
)

var (
	trace bool
	list  bool
)

func atExit(err error) {
	if err == nil {
		return
	}
	if trace {
		fmt.Fprintf(os.Stderr, "basic: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "basic: %v\n", err)
	}
	os.Exit(1)
}

// runFiles loads and runs each file on the shared interpreter. Variables
// persist from file to file, matching the engine's reload semantics.
func runFiles(it *interp.Interpreter, files []string) error {
	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrap(err, "load failed")
		}
		it.Load(string(src))
		if list {
			if err := it.DumpProgram(stdout); err != nil {
				return err
			}
		}
		it.Run()
		if _, err := stdout.WriteString(it.Output()); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}

func main() {
	flag.BoolVar(&trace, "trace", false, "write an execution trace to stderr")
	flag.BoolVar(&list, "list", false, "print a numbered program listing before running")
	flag.Parse()

	var opts []interp.Option
	if trace {
		opts = append(opts, interp.Trace(os.Stderr))
	}
	it, err := interp.New(opts...)
	atExit(err)

	if flag.NArg() > 0 {
		atExit(runFiles(it, flag.Args()))
		return
	}
	atExit(repl(it))
}
