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
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/stijee/basic-interpreter/interp"
)

// repl accumulates program lines until a "run" command loads and executes
// them. Everything that is not a command is taken as a program line.
func repl(it *interp.Interpreter) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	var lines []string
	for {
		src, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return nil
			}
			return err
		}

		switch cmd := strings.TrimSpace(src); cmd {
		case "":
		case "run":
			it.Load(strings.Join(lines, "\n"))
			it.Run()
			fmt.Print(it.Output())
		case "list":
			for i, l := range lines {
				fmt.Printf("% 4d\t%s\n", i, l)
			}
		case "new":
			lines = lines[:0]
		case "clear":
			it.ClearVariables()
		case "vars":
			vars := it.Vars()
			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s = %v\n", name, vars[name])
			}
		case "bye":
			return nil
		default:
			lines = append(lines, src)
		}
	}
}
