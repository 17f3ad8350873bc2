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

// The basic command line tool runs line-numbered BASIC programs with the
// package github.com/stijee/basic-interpreter/interp.
//
// Usage:
//
//	basic [flags] [file ...]
//
//	-list
//		  print a numbered program listing before running
//	-trace
//		  write an execution trace to stderr
//
// With file arguments, each file is loaded and run in order on a single
// interpreter instance and the accumulated output is printed to stdout.
// Variables persist from one file to the next, exactly as they persist
// across reloads inside the engine.
//
// Without arguments, basic starts an interactive session. Input lines are
// collected into a program buffer; a few words are interpreted as commands
// instead:
//
//	run	load the buffered lines and execute them, then print the output
//	list	show the buffered lines with their storage indices
//	new	discard the buffered lines
//	clear	clear the variable store
//	vars	show the variable store
//	bye	leave the session
//
// Note that a program can never run away: execution is capped at 100
// dispatch steps, after which the run stops with an error line in the
// output.
package main
