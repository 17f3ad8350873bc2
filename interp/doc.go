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

// Package interp implements a minimal line-numbered BASIC-style interpreter.
//
// A program is plain text, one statement per line. Each line may carry a
// leading decimal label (the classic BASIC line number) and a trailing
// comment introduced by "//". Statements are:
//
//	print <expr>
//	<identifier>=<expr>
//	if [(]<condition>[)] goto <label>
//	goto <label>
//	end
//
// Expressions support +, -, *, / with the usual precedence, parentheses,
// floating point literals and variable references. Variables are created on
// first assignment; reading an unassigned variable is an evaluation error,
// never an implicit zero. Conditions compare two operands with one of
// =, >, <, >= or <= using exact IEEE semantics.
//
// Jump targets are resolved against the loaded program by prefix match: the
// first line whose text starts with the target string wins, so a target "1"
// will happily match a line labeled "10". This is observable behavior, not a
// bug to fix; tests that need stricter semantics can install their own
// resolution strategy with the WithResolver option.
//
// Execution is bounded by a fixed ceiling of 100 dispatch steps per Run,
// guarding against non-terminating goto chains. When the ceiling is reached,
// the run halts with an error line in the output. Run never returns an error
// to the caller: all failures, from unsupported statements to undefined
// variables, are recorded as text in the output buffer and reported through
// Output.
//
// An Interpreter owns all of its state and provides no internal locking.
// Callers must not invoke Run concurrently with another Run or Load on the
// same instance.
package interp
