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
	"strings"
)

// Run executes the loaded program until the cursor passes the last line, an
// end statement is reached, or the step ceiling is hit. Run never returns an
// error: all failures are recorded in the output buffer.
//
// Run does not rewind: a second Run after a completed one is a no-op. Call
// Load to start over.
func (it *Interpreter) Run() {
	for it.pc < len(it.lines) {
		if it.steps >= maxSteps {
			it.out.WriteString("Error: Program stopped due to potential infinite loop\n")
			break
		}
		it.tracef("processing line %d: %s", it.pc+1, it.lines[it.pc])
		it.dispatch(it.lines[it.pc])
		it.pc++
		it.steps++
	}
}

// dispatch classifies a single line and routes it to the matching statement
// handler. Handlers that jump set the cursor to target-1 so that the +1 in
// Run lands exactly on the target.
func (it *Interpreter) dispatch(line string) {
	if i := strings.Index(line, "//"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.TrimSpace(strings.TrimLeft(line, "0123456789"))
	if line == "" {
		return
	}

	// Classification order is significant: a print statement may contain
	// '=', and an if statement may contain both '=' and "goto".
	switch {
	case strings.HasPrefix(line, "print"):
		it.doPrint(line)
	case strings.Contains(line, "=") && !strings.Contains(line, "goto"):
		it.doAssign(line)
	case strings.HasPrefix(line, "if"):
		it.doIf(line)
	case strings.HasPrefix(line, "goto"):
		it.doGoto(line)
	case line == "end":
		it.tracef("end of program encountered")
		it.pc = len(it.lines)
	default:
		fmt.Fprintf(&it.out, "Error: Unsupported statement: %s\n", line)
	}
}

// doPrint evaluates the text following the print keyword and appends the
// result to the output buffer. Evaluation failures are non-fatal.
func (it *Interpreter) doPrint(line string) {
	expr := strings.TrimSpace(line[len("print"):])
	v, err := it.eval(expr)
	if err != nil {
		fmt.Fprintf(&it.out, "Error evaluating print expression: %s\n", err)
		return
	}
	it.out.WriteString(formatNumber(v))
	it.out.WriteByte('\n')
}

// doAssign handles <name>=<expr>. All spaces are stripped first, so the
// right-hand side is always evaluated without embedded whitespace.
func (it *Interpreter) doAssign(line string) {
	line = strings.ReplaceAll(line, " ", "")
	name, expr, ok := strings.Cut(line, "=")
	if !ok {
		it.out.WriteString("Error: No '=' found in expression.\n")
		return
	}
	v, err := it.eval(expr)
	if err != nil {
		fmt.Fprintf(&it.out, "Error evaluating expression for %s: %s\n", name, err)
		return
	}
	it.vars[name] = v
	it.tracef("assigned %s = %s", name, formatNumber(v))
	fmt.Fprintf(&it.out, "%s = %s\n", name, formatNumber(v))
}

// doIf handles if <condition> goto <label>, with an optional parenthesized
// condition. A false condition falls through to the next line. An unresolved
// target is silently skipped; compare doGoto, which reports it.
func (it *Interpreter) doIf(line string) {
	line = strings.TrimSpace(line[len("if"):])

	if strings.HasPrefix(line, "(") && strings.Contains(line, ")") {
		closing := strings.Index(line, ")")
		cond := strings.TrimSpace(line[1:closing])
		rest := strings.TrimSpace(line[closing+1:])
		if strings.HasPrefix(rest, "goto") {
			line = cond + " " + rest
		}
	}

	g := strings.Index(line, "goto")
	if g < 0 {
		it.out.WriteString("Error: 'if' statement missing 'goto'\n")
		return
	}
	cond := strings.TrimSpace(line[:g])
	target := strings.TrimSpace(line[g+len("goto"):])

	met, err := it.evalCondition(cond)
	if err != nil {
		fmt.Fprintf(&it.out, "Error evaluating 'if' condition: %s\n", err)
		return
	}
	if !met {
		it.tracef("condition not met, continuing to next line")
		return
	}
	if idx := it.resolve(it.lines, target); idx >= 0 {
		it.tracef("condition met, jumping to line %s (index %d)", target, idx)
		it.pc = idx - 1
	}
}

// doGoto handles an unconditional jump. An unresolved target is reported and
// execution continues with the next physical line.
func (it *Interpreter) doGoto(line string) {
	target := strings.TrimSpace(line[len("goto"):])
	if idx := it.resolve(it.lines, target); idx >= 0 {
		it.tracef("jumping to line %s (index %d)", target, idx)
		it.pc = idx - 1
	} else {
		fmt.Fprintf(&it.out, "Error: 'goto' target line not found: %s\n", target)
	}
}
