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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// exprParser holds the ephemeral state of one expression evaluation: the
// source text and a cursor into it. It is owned by a single eval call and
// discarded when that call returns.
type exprParser struct {
	src  string
	pos  int
	vars map[string]float64
}

// eval evaluates expr with the recursive-descent grammar
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := '(' expression ')' | number | identifier
//
// Whitespace is skipped only at factor boundaries; a space in operator
// position simply ends the parse, and anything left unparsed is ignored.
// Division by zero is not special-cased and yields IEEE Inf or NaN.
func (it *Interpreter) eval(expr string) (float64, error) {
	p := exprParser{src: expr, vars: it.vars}
	return p.expression()
}

func (p *exprParser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '+':
			p.pos++
			t, err := p.term()
			if err != nil {
				return 0, err
			}
			v += t
		case '-':
			p.pos++
			t, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= t
		default:
			return v, nil
		}
	}
	return v, nil
}

func (p *exprParser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '*':
			p.pos++
			f, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= f
		case '/':
			p.pos++
			f, err := p.factor()
			if err != nil {
				return 0, err
			}
			v /= f
		default:
			return v, nil
		}
	}
	return v, nil
}

func (p *exprParser) factor() (float64, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, errors.Errorf("Invalid factor at position: %d", p.pos)
	}
	switch c := p.src[p.pos]; {
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.pos < len(p.src) && p.src[p.pos] == ')' {
			p.pos++
		}
		return v, nil
	case isDigit(c) || c == '.':
		start := p.pos
		for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		lit := p.src[start:p.pos]
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return 0, errors.Errorf("Invalid number: %s", lit)
		}
		return v, nil
	case isLetter(c):
		start := p.pos
		for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
			p.pos++
		}
		name := p.src[start:p.pos]
		v, ok := p.vars[name]
		if !ok {
			return 0, errors.Errorf("Undefined variable: %s", name)
		}
		return v, nil
	}
	return 0, errors.Errorf("Invalid factor at position: %d", p.pos)
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// condOps lists the comparison operators in scan order. The order is
// observable behavior: "=" is tried before ">=" and "<=", so a condition
// written with a two-character operator is split at its "=" or at the
// leading ">"/"<", whichever the scan finds first.
var condOps = [...]string{"=", ">", "<", ">=", "<="}

// evalCondition evaluates the condition of an if statement. Each operand is
// resolved as a stored variable first, and only failing that evaluated as an
// expression.
func (it *Interpreter) evalCondition(cond string) (bool, error) {
	it.tracef("evaluating condition: %s", cond)
	var op, left, right string
	for _, o := range condOps {
		if i := strings.Index(cond, o); i >= 0 {
			op = o
			left = strings.TrimSpace(cond[:i])
			right = strings.TrimSpace(cond[i+len(o):])
			break
		}
	}
	if op == "" {
		return false, errors.Errorf("Invalid condition: %s", cond)
	}
	lv, err := it.operand(left)
	if err != nil {
		return false, err
	}
	rv, err := it.operand(right)
	if err != nil {
		return false, err
	}
	switch op {
	case "=":
		return lv == rv, nil
	case ">":
		return lv > rv, nil
	case "<":
		return lv < rv, nil
	case ">=":
		return lv >= rv, nil
	case "<=":
		return lv <= rv, nil
	}
	return false, errors.Errorf("Unsupported operator in condition: %s", op)
}

func (it *Interpreter) operand(s string) (float64, error) {
	if v, ok := it.vars[s]; ok {
		return v, nil
	}
	return it.eval(s)
}
