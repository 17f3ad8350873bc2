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

// Package basio holds small I/O helpers shared by the interpreter and the
// command line tool.
package basio

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter is a simple wrapper to track io errors over a sequence of
// writes. Once a write fails, every subsequent Write keeps returning the
// same error without touching the underlying writer.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s to the underlying writer.
func (w *ErrWriter) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}
