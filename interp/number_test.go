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
	"math"
	"testing"
)

var formatTests = [...]struct {
	v    float64
	want string
}{
	{0, "0.0"},
	{5, "5.0"},
	{-5, "-5.0"},
	{14, "14.0"},
	{3.5, "3.5"},
	{0.001, "0.001"},
	{123456.789, "123456.789"},
	{9999999, "9999999.0"},
	{0.30000000000000004, "0.30000000000000004"},
	{1e7, "1.0E7"},
	{12345678, "1.2345678E7"},
	{1e-4, "1.0E-4"},
	{-2.5e8, "-2.5E8"},
	{math.Inf(1), "Infinity"},
	{math.Inf(-1), "-Infinity"},
	{math.NaN(), "NaN"},
}

func TestFormatNumber(t *testing.T) {
	for _, test := range formatTests {
		if got := formatNumber(test.v); got != test.want {
			t.Errorf("formatNumber(%v): want %q, got %q", test.v, test.want, got)
		}
	}
}
