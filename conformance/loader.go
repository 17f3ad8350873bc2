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

package conformance

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadSuites reads every .yaml file in dir and returns the parsed suites in
// file name order.
func LoadSuites(dir string) ([]Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read suite directory")
	}
	var suites []Suite
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Wrap(err, "read suite")
		}
		var s Suite
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrapf(err, "parse %s", e.Name())
		}
		if s.Name == "" {
			s.Name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		suites = append(suites, s)
	}
	return suites, nil
}
