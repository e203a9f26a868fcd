// Copyright The smartscompiler Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package screen

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/timvdm/smartscompiler/pkg/compiler"
	"github.com/timvdm/smartscompiler/pkg/matcher"
	"github.com/timvdm/smartscompiler/pkg/optimizer"
	"gopkg.in/yaml.v3"
)

// PatternConfig describes a single named pattern within a pattern set.
type PatternConfig struct {
	Name   string `yaml:"name"`
	Smarts string `yaml:"smarts"`
}

// Config describes a set of patterns to screen molecules against, along with
// how matching should be done.  Fields left unspecified take their default
// values.
type Config struct {
	// Patterns to match, in the order results are reported.
	Patterns []PatternConfig `yaml:"patterns"`
	// Mode is one of "exists" (the default), "count", "first" or "all".
	Mode string `yaml:"mode"`
	// Strategy is one of "auto" (the default), "recursive" or "iterative".
	Strategy string `yaml:"strategy"`
	// Level is the optimisation level.
	Level *uint `yaml:"level"`
	// Workers is the number of goroutines to use, where zero means one per CPU.
	Workers uint `yaml:"workers"`
	// Bytecode indicates patterns should be matched via their compiled bytecode.
	Bytecode bool `yaml:"bytecode"`
	// Cache is the number of compiled patterns retained, so that patterns
	// sharing the same text are compiled once.  Zero disables caching.
	Cache *uint `yaml:"cache"`
}

// ReadConfig reads a pattern set from a YAML file.
func ReadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	config, err := ParseConfig(data)
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return config, nil
}

// ParseConfig parses a pattern set from YAML, filling in defaults and checking
// the result is sensible.  Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var (
		config  Config
		decoder = yaml.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}
	//
	if config.Mode == "" {
		config.Mode = "exists"
	}
	//
	if config.Strategy == "" {
		config.Strategy = "auto"
	}
	//
	if config.Level == nil {
		level := uint(len(optimizer.OPTIMISATION_LEVELS) - 1)
		config.Level = &level
	}
	//
	if config.Cache == nil {
		size := uint(compiler.DEFAULT_CACHE_SIZE)
		config.Cache = &size
	}
	//
	return &config, config.Validate()
}

// Validate checks that a configuration is sensible.  Pattern texts themselves
// are only checked when they are compiled.
func (p *Config) Validate() error {
	var errs []error
	//
	if len(p.Patterns) == 0 {
		errs = append(errs, errors.New("no patterns given"))
	}
	//
	names := make(map[string]bool)
	//
	for i, pattern := range p.Patterns {
		switch {
		case pattern.Name == "":
			errs = append(errs, fmt.Errorf("pattern %d has no name", i))
		case names[pattern.Name]:
			errs = append(errs, fmt.Errorf("duplicate pattern \"%s\"", pattern.Name))
		case pattern.Smarts == "":
			errs = append(errs, fmt.Errorf("pattern \"%s\" has no smarts", pattern.Name))
		}
		//
		names[pattern.Name] = true
	}
	//
	if _, err := matcher.NewPolicy(p.Mode); err != nil {
		errs = append(errs, err)
	}
	//
	if _, err := matcher.ParseStrategy(p.Strategy); err != nil {
		errs = append(errs, err)
	}
	//
	if p.Level != nil {
		if _, err := optimizer.Level(*p.Level); err != nil {
			errs = append(errs, err)
		}
	}
	//
	return errors.Join(errs...)
}
