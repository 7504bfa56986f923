// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// sections.Option.
package config

// Config collects all configurable parameters in this module.
type Config struct {
	// Section is the section that flat change indices are mapped into when converting changes to
	// index paths.
	Section int

	// If set, internal/heckel will run the full algorithm even if one of the inputs is empty. This
	// configuration is not exposed via an option API, it's main use is for testing.
	SkipTrivial bool
}

// Default is the default configuration.
var Default = Config{
	Section:     0,
	SkipTrivial: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed for a given function.
type Flag int

const (
	Section Flag = 1 << iota
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Section:
		return "sections.Section"
	default:
		panic("never reached")
	}
}
