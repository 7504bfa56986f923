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

package sections

import (
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/config"
)

// Option configures the behavior of functions in this package.
type Option = listdiff.Option

// Section sets the section that change indices refer to. The default is 0, negative values are
// treated as 0.
func Section(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Section = max(0, n)
		return config.Section
	}
}
