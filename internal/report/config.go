// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// ConfigCategory is the diagnostic category of configuration errors.
const ConfigCategory = "config"

// ConfigError returns the diagnostic for an invalid rule configuration.
// The rule keeps running with a fail-closed fallback.
func ConfigError(pos token.Pos, rule string, err error) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      pos,
		End:      pos,
		Category: ConfigCategory,
		Message:  fmt.Sprintf("Invalid configuration for rule '%s': %v", rule, err),
	}
}
