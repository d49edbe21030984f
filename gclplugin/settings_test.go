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

package gclplugin_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	kdulint "fillmore-labs.com/kdulint/analyzer"
	. "fillmore-labs.com/kdulint/gclplugin"
	"fillmore-labs.com/kdulint/internal/config"
)

const allSettings = `{
	"generated": true,
	"report-unused-disable": false,
	"config": ".kdulint.yaml",
	"rules": {
		"no-restricted-elements": ["error", "marquee"],
		"require-prop-types": "off"
	}
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, 5},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			got, err := s.Options()
			if err != nil {
				t.Fatalf("Options failed: %v", err)
			}

			if len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), kdulint.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestUnknownRule(t *testing.T) {
	t.Parallel()

	s := Settings{Rules: map[string]any{"no-dupe-key": "error"}}

	if _, err := s.Options(); !errors.Is(err, config.ErrUnknownRule) {
		t.Errorf("Got error %v, expected %v", err, config.ErrUnknownRule)
	}

	p, err := New(map[string]any{"rules": map[string]any{"no-dupe-key": "error"}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := p.BuildAnalyzers(); !errors.Is(err, config.ErrUnknownRule) {
		t.Errorf("Got error %v, expected %v", err, config.ErrUnknownRule)
	}
}
