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

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Severity is the level a rule reports at.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	SeverityOff   Severity = iota // off
	SeverityWarn                  // warn
	SeverityError                 // error
)

// ErrSeverity is returned for values that are no severity.
var ErrSeverity = errors.New("invalid severity")

// ParseSeverity accepts "off", "warn", "error" or the numbers 0 to 2.
func ParseSeverity(v any) (Severity, error) {
	switch v := v.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "warning", "1":
			return SeverityWarn, nil
		case "error", "2":
			return SeverityError, nil
		}

	case int:
		return severityOf(int64(v))
	case int64:
		return severityOf(v)
	case uint64:
		if v <= math.MaxInt64 {
			return severityOf(int64(v))
		}
	case float64:
		if v == math.Trunc(v) {
			return severityOf(int64(v))
		}
	}

	return SeverityOff, fmt.Errorf("%w: %v", ErrSeverity, v)
}

func severityOf(v int64) (Severity, error) {
	if v < int64(SeverityOff) || v > int64(SeverityError) {
		return SeverityOff, fmt.Errorf("%w: %d", ErrSeverity, v)
	}

	return Severity(v), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
