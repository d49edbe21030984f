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
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configName is the config file name without extension.
const configName = ".kdulint"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for kdulint settings.
const envPrefix = "KDULINT"

// File is the content of a configuration file.
type File struct {
	// Generated includes generated component files.
	Generated bool `mapstructure:"generated" yaml:"generated"`
	// ReportUnusedDisable reports disable directives that suppress nothing.
	ReportUnusedDisable bool `mapstructure:"report_unused_disable" yaml:"report_unused_disable"`
	// Rules maps rule names to `severity` or `[severity, options...]`.
	Rules map[string]any `mapstructure:"rules" yaml:"rules,omitempty"`

	// Path is the file that was read, empty when none was found.
	Path string `mapstructure:"-" yaml:"-"`
}

// Load loads configuration from file, env vars, and defaults.
// If path is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func Load(path string) (*File, error) {
	v := viper.New()

	v.SetDefault("generated", false)
	v.SetDefault("report_unused_disable", false)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	f.Path = v.ConfigFileUsed()

	return &f, nil
}

// Behavior returns the run-wide flags of the configuration.
func (f *File) Behavior() BitMask[Behavior] {
	b := DefaultBehavior()
	b.Set(IncludeGenerated, f.Generated)
	b.Set(ReportUnusedDisable, f.ReportUnusedDisable)

	return b
}

// YAML renders the configuration.
func (f *File) YAML() ([]byte, error) {
	return yaml.Marshal(f)
}
